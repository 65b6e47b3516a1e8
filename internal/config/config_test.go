package config

import (
	"os"
	"path/filepath"
	"testing"

	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
)

func mapEnv(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

// unsetEnv removes key for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			env:  map[string]string{EnvSeed: "1"},
			want: Config{Stage: StageDev, Difficulty: mb.GameDifficultyNormal, Seed: 1},
		},
		{
			name: "everything set",
			env: map[string]string{
				EnvStage:      StageProd,
				EnvDifficulty: "hard",
				EnvSeed:       "-99",
				EnvLogFile:    "/tmp/battleship.log",
				EnvFleetFile:  "fleet.yaml",
			},
			want: Config{Stage: StageProd, Difficulty: mb.GameDifficultyHard, Seed: -99, LogFile: "/tmp/battleship.log", FleetFile: "fleet.yaml"},
		},
		{name: "bad stage", env: map[string]string{EnvStage: "staging"}, wantErr: true},
		{name: "bad difficulty", env: map[string]string{EnvDifficulty: "brutal"}, wantErr: true},
		{name: "bad seed", env: map[string]string{EnvSeed: "abc"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := FromEnv(mapEnv(test.env))
			if test.wantErr {
				if err == nil {
					t.Fatalf("expected error\tgot: %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Fatalf("expected: %+v\tgot: %+v", test.want, got)
			}
		})
	}
}

func TestFromEnvSeedDefaultsToClock(t *testing.T) {
	cfg, err := FromEnv(mapEnv(nil))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed == 0 {
		t.Fatal("expected a time based seed")
	}
}

func TestLoadEnvFile(t *testing.T) {
	for _, key := range []string{EnvStage, EnvDifficulty, EnvSeed, EnvLogFile, EnvFleetFile} {
		unsetEnv(t, key)
	}
	t.Setenv(EnvSeed, "5")

	path := filepath.Join(t.TempDir(), ".env")
	content := "BATTLESHIP_DIFFICULTY=easy\nBATTLESHIP_SEED=123\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv sets these for the process
	t.Cleanup(func() { os.Unsetenv(EnvDifficulty) })

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Difficulty != mb.GameDifficultyEasy {
		t.Fatalf("expected difficulty from env file\tgot: %d", cfg.Difficulty)
	}
	if cfg.Seed != 5 {
		t.Fatalf("expected process env to win over env file\tgot seed: %d", cfg.Seed)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	unsetEnv(t, EnvStage)
	unsetEnv(t, EnvDifficulty)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing env file to be ignored\tgot: %v", err)
	}
}

func TestFleet(t *testing.T) {
	fleet, err := Config{}.Fleet()
	if err != nil {
		t.Fatal(err)
	}
	if len(fleet) != len(mb.DefaultFleet()) {
		t.Fatalf("expected default fleet\tgot: %+v", fleet)
	}

	path := filepath.Join(t.TempDir(), "fleet.yaml")
	if err := os.WriteFile(path, []byte("ships:\n  - name: sub\n    length: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fleet, err = Config{FleetFile: path}.Fleet()
	if err != nil {
		t.Fatal(err)
	}
	if len(fleet) != 1 || fleet[0].Name != "sub" {
		t.Fatalf("expected fleet from file\tgot: %+v", fleet)
	}
}
