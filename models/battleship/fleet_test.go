package battleship

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

func TestParseFleet(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    []ShipSpec
		wantErr bool
	}{
		{
			name: "two ships",
			yaml: "ships:\n  - name: sub\n    length: 1\n  - name: carrier\n    length: 5\n",
			want: []ShipSpec{{Name: "sub", Length: 1}, {Name: "carrier", Length: 5}},
		},
		{name: "empty", yaml: "ships: []\n", wantErr: true},
		{name: "no name", yaml: "ships:\n  - length: 2\n", wantErr: true},
		{name: "zero length", yaml: "ships:\n  - name: raft\n    length: 0\n", wantErr: true},
		{name: "not yaml", yaml: "ships: [", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseFleet([]byte(test.yaml))
			if test.wantErr {
				if err == nil {
					t.Fatalf("expected error\tgot fleet: %v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(test.want) {
				t.Fatalf("expected %d ships\tgot: %d", len(test.want), len(got))
			}
			for i := range got {
				if got[i] != test.want[i] {
					t.Fatalf("ship %d: expected %+v\tgot: %+v", i, test.want[i], got[i])
				}
			}
		})
	}
}

func TestLoadFleet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	if err := os.WriteFile(path, []byte("ships:\n  - name: patrol\n    length: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fleet, err := LoadFleet(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(fleet) != 1 || fleet[0].Name != "patrol" || fleet[0].Length != 2 {
		t.Fatalf("unexpected fleet: %+v", fleet)
	}

	if _, err := LoadFleet(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateFleet(t *testing.T) {
	tests := []struct {
		name    string
		fleet   []ShipSpec
		size    int
		wantErr bool
	}{
		{name: "default on easy", fleet: DefaultFleet(), size: GridSizeEasy},
		{name: "empty", fleet: nil, size: 5, wantErr: true},
		{name: "too long", fleet: []ShipSpec{{Name: "long", Length: 6}}, size: 5, wantErr: true},
		{name: "too many cells", fleet: []ShipSpec{{Name: "a", Length: 2}, {Name: "b", Length: 2}, {Name: "c", Length: 1}}, size: 2, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateFleet(test.fleet, test.size, test.size)
			if test.wantErr != (err != nil) {
				t.Fatalf("expected error: %v\tgot: %v", test.wantErr, err)
			}
			if err != nil && !errors.Is(err, cerr.ErrInvalidArgument) {
				t.Fatalf("expected invalid argument error\tgot: %v", err)
			}
		})
	}
}

func TestValidateFootprint(t *testing.T) {
	taken := map[Coordinates]bool{NewCoordinates(3, 3): true}

	tests := []struct {
		name    string
		cells   []Coordinates
		wantErr bool
	}{
		{name: "horizontal", cells: []Coordinates{{1, 1}, {2, 1}, {3, 1}}},
		{name: "vertical", cells: []Coordinates{{5, 2}, {5, 3}, {5, 4}, {5, 5}}},
		{name: "single", cells: []Coordinates{{4, 4}}},
		{name: "empty", cells: nil, wantErr: true},
		{name: "off board", cells: []Coordinates{{4, 1}, {5, 1}, {6, 1}}, wantErr: true},
		{name: "overlap", cells: []Coordinates{{2, 3}, {3, 3}}, wantErr: true},
		{name: "diagonal", cells: []Coordinates{{1, 1}, {2, 2}}, wantErr: true},
		{name: "gap", cells: []Coordinates{{1, 1}, {2, 1}, {4, 1}}, wantErr: true},
		{name: "reversed", cells: []Coordinates{{2, 1}, {1, 1}}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateFootprint(5, 5, taken, test.cells)
			if test.wantErr != (err != nil) {
				t.Fatalf("expected error: %v\tgot: %v", test.wantErr, err)
			}
		})
	}
}

func TestPlaceFleet(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		ships := NewFleet(DefaultFleet())

		if err := PlaceFleet(rng, GridSizeEasy, GridSizeEasy, ships); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		taken := make(map[Coordinates]bool)
		for _, ship := range ships {
			cells := ship.Position()
			if len(cells) != ship.Length() {
				t.Fatalf("seed %d: %s expected %d cells\tgot: %d", seed, ship.Name(), ship.Length(), len(cells))
			}
			if err := ValidateFootprint(GridSizeEasy, GridSizeEasy, taken, cells); err != nil {
				t.Fatalf("seed %d: %s placed illegally: %v", seed, ship.Name(), err)
			}
			for _, c := range cells {
				taken[c] = true
			}
		}
	}
}

func TestPlaceFleetImpossible(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ships := NewFleet([]ShipSpec{{Name: "a", Length: 2}, {Name: "b", Length: 2}, {Name: "c", Length: 2}})

	// three ships of two cannot share a 2x2 board
	err := PlaceFleet(rng, 2, 2, ships)
	if !errors.Is(err, cerr.ErrInvalidArgument) {
		t.Fatalf("expected invalid fleet error\tgot: %v", err)
	}
}
