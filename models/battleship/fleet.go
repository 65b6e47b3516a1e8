package battleship

import (
	"fmt"
	"math/rand"
	"os"

	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
	"gopkg.in/yaml.v3"
)

const maxPlacementAttempts = 1000

type ShipSpec struct {
	Name   string `yaml:"name"`
	Length int    `yaml:"length"`
}

type FleetConfig struct {
	Ships []ShipSpec `yaml:"ships"`
}

func DefaultFleet() []ShipSpec {
	return []ShipSpec{
		{Name: ShipDestroyer, Length: 2},
		{Name: ShipCruiser, Length: 3},
		{Name: ShipBattleship, Length: 4},
	}
}

// LoadFleet reads a YAML fleet definition of the form
//
//	ships:
//	  - name: destroyer
//	    length: 2
func LoadFleet(filePath string) ([]ShipSpec, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fleet file: %w", err)
	}
	return ParseFleet(data)
}

func ParseFleet(data []byte) ([]ShipSpec, error) {
	var config FleetConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse fleet YAML: %w", err)
	}
	if len(config.Ships) == 0 {
		return nil, cerr.ErrInvalidFleet("no ships defined")
	}

	for i, spec := range config.Ships {
		if spec.Name == "" {
			return nil, cerr.ErrInvalidFleet(fmt.Sprintf("ship %d has no name", i))
		}
		if spec.Length < 1 {
			return nil, cerr.ErrInvalidFleet(fmt.Sprintf("ship %q has length %d", spec.Name, spec.Length))
		}
	}
	return config.Ships, nil
}

// ValidateFleet checks that every ship fits on a width x height board and
// that the fleet does not need more cells than the board has.
func ValidateFleet(specs []ShipSpec, width, height int) error {
	if len(specs) == 0 {
		return cerr.ErrInvalidFleet("no ships defined")
	}

	total := 0
	for _, spec := range specs {
		if spec.Length < 1 || spec.Length > max(width, height) {
			return cerr.ErrInvalidFleet(fmt.Sprintf("ship %q of length %d does not fit a %dx%d board", spec.Name, spec.Length, width, height))
		}
		total += spec.Length
	}
	if total > width*height {
		return cerr.ErrInvalidFleet(fmt.Sprintf("fleet needs %d cells, board has %d", total, width*height))
	}
	return nil
}

func NewFleet(specs []ShipSpec) []*Ship {
	ships := make([]*Ship, 0, len(specs))
	for _, spec := range specs {
		ships = append(ships, NewShip(spec.Name, spec.Length))
	}
	return ships
}

// ValidateFootprint reports whether cells form a straight, contiguous run
// inside the board that does not touch any cell in taken.
func ValidateFootprint(width, height int, taken map[Coordinates]bool, cells []Coordinates) error {
	if len(cells) == 0 {
		return cerr.ErrInvalidFootprint("no cells")
	}

	var dCol, dRow int
	if len(cells) > 1 {
		dCol, dRow = cells[1].Col-cells[0].Col, cells[1].Row-cells[0].Row
		if !(dCol == 1 && dRow == 0) && !(dCol == 0 && dRow == 1) {
			return cerr.ErrInvalidFootprint("cells must run left to right or top to bottom")
		}
	}

	for i, c := range cells {
		if !c.within(width, height) {
			return cerr.ErrInvalidFootprint(fmt.Sprintf("%s is off the board", c))
		}
		if taken[c] {
			return cerr.ErrInvalidFootprint(fmt.Sprintf("%s is already occupied", c))
		}
		if c != NewCoordinates(cells[0].Col+i*dCol, cells[0].Row+i*dRow) {
			return cerr.ErrInvalidFootprint(fmt.Sprintf("%s breaks the line", c))
		}
	}
	return nil
}

// PlaceFleet gives every ship a random legal footprint.
func PlaceFleet(rng *rand.Rand, width, height int, ships []*Ship) error {
	taken := make(map[Coordinates]bool)

	for _, ship := range ships {
		placed := false
		for attempt := 0; attempt < maxPlacementAttempts && !placed; attempt++ {
			cells := randomFootprint(rng, width, height, ship.Length())
			if cells == nil || ValidateFootprint(width, height, taken, cells) != nil {
				continue
			}

			ship.SetPosition(cells)
			for _, c := range cells {
				taken[c] = true
			}
			placed = true
		}

		if !placed {
			return cerr.ErrInvalidFleet(fmt.Sprintf("could not place ship %q on a %dx%d board", ship.Name(), width, height))
		}
	}
	return nil
}

func randomFootprint(rng *rand.Rand, width, height, length int) []Coordinates {
	dCol, dRow := 1, 0
	if rng.Intn(2) == 1 {
		dCol, dRow = 0, 1
	}

	maxCol := width - dCol*(length-1)
	maxRow := height - dRow*(length-1)
	if maxCol < 1 || maxRow < 1 {
		return nil
	}

	start := NewCoordinates(rng.Intn(maxCol)+1, rng.Intn(maxRow)+1)
	cells := make([]Coordinates, length)
	for i := range cells {
		cells[i] = NewCoordinates(start.Col+i*dCol, start.Row+i*dRow)
	}
	return cells
}
