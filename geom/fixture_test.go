package geom

import (
	"embed"
	"log"
)

// Scenarios are drawn as SVG in grid units, see LoadSVG. Fixtures are
// available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Scenario {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	scenario, err := LoadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return scenario
}

// Build a grid with the given (x, y) cells occupied.
func gridWith(h, w int, cells ...[2]int) Grid {
	g := NewGrid(h, w)
	for _, c := range cells {
		if err := g.Set(c[0], c[1], true); err != nil {
			log.Fatalf("Bad test cell %v: %v", c, err)
		}
	}
	return g
}
