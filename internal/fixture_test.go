package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures. Each fixture is a triangle drawn as the
// first polygon, and its circumcircle drawn as the first circle, both in the
// XY plane. This is not a full (or even correct) svg parser. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type circleFixture struct {
	Points [3]Point
	Center Point
	Radius float64
}

func LoadFixture(name string) *circleFixture {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}
	circles := rootEl.FindAll("circle")
	if len(circles) != 1 {
		log.Fatalf("Expected one circle in fixture %q, found %d", name, len(circles))
	}

	result := &circleFixture{}
	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	if len(pointStrings) != 3 {
		log.Fatalf("Fixture %q is not a triangle", name)
	}
	for i, pointString := range pointStrings {
		parts := strings.Split(pointString, ",")
		if len(parts) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		result.Points[i] = Point{parseFloat(parts[0]), parseFloat(parts[1]), 0}
	}

	circle := circles[0].Attributes
	result.Center = Point{parseFloat(circle["cx"]), parseFloat(circle["cy"]), 0}
	result.Radius = parseFloat(circle["r"])
	return result
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid number %q: %v", s, err)
	}
	return f
}
