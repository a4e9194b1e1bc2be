package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/inkmesh"
)

// readSamples reads "x y [pressure]" lines. Blank lines and lines starting
// with # are skipped.
func readSamples(in io.Reader) ([]inkmesh.Sample, error) {
	samples := []inkmesh.Sample{}
	err := scanLines(in, func(lineNumber int, line string) error {
		if line == "" {
			return nil
		}
		values, err := parseFields(line, 2, 3)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNumber)
		}
		sample := inkmesh.Sample{Point: inkmesh.Point{X: values[0], Y: values[1]}, Pressure: 1}
		if len(values) == 3 {
			sample.Pressure = values[2]
		}
		samples = append(samples, sample)
		return nil
	})
	return samples, err
}

// readPolygons reads "x y" lines, with each polygon separated by an extra
// newline.
func readPolygons(in io.Reader) ([][]inkmesh.Point, error) {
	polygons := [][]inkmesh.Point{}
	points := []inkmesh.Point{}
	err := scanLines(in, func(lineNumber int, line string) error {
		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = []inkmesh.Point{}
			}
			return nil
		}

		values, err := parseFields(line, 2, 2)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, inkmesh.Point{X: values[0], Y: values[1]})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

// scanLines calls fn with every trimmed line, numbered from 1. Comment lines
// are skipped entirely, so they never end a polygon.
func scanLines(in io.Reader, fn func(lineNumber int, line string) error) error {
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(lineNumber, line); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "read input")
}

func parseFields(line string, minFields, maxFields int) ([]float64, error) {
	parts := strings.Fields(line)
	if len(parts) < minFields || len(parts) > maxFields {
		return nil, errors.Errorf("expected %d to %d numbers, got %d", minFields, maxFields, len(parts))
	}
	values := make([]float64, len(parts))
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", i+1)
		}
		values[i] = value
	}
	return values, nil
}
