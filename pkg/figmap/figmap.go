// Package figmap reads the optional figure-map file: a flat list of
// comma-separated integers, one per extracted image, giving the logical
// figure number shown for that image. An entry of -1 marks an image
// with no associated figure.
package figmap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// NoFigure is the map entry for images without a logical figure number.
const NoFigure = -1

// Load parses the figure-map file at path. Entries may be separated by
// commas and arbitrary whitespace, including newlines. Trailing commas
// are tolerated.
func Load(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read figure map: %w", err)
	}
	return Parse(string(data))
}

// Parse parses figure-map text into its entries.
func Parse(text string) ([]int, error) {
	var entries []int
	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid figure map entry %q: %w", field, err)
		}
		entries = append(entries, n)
	}
	return entries, nil
}

// Figure returns the figure number mapped to the image at index, or
// NoFigure when the index has no entry or the entry is -1. The second
// return reports whether the index was covered by the map at all.
func Figure(entries []int, index int) (int, bool) {
	if index < 0 || index >= len(entries) {
		return NoFigure, false
	}
	return entries[index], true
}
