package viewer

import (
	"fmt"

	"github.com/pyhub-apps/pdffig/pkg/figmap"
)

// State is the viewer's whole mutable state: the ordered file list, the
// cursor into it, and the presentation toggles. The index is always a
// valid position while the list is non-empty.
type State struct {
	Files  []string
	FigMap []int
	Index  int

	AlwaysOnTop bool
	Hidden      bool
	HelpVisible bool
}

// Count returns the number of images.
func (s *State) Count() int { return len(s.Files) }

// Current returns the file at the cursor, or "" when the list is empty.
func (s *State) Current() string {
	if s.Index < 0 || s.Index >= len(s.Files) {
		return ""
	}
	return s.Files[s.Index]
}

// Next advances the cursor, clamped at the last image.
func (s *State) Next() {
	if s.Index < len(s.Files)-1 {
		s.Index++
	}
}

// Prev moves the cursor back, clamped at the first image.
func (s *State) Prev() {
	if s.Index > 0 {
		s.Index--
	}
}

// First moves the cursor to the first image.
func (s *State) First() { s.Index = 0 }

// Last moves the cursor to the last image.
func (s *State) Last() {
	if n := len(s.Files); n > 0 {
		s.Index = n - 1
	}
}

// Title formats the window title for the current cursor position. With
// a figure map the mapped figure number is shown; a -1 entry reads
// "no figure". Without a map the raw 1-based position is used.
func (s *State) Title() string {
	const base = "PDF Image Viewer"

	n := s.Count()
	if n == 0 {
		return base + " - no images"
	}

	if fig, ok := figmap.Figure(s.FigMap, s.Index); ok {
		if fig == figmap.NoFigure {
			return fmt.Sprintf("%s - no figure (%d/%d)", base, s.Index+1, n)
		}
		return fmt.Sprintf("%s - Fig. %d (%d/%d)", base, fig, s.Index+1, n)
	}
	return fmt.Sprintf("%s - Fig. %d (%d/%d)", base, s.Index+1, s.Index+1, n)
}
