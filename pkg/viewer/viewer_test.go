package viewer

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestToggleHelp(t *testing.T) {
	v := New([]string{"a.png"}, nil, nil)

	v.toggleHelp()
	if !v.state.HelpVisible {
		t.Fatal("Expected help overlay to be visible after toggle")
	}
	v.toggleHelp()
	if v.state.HelpVisible {
		t.Error("Expected help overlay to be hidden after second toggle")
	}
}

func TestEscapeClosesHelpBeforeQuitting(t *testing.T) {
	v := New([]string{"a.png"}, nil, nil)
	v.toggleHelp()

	v.escape()
	if v.state.HelpVisible {
		t.Error("Expected escape to dismiss the help overlay")
	}
	if v.done {
		t.Error("Expected escape to not quit while dismissing help")
	}

	v.escape()
	if !v.done {
		t.Error("Expected escape to quit with no overlay up")
	}
}

func TestQuitIgnoresHelpOverlay(t *testing.T) {
	v := New([]string{"a.png"}, nil, nil)
	v.toggleHelp()

	v.quit()
	if !v.done {
		t.Error("Expected quit to end the loop even with help visible")
	}
}

func TestToggleHidden(t *testing.T) {
	v := New([]string{"a.png"}, nil, nil)

	v.toggleHidden()
	if !v.state.Hidden {
		t.Fatal("Expected image to be hidden after toggle")
	}
	if v.state.Index != 0 {
		t.Errorf("Expected index to stay at 0, got %d", v.state.Index)
	}
	v.toggleHidden()
	if v.state.Hidden {
		t.Error("Expected image to be shown after second toggle")
	}
}

// Navigation keys must be suspended while the help overlay is up; the
// toggles and quit keys must not be.
func TestBindingNavFlags(t *testing.T) {
	navKeys := map[ebiten.Key]bool{
		ebiten.KeyArrowLeft:  true,
		ebiten.KeyArrowUp:    true,
		ebiten.KeyPageUp:     true,
		ebiten.KeyArrowRight: true,
		ebiten.KeyArrowDown:  true,
		ebiten.KeyPageDown:   true,
		ebiten.KeySpace:      true,
		ebiten.KeyHome:       true,
		ebiten.KeyEnd:        true,
		ebiten.KeyR:          true,
	}

	seen := map[ebiten.Key]bool{}
	for _, b := range bindings {
		for _, key := range b.keys {
			if seen[key] {
				t.Errorf("Key %v bound twice", key)
			}
			seen[key] = true

			if b.nav != navKeys[key] {
				t.Errorf("Key %v: nav = %v, want %v", key, b.nav, navKeys[key])
			}
		}
	}

	for key := range navKeys {
		if !seen[key] {
			t.Errorf("Navigation key %v has no binding", key)
		}
	}
	for _, key := range []ebiten.Key{ebiten.KeyT, ebiten.KeyA, ebiten.KeyX, ebiten.KeyH, ebiten.KeyEscape, ebiten.KeyQ} {
		if !seen[key] {
			t.Errorf("Key %v has no binding", key)
		}
	}
}

func TestReloadForcesReread(t *testing.T) {
	v := New([]string{"a.png"}, nil, nil)
	v.loaded = 0

	v.reload()
	if v.loaded == v.state.Index {
		t.Error("Expected reload to invalidate the loaded index")
	}
}
