package viewer

import "github.com/hajimehoshi/ebiten/v2"

// binding maps a set of keys to one state transition. Navigation
// bindings are suspended while the help overlay is up, which is what
// makes the overlay modal.
type binding struct {
	keys []ebiten.Key
	fn   func(*Viewer)
	nav  bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp, ebiten.KeyPageUp}, fn: (*Viewer).prev, nav: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyArrowDown, ebiten.KeyPageDown, ebiten.KeySpace}, fn: (*Viewer).next, nav: true},
	{keys: []ebiten.Key{ebiten.KeyHome}, fn: (*Viewer).first, nav: true},
	{keys: []ebiten.Key{ebiten.KeyEnd}, fn: (*Viewer).last, nav: true},
	{keys: []ebiten.Key{ebiten.KeyR}, fn: (*Viewer).reload, nav: true},
	{keys: []ebiten.Key{ebiten.KeyT, ebiten.KeyA}, fn: (*Viewer).toggleAlwaysOnTop},
	{keys: []ebiten.Key{ebiten.KeyX}, fn: (*Viewer).toggleHidden},
	{keys: []ebiten.Key{ebiten.KeyH}, fn: (*Viewer).toggleHelp},
	{keys: []ebiten.Key{ebiten.KeyEscape}, fn: (*Viewer).escape},
	{keys: []ebiten.Key{ebiten.KeyQ}, fn: (*Viewer).quit},
}

const helpText = `PDF Image Viewer

  Mouse wheel          previous / next image
  Left / Up / PageUp   previous image
  Right/Down/PageDown  next image
  Space                next image
  Home / End           first / last image
  R                    reload the current image from disk
  T or A               toggle always-on-top
  X                    toggle hiding the image
  H                    toggle this help
  Esc / Q              quit`
