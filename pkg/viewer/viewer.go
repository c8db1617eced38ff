// Package viewer displays a folder of extracted images one at a time in
// an ebiten window. A single event loop polls input, applies the keymap
// and redraws; all state lives on the Viewer.
package viewer

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/pdffig/pkg/imaging"
)

// Viewer implements ebiten.Game for the image browser.
type Viewer struct {
	state State
	log   *logrus.Logger

	current *ebiten.Image
	loaded  int // index current was decoded from, -1 = none
	done    bool
}

// New builds a viewer over the sorted image file list and an optional
// figure map.
func New(files []string, figMap []int, log *logrus.Logger) *Viewer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	v := &Viewer{log: log, loaded: -1}
	v.state.Files = files
	v.state.FigMap = figMap
	return v
}

// Run opens the window and blocks until the user quits.
func (v *Viewer) Run(width, height int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(v.state.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}

// Update applies one frame of input to the state.
func (v *Viewer) Update() error {
	for _, b := range bindings {
		if b.nav && v.state.HelpVisible {
			continue
		}
		for _, key := range b.keys {
			if inpututil.IsKeyJustPressed(key) {
				b.fn(v)
			}
		}
	}

	if !v.state.HelpVisible {
		_, wheelY := ebiten.Wheel()
		switch {
		case wheelY > 0:
			v.state.Prev()
		case wheelY < 0:
			v.state.Next()
		}
	}

	if v.done {
		return ebiten.Termination
	}

	if v.state.Index != v.loaded {
		v.load()
	}
	ebiten.SetWindowTitle(v.state.Title())
	return nil
}

// Draw renders the current image fitted to the window, plus the help
// overlay when visible.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if !v.state.Hidden && v.current != nil {
		v.drawFitted(screen)
	}
	if v.state.HelpVisible {
		v.drawHelp(screen)
	}
}

// Layout keeps the render size equal to the window size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	return outsideWidth, outsideHeight
}

// load decodes the file at the cursor. A failed load leaves the frame
// blank for that index; navigation keeps working.
func (v *Viewer) load() {
	v.loaded = v.state.Index
	v.current = nil

	path := v.state.Current()
	if path == "" {
		return
	}
	img, err := imaging.DecodeFile(path)
	if err != nil {
		v.log.WithError(err).WithField("file", path).Warn("Failed to load image")
		return
	}
	v.current = ebiten.NewImageFromImage(img)
}

func (v *Viewer) drawFitted(screen *ebiten.Image) {
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	iw := v.current.Bounds().Dx()
	ih := v.current.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}

	scale := math.Min(float64(sw)/float64(iw), float64(sh)/float64(ih))
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(sw)-float64(iw)*scale)/2,
		(float64(sh)-float64(ih)*scale)/2,
	)
	screen.DrawImage(v.current, op)
}

func (v *Viewer) drawHelp(screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{A: 0xb0}, false)
	ebitenutil.DebugPrintAt(screen, helpText, 16, 16)
}

// Keymap actions.

func (v *Viewer) prev()  { v.state.Prev() }
func (v *Viewer) next()  { v.state.Next() }
func (v *Viewer) first() { v.state.First() }
func (v *Viewer) last()  { v.state.Last() }

// reload forces the current file to be re-read from disk next frame.
func (v *Viewer) reload() { v.loaded = -1 }

func (v *Viewer) toggleAlwaysOnTop() {
	v.state.AlwaysOnTop = !v.state.AlwaysOnTop
	ebiten.SetWindowFloating(v.state.AlwaysOnTop)
}

func (v *Viewer) toggleHidden() { v.state.Hidden = !v.state.Hidden }
func (v *Viewer) toggleHelp()   { v.state.HelpVisible = !v.state.HelpVisible }

// escape dismisses the help overlay if it is up, otherwise quits.
func (v *Viewer) escape() {
	if v.state.HelpVisible {
		v.state.HelpVisible = false
		return
	}
	v.done = true
}

func (v *Viewer) quit() { v.done = true }
