// Package pdffig extracts the embedded images of a PDF into numbered
// PNG files and browses them in a simple viewer window.
package pdffig

import (
	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/pdffig/pkg/config"
	"github.com/pyhub-apps/pdffig/pkg/extract"
	"github.com/pyhub-apps/pdffig/pkg/figmap"
	"github.com/pyhub-apps/pdffig/pkg/pdfdoc"
	"github.com/pyhub-apps/pdffig/pkg/viewer"
)

// Re-export types from the internal packages for the public API
type (
	Config    = config.Config
	Extractor = extract.Extractor
	Viewer    = viewer.Viewer
	Info      = pdfdoc.Info
)

// ErrNoImages is returned when the PDF contains no extractable images.
var ErrNoImages = extract.ErrNoImages

// ExtractImages writes the embedded images of the PDF at pdfPath to dir
// and returns the sorted file list. With buffered set, a previously
// populated dir is reused without re-extraction.
func ExtractImages(pdfPath, dir string, buffered bool, log *logrus.Logger) ([]string, error) {
	e := &extract.Extractor{Dir: dir, Buffered: buffered, Log: log}
	return e.Run(pdfPath)
}

// LoadFigureMap reads the optional index-to-figure-number map file.
func LoadFigureMap(path string) ([]int, error) {
	return figmap.Load(path)
}

// View opens the viewer window over files and blocks until the user
// quits. figMap may be nil.
func View(files []string, figMap []int, cfg Config, log *logrus.Logger) error {
	v := viewer.New(files, figMap, log)
	return v.Run(cfg.Window.Width, cfg.Window.Height)
}

// ReadInfo preflights the PDF at path and reports its page count.
func ReadInfo(path string) (Info, error) {
	return pdfdoc.ReadInfo(path)
}
