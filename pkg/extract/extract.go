// Package extract pulls embedded raster images out of a PDF and writes
// them to a folder as zero-padded, sequentially numbered PNG files.
// The folder's lexicographic order is the display order.
package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/pdffig/pkg/imaging"
	"github.com/pyhub-apps/pdffig/pkg/pdfdoc"
)

// ErrNoImages is returned when the PDF contains no extractable images.
var ErrNoImages = errors.New("no images found in PDF")

// padWidth is the fixed zero-pad width of image filenames. Six digits
// keep lexicographic and numeric order identical for any realistic
// document.
const padWidth = 6

// Extractor writes a PDF's embedded images to Dir.
type Extractor struct {
	// Dir is the output folder, created if missing.
	Dir string

	// Buffered reuses a previously populated Dir instead of
	// re-extracting.
	Buffered bool

	// Log receives progress and per-image warnings. Defaults to the
	// logrus standard logger.
	Log *logrus.Logger
}

// Run extracts all embedded images from the PDF at pdfPath and returns
// the sorted list of image files in the output folder. In buffered mode
// with a populated folder the PDF is not opened at all and the existing
// list is returned unchanged.
func (e *Extractor) Run(pdfPath string) ([]string, error) {
	log := e.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	if e.Buffered {
		files, err := List(e.Dir)
		if err == nil && len(files) > 0 {
			log.WithFields(logrus.Fields{
				"dir":    e.Dir,
				"images": len(files),
			}).Info("Using buffered images")
			return files, nil
		}
		log.WithField("dir", e.Dir).Warn("Buffered mode requested but folder is empty, extracting")
	}

	info, err := pdfdoc.ReadInfo(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	log.WithFields(logrus.Fields{
		"file":    pdfPath,
		"pages":   info.Pages,
		"backend": info.Backend,
	}).Info("Extracting images")

	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create image folder: %w", err)
	}
	if err := Clear(e.Dir); err != nil {
		return nil, fmt.Errorf("failed to clear image folder: %w", err)
	}

	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.EXTRACTIMAGES
	conf.Offline = true
	conf.ValidateLinks = false

	count := 0
	err = api.ExtractImages(f, nil, func(img model.Image, singleImgPerPage bool, maxPageDigits int) error {
		path := filepath.Join(e.Dir, FileName(count))
		if werr := writePNG(path, img); werr != nil {
			log.WithError(werr).WithFields(logrus.Fields{
				"page":   img.PageNr,
				"object": img.ObjNr,
			}).Warn("Skipping image")
			return nil
		}
		count++
		return nil
	}, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to extract images: %w", err)
	}

	files, err := List(e.Dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoImages
	}

	log.WithField("images", len(files)).Info("Extraction complete")
	return files, nil
}

// writePNG stores one extracted image stream at path as PNG. Streams
// pdfcpu already emits as PNG are copied through, everything else is
// decoded and re-encoded.
func writePNG(path string, img model.Image) error {
	if img.FileType == "png" {
		out, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create image file: %w", err)
		}
		if _, err := io.Copy(out, img); err != nil {
			out.Close()
			// A truncated file would survive the skip and show up in
			// List as a real image.
			os.Remove(path)
			return fmt.Errorf("failed to write image file: %w", err)
		}
		return out.Close()
	}

	decoded, _, err := imaging.Decode(img)
	if err != nil {
		return err
	}
	return imaging.WritePNG(path, decoded)
}

// FileName returns the zero-padded filename for the image at index.
func FileName(index int) string {
	return fmt.Sprintf("image_%0*d.png", padWidth, index)
}

// List returns the PNG files in dir sorted by name, which by the naming
// scheme is also numeric order.
func List(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// Clear removes previously extracted images from dir, leaving any other
// files alone.
func Clear(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "image_*.png"))
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := os.Remove(f); err != nil {
			return err
		}
	}
	return nil
}
