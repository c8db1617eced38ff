// pdffig - extract the embedded images of a PDF and browse them in a
// viewer window.
//
// Usage: pdffig [-b] [-config file] <pdf-path> [maps-file]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/pdffig/pkg/config"
	"github.com/pyhub-apps/pdffig/pkg/extract"
	"github.com/pyhub-apps/pdffig/pkg/figmap"
	"github.com/pyhub-apps/pdffig/pkg/viewer"
)

var (
	buffered   = flag.Bool("b", false, "reuse previously extracted images instead of re-extracting")
	configFile = flag.String("config", "", "config file (default pdffig.yaml if present)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pdffig [-b] [-config file] <pdf-path> [maps-file]\n\nOptions:\n")
	flag.PrintDefaults()
}

// mapsFileArg returns the optional maps-file positional. A value
// starting with "-" is a flag placed after the PDF path, which the
// flag package no longer parses; reject it instead of reading it as a
// filename.
func mapsFileArg(args []string) (string, error) {
	if len(args) < 2 {
		return "", nil
	}
	if strings.HasPrefix(args[1], "-") {
		return "", fmt.Errorf("flags must come before the PDF path, got %q as maps-file", args[1])
	}
	return args[1], nil
}

func main() {
	flag.Usage = usage
	flag.Parse()

	log := logrus.New()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}
	pdfPath := args[0]

	if _, err := os.Stat(pdfPath); err != nil {
		log.WithError(err).Fatalf("PDF file %q does not exist", pdfPath)
	}

	var cfg config.Config
	var err error
	if *configFile != "" {
		cfg, err = config.Load(*configFile)
	} else {
		cfg, err = config.LoadOrDefault()
	}
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	e := &extract.Extractor{Dir: cfg.ImagesDir, Buffered: *buffered, Log: log}
	files, err := e.Run(pdfPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to extract images")
	}

	mapsPath, err := mapsFileArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		usage()
		os.Exit(1)
	}

	var figMap []int
	if mapsPath != "" {
		figMap, err = figmap.Load(mapsPath)
		if err != nil {
			log.WithError(err).Fatal("Failed to load figure map")
		}
		if len(figMap) != len(files) {
			log.WithFields(logrus.Fields{
				"entries": len(figMap),
				"images":  len(files),
			}).Warn("Figure map length does not match image count")
		}
	}

	v := viewer.New(files, figMap, log)
	if err := v.Run(cfg.Window.Width, cfg.Window.Height); err != nil {
		log.WithError(err).Fatal("Viewer failed")
	}
}
