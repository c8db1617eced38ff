// extract-images - headless image extraction, no viewer.
//
// Usage: extract-images [-dir images] [-b] <pdf-path>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/pdffig/pkg/extract"
)

var (
	dir      = flag.String("dir", "images", "output folder for extracted images")
	buffered = flag.Bool("b", false, "reuse previously extracted images instead of re-extracting")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: extract-images [-dir images] [-b] <pdf-path>\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logrus.New()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	e := &extract.Extractor{Dir: *dir, Buffered: *buffered, Log: log}
	files, err := e.Run(flag.Arg(0))
	if err != nil {
		log.WithError(err).Fatal("Failed to extract images")
	}

	fmt.Printf("Extracted %d images to %s\n", len(files), *dir)
}
