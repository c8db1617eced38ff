// Package pdfdoc opens a PDF just far enough to confirm it is readable
// and report its page count. Three backends are tried in order:
// ledongthuc/pdf, dslipak/pdf, and finally a full pdfcpu read with
// validation. The chain keeps preflight fast on well-formed files while
// still accepting documents the lighter readers choke on.
package pdfdoc

import (
	"fmt"

	dpdf "github.com/dslipak/pdf"
	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Info describes a PDF document after preflight.
type Info struct {
	Path    string
	Pages   int
	Backend string
}

// ReadInfo opens the PDF at path and returns its page count. It fails
// only when every backend rejects the file.
func ReadInfo(path string) (Info, error) {
	info, err := readWithLedongthuc(path)
	if err == nil {
		return info, nil
	}

	info, err = readWithDslipak(path)
	if err == nil {
		return info, nil
	}

	return readWithPdfcpu(path)
}

func readWithLedongthuc(path string) (Info, error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}
	defer f.Close()

	return Info{Path: path, Pages: r.NumPage(), Backend: "ledongthuc"}, nil
}

func readWithDslipak(path string) (Info, error) {
	r, err := dpdf.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	return Info{Path: path, Pages: r.NumPage(), Backend: "dslipak"}, nil
}

func readWithPdfcpu(path string) (Info, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return Info{}, fmt.Errorf("invalid PDF: %w", err)
	}

	return Info{Path: path, Pages: ctx.PageCount, Backend: "pdfcpu"}, nil
}
