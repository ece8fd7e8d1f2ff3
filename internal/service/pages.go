package service

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// pdfPageCount returns the number of pages in a PDF document. The parser can
// panic on malformed input, so failures of any shape come back as an error
// for the caller to swallow.
func pdfPageCount(content []byte) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, fmt.Errorf("pdf parse: %w", err)
	}
	n = reader.NumPage()
	if n <= 0 {
		return 0, fmt.Errorf("pdf has no pages")
	}
	return n, nil
}
