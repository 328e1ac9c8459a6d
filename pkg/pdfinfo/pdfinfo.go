// Package pdfinfo wraps the pdfcpu bits this service needs: reading the page
// count of an uploaded PDF.
package pdfinfo

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageCount reports the number of pages in the given PDF bytes. Parse
// failures are swallowed: a document the library cannot read is treated as a
// single page so the upload still succeeds.
func PageCount(b []byte) int {
	count, err := api.PageCount(bytes.NewReader(b), nil)
	if err != nil || count < 1 {
		return 1
	}

	return count
}
