package pdfinfo

import (
	"testing"

	"github.com/SeakMengs/PDFStudio/internal/testutil"
)

func TestPageCount(t *testing.T) {
	if got := PageCount(testutil.MinimalPDF(1)); got != 1 {
		t.Errorf("expected 1 page, got %d", got)
	}

	if got := PageCount(testutil.MinimalPDF(2)); got != 2 {
		t.Errorf("expected 2 pages, got %d", got)
	}

	if got := PageCount(testutil.MinimalPDF(5)); got != 5 {
		t.Errorf("expected 5 pages, got %d", got)
	}
}

func TestPageCountDefaultsToOneOnGarbage(t *testing.T) {
	if got := PageCount([]byte("this is not a pdf")); got != 1 {
		t.Errorf("expected 1 page for unparseable input, got %d", got)
	}

	if got := PageCount(nil); got != 1 {
		t.Errorf("expected 1 page for empty input, got %d", got)
	}
}
