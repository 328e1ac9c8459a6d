package util

import (
	"fmt"
	"path/filepath"
)

// BuildStoredFilename derives the blob key for an uploaded document from its
// generated id and the client-supplied name. The id prefix keeps names
// collision free, filepath.Base strips any path the client smuggled in.
//
// Example for id "42ab..." and "notes.pdf": "42ab..._notes.pdf"
func BuildStoredFilename(id string, originalFilename string) string {
	return fmt.Sprintf("%s_%s", id, filepath.Base(originalFilename))
}
