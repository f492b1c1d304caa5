// ABOUTME: Archive domain model for bulk thumbnail downloads
// ABOUTME: Represents a built ZIP bundle ready to stream to the caller

package domain

// Archive is an in-memory ZIP bundle of fetched thumbnails.
type Archive struct {
	// Filename is the suggested attachment name, derived from the query
	// (spaces replaced with underscores) and the page number.
	Filename string

	// Data is the complete ZIP file content.
	Data []byte

	// EntryCount is the number of images that made it into the archive.
	EntryCount int
}
