package ports

import "io"

// PhotoStore persists candidate photos. Save validates the file and returns
// the public URL it will be served under. Remove is best-effort: it never
// touches the placeholder and tolerates already-missing files.
type PhotoStore interface {
	Save(originalName string, r io.Reader) (string, error)
	Remove(url string) error
}
