package catalog

import (
	"bytes"
	_ "embed"
)

//go:embed genres.yaml
var defaultManifest []byte

// DefaultGenres returns the built-in genre set.
func DefaultGenres() ([]Genre, error) {
	return LoadGenres(bytes.NewReader(defaultManifest))
}
