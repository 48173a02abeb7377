package colormap

import (
	"encoding/json"
	"io"
	"os"

	"github.com/mmuldo/viscm/palette"
	"github.com/pkg/errors"
)

// Definition is the JSON form of a single colormap.
type Definition struct {
	Name     string        `json:"name"`
	Colors   []palette.RGB `json:"colors"`
	Metadata *Metadata     `json:"metadata,omitempty"`
}

// Index is the JSON layout of a colormap collection: the colormaps plus an
// optional category -> names table.
type Index struct {
	Colormaps  []Definition        `json:"colormaps"`
	Categories map[string][]string `json:"categories,omitempty"`
}

// Define returns the JSON form of cm.
func Define(cm Colormap) Definition {
	meta := cm.Metadata
	return Definition{Name: cm.Name, Colors: cm.Colors(), Metadata: &meta}
}

// Colormap validates d and converts it.
func (d Definition) Colormap() (Colormap, error) {
	var meta Metadata
	if d.Metadata != nil {
		meta = *d.Metadata
	}
	return New(d.Name, d.Colors, meta)
}

// ReadIndex decodes an index and builds a registry from it. Colormaps
// without a category pick one up from the index's category table.
func ReadIndex(r io.Reader) (*Registry, error) {
	var idx Index
	if err := json.NewDecoder(r).Decode(&idx); err != nil {
		return nil, errors.Wrap(err, "decoding colormap index")
	}

	category := make(map[string]string)
	for cat, names := range idx.Categories {
		for _, n := range names {
			category[n] = cat
		}
	}

	cms := make([]Colormap, 0, len(idx.Colormaps))
	for _, d := range idx.Colormaps {
		cm, err := d.Colormap()
		if err != nil {
			return nil, err
		}
		if cm.Metadata.Category == "" {
			cm.Metadata.Category = category[cm.Name]
		}
		cms = append(cms, cm)
	}
	return NewRegistry(cms...)
}

// LoadIndex reads an index file from path.
func LoadIndex(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reg, err := ReadIndex(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return reg, nil
}

// WriteDefinition encodes cm as indented JSON.
func WriteDefinition(w io.Writer, cm Colormap) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Define(cm))
}
