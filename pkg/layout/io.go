package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/barrierkit/pkg/errors"
	"github.com/matzehuels/barrierkit/pkg/grid"
)

// Marshal encodes l as indented JSON.
func Marshal(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes and validates a JSON layout.
func Unmarshal(data []byte) (Layout, error) {
	return ReadJSON(bytes.NewReader(data))
}

// WriteJSON encodes l as JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(l Layout, w io.Writer) error {
	if l.Locations == nil {
		l.Locations = []grid.Coord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a layout from r and validates it. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		if errors.GetCode(err) != "" {
			return Layout{}, err
		}
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// ImportJSON reads a layout from the JSON file at path.
func ImportJSON(path string) (Layout, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Layout{}, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ExportJSON writes l to a JSON file at path.
func ExportJSON(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(l, f)
}
