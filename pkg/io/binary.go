package io

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/matzehuels/antennas/pkg/antenna"
)

// binaryFormat tags dumps written by WriteBinary.
const binaryFormat = "antennas/v1"

// ErrBinaryFormat is returned by [ReadBinary] for documents that were not
// written by [WriteBinary].
var ErrBinaryFormat = errors.New("io: unrecognized binary format")

// Dump is the content of a binary snapshot.
type Dump struct {
	Format   string            `bson:"format"`
	Antennas []antenna.Antenna `bson:"antennas"`
	Effects  []antenna.Effect  `bson:"effects"`
}

// WriteBinary encodes antennas and effects as one BSON document.
func WriteBinary(w io.Writer, antennas []antenna.Antenna, effects []antenna.Effect) error {
	doc := Dump{Format: binaryFormat, Antennas: antennas, Effects: effects}
	if doc.Antennas == nil {
		doc.Antennas = []antenna.Antenna{}
	}
	if doc.Effects == nil {
		doc.Effects = []antenna.Effect{}
	}
	data, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportBinary writes a BSON dump to a file at path.
func ExportBinary(path string, antennas []antenna.Antenna, effects []antenna.Effect) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteBinary(w, antennas, effects)
	})
}

// ReadBinary decodes a dump written by [WriteBinary]. ReadBinary does not
// close r.
func ReadBinary(r io.Reader) (*Dump, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if err := bson.Raw(data).Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBinaryFormat, err)
	}
	var d Dump
	if err := bson.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if d.Format != binaryFormat {
		return nil, fmt.Errorf("%w: %q", ErrBinaryFormat, d.Format)
	}
	return &d, nil
}

// ImportBinary reads a BSON dump from a file at path.
func ImportBinary(path string) (*Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadBinary(f)
}
