package sketch

import (
	"fmt"
	"os"

	"gopkg.in/vmihailenco/msgpack.v2"
)

// Collection groups the sketches of a run with the parameters they were built
// under, in genome list order
type Collection struct {
	Version    string
	KmerSize   uint
	SketchSize uint
	Seed       uint64
	Strategy   string
	Sketches   []*Sketch
}

// Names returns the genome identifiers in collection order
func (collection *Collection) Names() []string {
	names := make([]string, len(collection.Sketches))
	for i, s := range collection.Sketches {
		names[i] = s.ID
	}
	return names
}

// Dump a sketch collection to disk
func (collection *Collection) Dump(path string) error {
	b, err := msgpack.Marshal(collection)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Load a sketch collection from disk
func (collection *Collection) Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := msgpack.Unmarshal(b, collection); err != nil {
		return fmt.Errorf("can't unpack sketch file %v: %v", path, err)
	}
	if len(collection.Sketches) == 0 {
		return fmt.Errorf("sketch file contains no sketches: %v", path)
	}
	return nil
}
