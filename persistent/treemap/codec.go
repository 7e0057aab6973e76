package treemap

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/pds/persistent/bintree"
	"github.com/npillmayer/pds/persistent/treeset"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes m as a JSON array of {"key": …, "value": …} objects, in key
// order. Keys need not be strings.
func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.entries.Slice())
}

// UnmarshalJSON decodes entries into m, which has to carry a key comparator.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var entries []Entry[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	return m.rebuild(entries)
}

// MarshalYAML encodes m as a YAML sequence of key/value mappings.
func (m Map[K, V]) MarshalYAML() (interface{}, error) {
	return m.entries.Slice(), nil
}

// UnmarshalYAML decodes entries into m, which has to carry a key comparator.
func (m *Map[K, V]) UnmarshalYAML(value *yaml.Node) error {
	var entries []Entry[K, V]
	if err := value.Decode(&entries); err != nil {
		return err
	}
	return m.rebuild(entries)
}

func (m *Map[K, V]) rebuild(entries []Entry[K, V]) error {
	c := m.entries.Comparator()
	if c == nil {
		return fmt.Errorf("%w: cannot decode into a map without key comparator", bintree.ErrInvalidArgument)
	}
	tracer().Debugf("decoding map of %d entries", len(entries))
	set := treeset.With(c)
	*m = Map[K, V]{entries: set.PutAll(entries...)}
	return nil
}
