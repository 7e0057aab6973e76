package hashset

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes s as a JSON array, in iteration order.
func (s Set[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// UnmarshalJSON decodes a JSON array into s. Options s has been created with are
// kept, previous elements are discarded.
func (s *Set[E]) UnmarshalJSON(data []byte) error {
	var elems []E
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	s.rebuild(elems)
	return nil
}

// MarshalYAML encodes s as a YAML sequence.
func (s Set[E]) MarshalYAML() (interface{}, error) {
	return s.Slice(), nil
}

// UnmarshalYAML decodes a YAML sequence into s.
func (s *Set[E]) UnmarshalYAML(value *yaml.Node) error {
	var elems []E
	if err := value.Decode(&elems); err != nil {
		return err
	}
	s.rebuild(elems)
	return nil
}

func (s *Set[E]) rebuild(elems []E) {
	*s = Set[E]{buckets: emptyBuckets[E](), props: s.props}.PutAll(elems...)
}
