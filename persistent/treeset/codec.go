package treeset

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/pds/persistent/bintree"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes s as a JSON array, in order.
func (s Set[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// UnmarshalJSON decodes a JSON array into s. s has to carry a comparator, i.e. it must
// have been created by New or Natural. Previous elements of s are discarded.
func (s *Set[E]) UnmarshalJSON(data []byte) error {
	var elems []E
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	return s.rebuild(elems)
}

// MarshalYAML encodes s as a YAML sequence.
func (s Set[E]) MarshalYAML() (interface{}, error) {
	return s.Slice(), nil
}

// UnmarshalYAML decodes a YAML sequence into s, which has to carry a comparator.
func (s *Set[E]) UnmarshalYAML(value *yaml.Node) error {
	var elems []E
	if err := value.Decode(&elems); err != nil {
		return err
	}
	return s.rebuild(elems)
}

func (s *Set[E]) rebuild(elems []E) error {
	if s.cmp == nil {
		return fmt.Errorf("%w: cannot decode into a set without comparator", bintree.ErrInvalidArgument)
	}
	tracer().Debugf("decoding set of %d elements", len(elems))
	*s = Set[E]{cmp: s.cmp, root: bintree.Empty[E]()}.PutAll(elems...)
	return nil
}
