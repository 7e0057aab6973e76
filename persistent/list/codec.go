package list

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes l as a JSON array.
func (l List[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Slice())
}

// UnmarshalJSON decodes a JSON array into l.
func (l *List[E]) UnmarshalJSON(data []byte) error {
	var elems []E
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	*l = Of(elems...)
	return nil
}

// MarshalYAML encodes l as a YAML sequence.
func (l List[E]) MarshalYAML() (interface{}, error) {
	return l.Slice(), nil
}

// UnmarshalYAML decodes a YAML sequence into l.
func (l *List[E]) UnmarshalYAML(value *yaml.Node) error {
	var elems []E
	if err := value.Decode(&elems); err != nil {
		return err
	}
	*l = Of(elems...)
	return nil
}
