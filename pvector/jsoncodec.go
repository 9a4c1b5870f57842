package pvector

import (
	"github.com/goccy/go-json"
)

// MarshalJSON encodes the vector as a JSON array.
func (v Vector[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToSlice())
}

// UnmarshalJSON decodes a JSON array (or null) into a freshly built vector.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*v = fromOwned(items)
	return nil
}
