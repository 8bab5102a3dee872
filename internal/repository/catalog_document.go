package repository

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"

	"github.com/limbo/eventtracker/pkg/entity"
)

// catalogDocument is the on-disk catalog: a JSON object of category name to
// date list whose key order is the display order.
type catalogDocument []entity.Category

func (d catalogDocument) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := sonic.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		dates := c.Dates
		if dates == nil {
			dates = []string{}
		}
		value, err := sonic.Marshal(dates)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON walks the object pairs in source order because map decoding
// loses key order. A repeated key keeps its first position and its last value.
func (d *catalogDocument) UnmarshalJSON(data []byte) error {
	if !sonic.Valid(data) {
		return errors.New("catalog is not valid JSON")
	}
	root, err := sonic.GetFromString(string(data))
	if err != nil {
		return err
	}
	if root.TypeSafe() != ast.V_OBJECT {
		return errors.New("catalog must be a JSON object")
	}
	pairs, err := root.Properties()
	if err != nil {
		return err
	}
	out := catalogDocument{}
	index := make(map[string]int)
	var pair ast.Pair
	for pairs.Next(&pair) {
		name := pair.Key
		dates := []string{}
		if pair.Value.TypeSafe() != ast.V_NULL {
			raw, err := pair.Value.Raw()
			if err != nil {
				return fmt.Errorf("category %q: %w", name, err)
			}
			if err = sonic.UnmarshalString(raw, &dates); err != nil {
				return fmt.Errorf("category %q: %w", name, err)
			}
		}
		if i, seen := index[name]; seen {
			out[i].Dates = dates
			continue
		}
		index[name] = len(out)
		out = append(out, entity.Category{Name: name, Dates: dates})
	}
	if err = root.Check(); err != nil {
		return err
	}
	*d = out
	return nil
}
