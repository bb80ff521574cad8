package utils

import (
	"bytes"
	"encoding/json"
	"sort"
)

// OrderedKV is a value with its position in the encoded object.
type OrderedKV[T any] struct {
	Value T
	Order int64
}

// OrderedKVMap encodes as a JSON object whose keys follow Order instead of
// the alphabetical order encoding/json uses for maps.
type OrderedKVMap[T any] map[string]OrderedKV[T]

// Append places value after every key already in the map.
func (om OrderedKVMap[T]) Append(key string, value T) {
	next := int64(0)
	for _, v := range om {
		if v.Order >= next {
			next = v.Order + 1
		}
	}
	om[key] = OrderedKV[T]{Value: value, Order: next}
}

// Keys returns the keys in encoding order.
func (om OrderedKVMap[T]) Keys() []string {
	keys := make([]string, 0, len(om))
	for k := range om {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := om[keys[i]], om[keys[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return keys[i] < keys[j]
	})
	return keys
}

func (om OrderedKVMap[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range om.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyBytes, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valueBytes, err := json.Marshal(om[key].Value)
		if err != nil {
			return nil, err
		}
		buf.Write(valueBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
