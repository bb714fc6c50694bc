package model

import (
	"sort"
	"strconv"
)

// Payload is one decoded webhook event object. Nothing about its shape is
// guaranteed, so every accessor returns the zero value for missing or
// mistyped fields.
type Payload map[string]any

// Has reports whether key is present at the top level, even if its value is null.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Object returns the nested object at path, or nil.
func (p Payload) Object(path ...string) Payload {
	var cur any = map[string]any(p)
	for _, k := range path {
		m, ok := asMap(cur)
		if !ok {
			return nil
		}
		cur = m[k]
	}
	m, ok := asMap(cur)
	if !ok {
		return nil
	}
	return m
}

// HasPath reports whether the last key of path is present inside its parent object.
func (p Payload) HasPath(path ...string) bool {
	if len(path) == 0 {
		return false
	}
	parent := p.Object(path[:len(path)-1]...)
	if parent == nil {
		return false
	}
	return parent.Has(path[len(path)-1])
}

// String returns the string at path. Numbers are formatted, anything else is "".
func (p Payload) String(path ...string) string {
	switch v := p.value(path).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Bool returns the boolean at path, false when absent or not a boolean.
func (p Payload) Bool(path ...string) bool {
	v, _ := p.value(path).(bool)
	return v
}

// Action returns the top-level action field.
func (p Payload) Action() string {
	return p.String("action")
}

// Keys returns the sorted top-level keys.
func (p Payload) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p Payload) value(path []string) any {
	if len(path) == 0 {
		return nil
	}
	parent := p.Object(path[:len(path)-1]...)
	if parent == nil {
		return nil
	}
	return parent[path[len(path)-1]]
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Payload:
		return m, true
	default:
		return nil, false
	}
}
