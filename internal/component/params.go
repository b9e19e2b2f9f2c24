package component

import (
	"fmt"
	"sort"
)

// Params is the merged parameter map a factory receives. The accessors
// return descriptive errors for wrong types so that a factory can surface
// misconfiguration directly as an instantiation failure.
type Params map[string]any

// CheckAllowed rejects any parameter key outside the given set. Factories
// call it first so that a typoed option fails instantiation instead of being
// silently ignored.
func (p Params) CheckAllowed(keys ...string) error {
	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}
	var unknown []string
	for k := range p {
		if _, ok := allowed[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("unknown parameters %v", unknown)
}

// String returns the named parameter as a string. Absent keys return the
// empty string.
func (p Params) String(key string) (string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string, got %T", key, v)
	}
	return s, nil
}

// Strings returns the named parameter as a string slice. []any values with
// string elements are accepted, since decoded configuration often arrives
// that way.
func (p Params) Strings(key string) ([]string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch vv := v.(type) {
	case []string:
		return vv, nil
	case []any:
		out := make([]string, len(vv))
		for i, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("parameter %q element %d must be a string, got %T", key, i, e)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("parameter %q must be a list of strings, got %T", key, v)
	}
}

// Float returns the named parameter as a float64, accepting integer values.
func (p Params) Float(key string) (float64, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch vv := v.(type) {
	case float64:
		return vv, nil
	case int:
		return float64(vv), nil
	case int64:
		return float64(vv), nil
	default:
		return 0, fmt.Errorf("parameter %q must be a number, got %T", key, v)
	}
}

// Int returns the named parameter as an int, accepting whole float values.
func (p Params) Int(key string) (int, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch vv := v.(type) {
	case int:
		return vv, nil
	case int64:
		return int(vv), nil
	case float64:
		if vv != float64(int(vv)) {
			return 0, fmt.Errorf("parameter %q must be a whole number, got %v", key, vv)
		}
		return int(vv), nil
	default:
		return 0, fmt.Errorf("parameter %q must be an integer, got %T", key, v)
	}
}
