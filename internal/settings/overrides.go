package settings

import "fmt"

// ConfigOverride sets one key of a configuration object. Value is either a
// bool or a string.
type ConfigOverride struct {
	Object string `json:"object" yaml:"object"`
	Key    string `json:"key" yaml:"key"`
	Value  any    `json:"value" yaml:"value"`
}

// BoolOverride builds a boolean ConfigOverride.
func BoolOverride(object, key string, value bool) ConfigOverride {
	return ConfigOverride{Object: object, Key: key, Value: value}
}

// StringOverride builds a string ConfigOverride.
func StringOverride(object, key, value string) ConfigOverride {
	return ConfigOverride{Object: object, Key: key, Value: value}
}

// Path returns "object[key]" for display.
func (o ConfigOverride) Path() string {
	return fmt.Sprintf("%s[%s]", o.Object, o.Key)
}

// Overrides is an ordered list of configuration overrides.
type Overrides []ConfigOverride

// Lookup returns the value of the last override for (object, key).
func (o Overrides) Lookup(object, key string) (any, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Object == object && o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// Objects returns the configuration object names in first-seen order.
func (o Overrides) Objects() []string {
	seen := make(map[string]struct{}, len(o))
	names := make([]string, 0, len(o))
	for _, ov := range o {
		if _, ok := seen[ov.Object]; ok {
			continue
		}
		seen[ov.Object] = struct{}{}
		names = append(names, ov.Object)
	}
	return names
}

// Set returns a copy of o with ov applied. An existing override for the same
// (object, key) is replaced in place; a new one is appended.
func (o Overrides) Set(ov ConfigOverride) Overrides {
	out := make(Overrides, len(o), len(o)+1)
	copy(out, o)
	for i := range out {
		if out[i].Object == ov.Object && out[i].Key == ov.Key {
			out[i].Value = ov.Value
			return out
		}
	}
	return append(out, ov)
}
