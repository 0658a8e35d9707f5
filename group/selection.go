package group

// InputType declares the selection semantics of a group. It is fixed for
// the lifetime of the group.
type InputType int

const (
	InputRadio InputType = iota
	InputCheckbox
)

func (t InputType) String() string {
	if t == InputCheckbox {
		return "checkbox"
	}
	return "radio"
}

// PresentationType declares the visual style of a group, independent of
// its selection semantics.
type PresentationType int

const (
	PresentationDefault PresentationType = iota
	PresentationSelector
	PresentationFilter
)

func (t PresentationType) String() string {
	switch t {
	case PresentationSelector:
		return "selector"
	case PresentationFilter:
		return "filter"
	default:
		return "default"
	}
}

// Value is the current selection of a choice group. A radio value holds at
// most one key; a checkbox value holds an ordered list of keys. Key order
// is stable across toggles so re-renders stay deterministic.
type Value struct {
	input  InputType
	single string
	hasOne bool
	keys   []string
}

// SingleValue returns a radio value selecting key.
func SingleValue(key string) Value {
	return Value{input: InputRadio, single: key, hasOne: true}
}

// EmptySingle returns a radio value with nothing selected.
func EmptySingle() Value {
	return Value{input: InputRadio}
}

// MultiValue returns a checkbox value selecting the given keys. Duplicate
// keys keep their first occurrence.
func MultiValue(keys ...string) Value {
	v := Value{input: InputCheckbox}
	for _, k := range keys {
		v = v.ToggleOn(k)
	}
	return v
}

func emptyValue(input InputType) Value {
	return Value{input: input}
}

// Input reports which selection semantics this value carries.
func (v Value) Input() InputType {
	return v.input
}

// Contains reports whether key is selected.
func (v Value) Contains(key string) bool {
	if v.input == InputRadio {
		return v.hasOne && v.single == key
	}
	for _, k := range v.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Size is the number of selected keys. An unset radio value and an empty
// checkbox value both report zero.
func (v Value) Size() int {
	if v.input == InputRadio {
		if v.hasOne {
			return 1
		}
		return 0
	}
	return len(v.keys)
}

// Keys returns the selected keys in stable order. A radio value yields zero
// or one key.
func (v Value) Keys() []string {
	if v.input == InputRadio {
		if v.hasOne {
			return []string{v.single}
		}
		return nil
	}
	return append([]string(nil), v.keys...)
}

// SingleKey returns the selected key of a radio value, if any.
func (v Value) SingleKey() (string, bool) {
	if v.input == InputRadio && v.hasOne {
		return v.single, true
	}
	return "", false
}

// ToggleOn returns a value with key selected. Radio values replace the
// prior selection; checkbox values append. Adding a key that is already
// present is a no-op, so duplicate keys from the caller cannot grow the
// selection.
func (v Value) ToggleOn(key string) Value {
	if v.input == InputRadio {
		v.single = key
		v.hasOne = true
		return v
	}
	if v.Contains(key) {
		return v
	}
	keys := make([]string, 0, len(v.keys)+1)
	keys = append(keys, v.keys...)
	keys = append(keys, key)
	v.keys = keys
	return v
}

// ToggleOff returns a value with key removed. Radio values never deselect:
// there is no uncheck transition for radios, so the value is returned
// unchanged.
func (v Value) ToggleOff(key string) Value {
	if v.input == InputRadio {
		return v
	}
	keys := make([]string, 0, len(v.keys))
	for _, k := range v.keys {
		if k != key {
			keys = append(keys, k)
		}
	}
	v.keys = keys
	return v
}

// Equal reports whether two values select the same keys in the same order
// under the same semantics.
func (v Value) Equal(other Value) bool {
	if v.input != other.input {
		return false
	}
	if v.input == InputRadio {
		return v.hasOne == other.hasOne && (!v.hasOne || v.single == other.single)
	}
	if len(v.keys) != len(other.keys) {
		return false
	}
	for i := range v.keys {
		if v.keys[i] != other.keys[i] {
			return false
		}
	}
	return true
}
