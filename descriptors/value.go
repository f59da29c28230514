package descriptors

import (
	"encoding/json"
	"strconv"
)

// Value is the result of one descriptor on one frame: either a number or
// a text (e.g. a molecular formula). The two cases are explicit; there is
// no dynamic typing involved.
type Value struct {
	f    float64
	s    string
	text bool
}

// Float makes a numeric Value.
func Float(f float64) Value {
	return Value{f: f}
}

// Text makes a textual Value.
func Text(s string) Value {
	return Value{s: s, text: true}
}

// Float64 returns the numeric content. The second return is false for
// textual values.
func (v Value) Float64() (float64, bool) {
	return v.f, !v.text
}

// Text returns the textual content. The second return is false for
// numeric values.
func (v Value) Text() (string, bool) {
	return v.s, v.text
}

// IsText reports whether the value is textual.
func (v Value) IsText() bool {
	return v.text
}

// String formats the value for display.
func (v Value) String() string {
	if v.text {
		return v.s
	}
	return strconv.FormatFloat(v.f, 'g', -1, 64)
}

// MarshalJSON encodes numeric values as numbers and textual ones as
// strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.text {
		return json.Marshal(v.s)
	}
	return json.Marshal(v.f)
}

// UnmarshalJSON decodes a JSON number into a numeric value and a JSON
// string into a textual one.
func (v *Value) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*v = Float(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*v = Text(s)
	return nil
}
