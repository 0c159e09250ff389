package schema

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind discriminates the scalar variants a table cell can hold.
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindNumber
)

// Value is a tagged scalar cell: Null, Text, or Number. The zero Value is
// Null, so unset struct fields behave like missing cells.
type Value struct {
	kind Kind
	text string
	num  float64
}

// Text returns a textual Value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// FromCell converts one raw CSV cell into a Value. Leading/trailing
// whitespace is stripped; an empty cell becomes Null; a cell that parses as
// a finite float becomes Number; everything else is Text.
func FromCell(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Value{}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Number(f)
	}
	return Text(s)
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds no value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsText returns the textual payload. ok is false for Null and Number cells.
func (v Value) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// String renders the cell for display and key derivation: the text itself,
// the shortest decimal form of a number, or "" for Null.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return ""
	}
}

// Equal reports deep equality of two cells. Null equals Null.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindNumber:
		return v.num == o.num
	default:
		return true
	}
}

// Key encodes the cell for use as (part of) a map key. The kind prefix keeps
// Text("1") distinct from Number(1), and Null distinct from Text("").
func (v Value) Key() string {
	switch v.kind {
	case KindText:
		return "t:" + v.text
	case KindNumber:
		return "f:" + strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return "n"
	}
}

// MarshalJSON emits null, a JSON string, or a plain JSON number.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindNumber:
		return json.Marshal(v.num)
	default:
		return []byte("null"), nil
	}
}

// SplitName splits a "Last, First" display cell on the first comma. A cell
// without a comma yields (whole, Null); a Null cell yields (Null, Null).
// Parts are trimmed, and a part that trims to nothing becomes Null.
func SplitName(display Value) (last, first Value) {
	s, ok := display.AsText()
	if !ok {
		// Numeric display names have no sensible split either.
		return Value{}, Value{}
	}
	before, after, found := strings.Cut(s, ",")
	last = FromCell(before)
	if !found {
		return last, Value{}
	}
	return last, FromCell(after)
}

// SplitDateTime splits a combined "YYYY-MM-DD HH:MM" cell on the first space
// into (date, time). A cell without a space yields (whole, Null).
func SplitDateTime(cell Value) (date, clock Value) {
	s := cell.String()
	if cell.IsNull() {
		return Value{}, Value{}
	}
	before, after, found := strings.Cut(s, " ")
	date = FromCell(before)
	if !found {
		return date, Value{}
	}
	return date, FromCell(after)
}

// JoinNames derives a "First Last" display name. Null if either part is Null.
func JoinNames(first, last Value) Value {
	if first.IsNull() || last.IsNull() {
		return Value{}
	}
	return Text(strings.TrimSpace(first.String()) + " " + strings.TrimSpace(last.String()))
}
