package model

import (
	"encoding/json"
	"strconv"
)

// ValueKind discriminates the two attribute value types.
type ValueKind int

const (
	// KindNumeric marks float-valued attributes.
	KindNumeric ValueKind = iota
	// KindCategorical marks string-valued attributes.
	KindCategorical
)

// Value is one attribute value: numeric or categorical, possibly absent.
// The zero Value is an absent numeric value.
type Value struct {
	Kind    ValueKind
	Num     float64
	Str     string
	Present bool
}

// Num returns a present numeric value.
func Num(f float64) Value {
	return Value{Kind: KindNumeric, Num: f, Present: true}
}

// NumPtr converts a nullable float into a Value.
func NumPtr(f *float64) Value {
	if f == nil {
		return Value{Kind: KindNumeric}
	}
	return Num(*f)
}

// Str returns a present categorical value.
func Str(s string) Value {
	return Value{Kind: KindCategorical, Str: s, Present: true}
}

// StrPtr converts a nullable string into a Value.
func StrPtr(s *string) Value {
	if s == nil {
		return Value{Kind: KindCategorical}
	}
	return Str(*s)
}

// String renders the value for display; absent values render as "".
func (v Value) String() string {
	if !v.Present {
		return ""
	}
	if v.Kind == KindCategorical {
		return v.Str
	}
	return strconv.FormatFloat(v.Num, 'f', -1, 64)
}

// MarshalJSON renders numeric values as numbers, categorical as strings and
// absent values as null, matching the shape of the original result set.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Present {
		return []byte("null"), nil
	}
	if v.Kind == KindCategorical {
		return json.Marshal(v.Str)
	}
	return json.Marshal(v.Num)
}
