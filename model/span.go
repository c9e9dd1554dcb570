package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FilledKeyword is the symbolic span meaning "occupy every column".
const FilledKeyword = "filled"

// SpanValue is a single span request: either a column count or Filled.
// Invalid requests are kept as-is and resolve to one column.
type SpanValue struct {
	Count  int
	Filled bool
	Valid  bool
	raw    string
}

// Cols returns a numeric span request.
func Cols(n int) SpanValue {
	return SpanValue{Count: n, Valid: n > 0, raw: strconv.Itoa(n)}
}

// Filled returns the "filled" span request.
func Filled() SpanValue {
	return SpanValue{Filled: true, Valid: true, raw: FilledKeyword}
}

// ParseSpanValue never fails. Anything that is not "filled" or a positive
// integer is recorded as an invalid request.
func ParseSpanValue(s string) SpanValue {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, FilledKeyword) {
		v := Filled()
		v.raw = s

		return v
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f <= 0 || f > math.MaxInt32 {
		return SpanValue{raw: s}
	}

	return SpanValue{Count: int(f), Valid: true, raw: s}
}

// Raw returns the caller's original text for this value.
func (v SpanValue) Raw() string {
	if v.raw != "" {
		return v.raw
	}

	if v.Filled {
		return FilledKeyword
	}

	return strconv.Itoa(v.Count)
}

func (v SpanValue) String() string {
	return v.Raw()
}

// UnmarshalJSON accepts a number or a string.
func (v *SpanValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("could not decode span value: %w", err)
		}

		*v = ParseSpanValue(s)

		return nil
	}

	*v = ParseSpanValue(string(data))

	return nil
}

func (v SpanValue) MarshalJSON() ([]byte, error) {
	if v.Filled {
		return json.Marshal(FilledKeyword)
	}

	if v.Valid {
		return []byte(strconv.Itoa(v.Count)), nil
	}

	return json.Marshal(v.Raw())
}

// SpanSpec is either one value for every breakpoint or a per-breakpoint map.
// Missing breakpoints inherit the nearest narrower one; base defaults to 1.
type SpanSpec struct {
	Values     map[Breakpoint]SpanValue
	Responsive bool
}

func UniformSpan(v SpanValue) *SpanSpec {
	return &SpanSpec{Values: map[Breakpoint]SpanValue{Base: v}}
}

func ResponsiveSpan(values map[Breakpoint]SpanValue) *SpanSpec {
	copied := make(map[Breakpoint]SpanValue, len(values))
	for bp, v := range values {
		copied[bp] = v
	}

	return &SpanSpec{Values: copied, Responsive: true}
}

// ParseSpanSpec reads "3", "filled" or "base:filled,md:2,lg:3".
// Unknown breakpoint names are skipped. Text where no breakpoint is known is
// kept as a single invalid value.
func ParseSpanSpec(s string) *SpanSpec {
	if !strings.Contains(s, ":") {
		return UniformSpan(ParseSpanValue(s))
	}

	values := make(map[Breakpoint]SpanValue)

	for _, part := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}

		bp, ok := ParseBreakpoint(name)
		if !ok {
			continue
		}

		values[bp] = ParseSpanValue(strings.TrimSpace(value))
	}

	if len(values) == 0 {
		return UniformSpan(ParseSpanValue(s))
	}

	return &SpanSpec{Values: values, Responsive: true}
}

// Raw renders the declaration as the caller wrote it, in breakpoint order.
func (s *SpanSpec) Raw() string {
	if s == nil {
		return "1"
	}

	if !s.Responsive {
		v, ok := s.Values[Base]
		if !ok {
			return "1"
		}

		return v.Raw()
	}

	parts := make([]string, 0, len(s.Values))

	for _, bp := range Breakpoints {
		if v, ok := s.Values[bp]; ok {
			parts = append(parts, bp.String()+":"+v.Raw())
		}
	}

	if len(parts) == 0 {
		return "1"
	}

	return strings.Join(parts, ",")
}

// UnmarshalJSON accepts a number, a string or an object keyed by breakpoint.
func (s *SpanSpec) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		var v SpanValue
		if err := v.UnmarshalJSON(data); err != nil {
			return err
		}

		*s = *UniformSpan(v)

		return nil
	}

	var raw map[string]SpanValue
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("could not decode responsive span: %w", err)
	}

	values := make(map[Breakpoint]SpanValue, len(raw))

	for name, v := range raw {
		if bp, ok := ParseBreakpoint(name); ok {
			values[bp] = v
		}
	}

	*s = SpanSpec{Values: values, Responsive: true}

	return nil
}
