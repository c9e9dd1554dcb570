package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxColumns is the widest grid the layout emits classes for.
const MaxColumns = 12

// ColumnConfig declares a column count for some breakpoints. Breakpoints
// without an entry inherit the nearest narrower one.
type ColumnConfig map[Breakpoint]int

// ResolvedColumns has a concrete column count for every breakpoint.
type ResolvedColumns [BreakpointCount]int

// ParseColumnConfig reads "3" or "base:1,md:2,lg:3". Malformed parts are
// skipped; counts are left for normalization to clamp.
func ParseColumnConfig(s string) ColumnConfig {
	cfg := make(ColumnConfig)

	s = strings.TrimSpace(s)
	if s == "" {
		return cfg
	}

	if !strings.Contains(s, ":") {
		if n, err := strconv.Atoi(s); err == nil {
			cfg[Base] = n
		}

		return cfg
	}

	for _, part := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}

		bp, ok := ParseBreakpoint(name)
		if !ok {
			continue
		}

		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}

		cfg[bp] = n
	}

	return cfg
}

func (c ColumnConfig) String() string {
	parts := make([]string, 0, len(c))

	for _, bp := range Breakpoints {
		if n, ok := c[bp]; ok {
			parts = append(parts, fmt.Sprintf("%s:%d", bp, n))
		}
	}

	return strings.Join(parts, ",")
}

// UnmarshalJSON accepts a bare number (meaning {base: n}) or an object keyed
// by breakpoint name. Counts that are not positive integers, given as numbers
// or numeric strings, are dropped so the breakpoint inherits; a malformed
// document decodes as an empty config.
func (c *ColumnConfig) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	cfg := make(ColumnConfig)

	if len(data) > 0 && data[0] != '{' {
		if n, ok := columnCount(data); ok {
			cfg[Base] = n
		}

		*c = cfg

		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*c = cfg

		return nil
	}

	for name, value := range raw {
		bp, ok := ParseBreakpoint(name)
		if !ok {
			continue
		}

		if n, ok := columnCount(value); ok {
			cfg[bp] = n
		}
	}

	*c = cfg

	return nil
}

func columnCount(data json.RawMessage) (int, bool) {
	text := string(bytes.TrimSpace(data))

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		text = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f <= 0 || f > math.MaxInt32 {
		return 0, false
	}

	return int(f), true
}

// Variant is the visual treatment of a description grid.
type Variant string

const (
	VariantBasic    Variant = "basic"
	VariantBordered Variant = "bordered"
)

func ParseVariant(s string) Variant {
	if strings.EqualFold(strings.TrimSpace(s), string(VariantBordered)) {
		return VariantBordered
	}

	return VariantBasic
}

// Direction controls whether a cell's label and content sit side by side.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Vertical)) {
		return Vertical
	}

	return Horizontal
}
