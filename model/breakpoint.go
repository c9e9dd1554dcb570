package model

import "strings"

// Breakpoint is a named viewport-width tier, ordered from narrowest to widest.
type Breakpoint int

const (
	Base Breakpoint = iota
	SM
	MD
	LG
	XL
	XXL
)

// BreakpointCount is the number of tiers in the ladder.
const BreakpointCount = int(XXL) + 1

// Breakpoints lists every tier in ascending order.
var Breakpoints = [BreakpointCount]Breakpoint{Base, SM, MD, LG, XL, XXL}

var breakpointNames = [BreakpointCount]string{"base", "sm", "md", "lg", "xl", "2xl"}

func (b Breakpoint) String() string {
	if b < Base || b > XXL {
		return "unknown"
	}

	return breakpointNames[b]
}

// Prefix returns the class prefix used for this tier. Base has none.
func (b Breakpoint) Prefix() string {
	if b <= Base || b > XXL {
		return ""
	}

	return breakpointNames[b] + ":"
}

func ParseBreakpoint(s string) (Breakpoint, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range breakpointNames {
		if name == s {
			return Breakpoint(i), true
		}
	}

	return Base, false
}
