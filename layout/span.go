package layout

import (
	"strconv"
	"strings"

	"github.com/piperubio/registry/model"
)

// EffectiveSpan is what an item occupies at one breakpoint. For a filled
// span Columns is the breakpoint's full column count.
type EffectiveSpan struct {
	Columns int
	Filled  bool
}

// Class returns the unprefixed width class.
func (e EffectiveSpan) Class() string {
	if e.Filled {
		return "col-span-full"
	}

	return "col-span-" + strconv.Itoa(e.Columns)
}

// Token is a width class bound to the breakpoint where it starts to apply.
type Token struct {
	Breakpoint model.Breakpoint
	Class      string
}

func (t Token) String() string {
	return t.Breakpoint.Prefix() + t.Class
}

type ResolvedSpan struct {
	Effective [model.BreakpointCount]EffectiveSpan
	// Tokens holds base first, then only the breakpoints where the
	// effective width changes.
	Tokens []Token
}

// Class joins the tokens into a class attribute value.
func (r ResolvedSpan) Class() string {
	parts := make([]string, len(r.Tokens))
	for i, t := range r.Tokens {
		parts[i] = t.String()
	}

	return strings.Join(parts, " ")
}

// ResolveSpan computes the width of an item at every breakpoint. A nil spec
// is span 1. Invalid requests become 1, numeric requests are clamped to the
// available columns, and filled always takes the whole row.
//
// Filled is resolved per item: it does not look at what siblings already
// occupy, so consecutive filled items each claim a full row.
func ResolveSpan(spec *model.SpanSpec, cols model.ResolvedColumns) ResolvedSpan {
	var (
		resolved ResolvedSpan
		values   map[model.Breakpoint]model.SpanValue
	)

	if spec != nil {
		values = spec.Values
	}

	requested := model.Cols(1)
	resolved.Tokens = make([]Token, 0, model.BreakpointCount)

	for _, bp := range model.Breakpoints {
		if v, ok := values[bp]; ok {
			requested = v
		}

		eff := effectiveAt(requested, cols[bp])
		resolved.Effective[bp] = eff

		if bp == model.Base || !sameWidth(eff, resolved.Effective[bp-1]) {
			resolved.Tokens = append(resolved.Tokens, Token{Breakpoint: bp, Class: eff.Class()})
		}
	}

	return resolved
}

func effectiveAt(requested model.SpanValue, columns int) EffectiveSpan {
	columns = max(columns, 1)

	if requested.Filled {
		return EffectiveSpan{Columns: columns, Filled: true}
	}

	n := requested.Count
	if !requested.Valid || n <= 0 {
		n = 1
	}

	return EffectiveSpan{Columns: min(n, columns)}
}

// sameWidth compares the emitted classes. A filled span keeps a single
// col-span-full token even when the column count underneath grows.
func sameWidth(a, b EffectiveSpan) bool {
	if a.Filled || b.Filled {
		return a.Filled == b.Filled
	}

	return a.Columns == b.Columns
}
