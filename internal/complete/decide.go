package complete

// Action tells the editor what a Tab press should do, per spec.md §4.I's
// count/LCP decision table.
type Action int

const (
	// Bell: zero candidates, or candidates > 1 with LCP == prefix and this
	// is the first of the two required taps. Emit BEL only.
	Bell Action = iota
	// Extend: LCP is strictly longer than prefix. Rewrite the buffer's
	// trailing prefix slice with LCP; append a trailing space if there is
	// exactly one candidate and LCP equals its full length.
	Extend
	// List: second consecutive tab with an unchanged, still-ambiguous
	// prefix. Print the candidates joined by two spaces.
	List
)

// Outcome is the decided action plus whatever text/flag it carries.
type Outcome struct {
	Action        Action
	Extension     string   // for Extend: the full replacement for the prefix
	TrailingSpace bool     // for Extend: append a space after the rewritten prefix
	Candidates    []string // for List: the candidates to print
}

// Decide implements spec.md §4.I's branching: zero candidates -> Bell;
// LCP longer than the typed prefix -> Extend; otherwise (LCP == prefix,
// more than one candidate) -> Bell on the first tab, List on the second.
func Decide(prefix string, candidates []string, lastWasTab bool) Outcome {
	if len(candidates) == 0 {
		return Outcome{Action: Bell}
	}

	lcp := LCP(candidates)
	if len(lcp) > len(prefix) {
		trailing := len(candidates) == 1 && len(lcp) == len(candidates[0])
		return Outcome{Action: Extend, Extension: lcp, TrailingSpace: trailing}
	}

	if lastWasTab {
		return Outcome{Action: List, Candidates: candidates}
	}
	return Outcome{Action: Bell}
}
