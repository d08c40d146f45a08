package domain

// Confidence ranks how an internal user id was extracted from a
// provider-controlled correlation string.
type Confidence int

const (
	// ConfidenceNone means the string yielded no usable id.
	ConfidenceNone Confidence = iota
	// ConfidenceExact means a role-tagged template matched exactly.
	ConfidenceExact
	// ConfidenceNumeric means the whole string was a numeric id.
	ConfidenceNumeric
	// ConfidenceHeuristic means an embedded digit run within a plausible
	// id range was found. Heuristic hits are reported, never auto-linked.
	ConfidenceHeuristic
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceExact:
		return "exact"
	case ConfidenceNumeric:
		return "numeric"
	case ConfidenceHeuristic:
		return "heuristic"
	default:
		return "none"
	}
}

// Resolution is the typed result of correlation-id parsing. The zero
// value means unresolved.
type Resolution struct {
	UserID     int64
	Confidence Confidence
}

// Resolved returns true if any extraction strategy produced an id.
func (r Resolution) Resolved() bool {
	return r.Confidence != ConfidenceNone
}

// Trusted returns true for resolutions strong enough to mutate entity
// links. Heuristic guesses are excluded: they are logged for review
// instead of being linked blindly.
func (r Resolution) Trusted() bool {
	return r.Confidence == ConfidenceExact || r.Confidence == ConfidenceNumeric
}
