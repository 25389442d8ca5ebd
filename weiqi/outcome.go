package weiqi

// Illegal is the category of a rejected move
type Illegal int8

// Rejection categories
const (
	NotIllegal Illegal = iota
	OutOfBounds
	RuleViolation
)

// Rule is the rule broken by a move in the RuleViolation category
type Rule int8

// Rules checked after bounds
const (
	NoRule Rule = iota
	Suicide
	RepeatMove
)

func (r Rule) String() string {
	switch r {
	case Suicide:
		return "suicide"
	case RepeatMove:
		return "repeat move"
	}
	return "none"
}

// Outcome is the result of checking or applying a move. The zero value
// is Legal.
type Outcome struct {
	Illegal Illegal
	Rule    Rule
}

// Legal is the outcome of an accepted move
var Legal = Outcome{}

var outOfBounds = Outcome{Illegal: OutOfBounds}

func broken(r Rule) Outcome {
	return Outcome{Illegal: RuleViolation, Rule: r}
}

// IsLegal reports whether the move was accepted
func (o Outcome) IsLegal() bool {
	return o.Illegal == NotIllegal
}

func (o Outcome) String() string {
	switch o.Illegal {
	case NotIllegal:
		return "legal"
	case OutOfBounds:
		return "illegal: out of bounds"
	}
	return "illegal: rule: " + o.Rule.String()
}

// Err returns the sentinel error matching the outcome, or nil when legal
func (o Outcome) Err() error {
	switch o.Illegal {
	case NotIllegal:
		return nil
	case OutOfBounds:
		return ErrOutOfBounds
	}
	switch o.Rule {
	case Suicide:
		return ErrSuicide
	case RepeatMove:
		return ErrRepeatMove
	}
	return ErrRuleViolation
}
