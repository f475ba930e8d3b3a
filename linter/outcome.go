package linter

// OutcomeKind discriminates the three possible results of a pipeline stage.
type OutcomeKind int

const (
	// KindNotApplicable means the document did not declare itself as belonging
	// to the stage's dialect at all. Not an error: try the other dialect.
	KindNotApplicable OutcomeKind = iota
	// KindParsedWithErrors means diagnostics were produced and the document is
	// rejected from further processing. The diagnostics are available as
	// Violations.
	KindParsedWithErrors
	// KindSuccess means the stage produced a usable value.
	KindSuccess
)

// String returns the string representation of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case KindNotApplicable:
		return "not-applicable"
	case KindParsedWithErrors:
		return "parsed-with-errors"
	case KindSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of a pipeline stage. Exactly one of Value
// (KindSuccess) or Violations (KindParsedWithErrors) is meaningful; a
// KindNotApplicable outcome carries neither.
//
// Stages compose by short-circuiting: a caller checks IsSuccess before using
// Value and otherwise propagates the outcome unchanged.
type Outcome[T any] struct {
	Kind       OutcomeKind
	Value      T
	Violations []Violation
}

// Success wraps a usable value in a KindSuccess outcome.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{Kind: KindSuccess, Value: value}
}

// ParsedWithErrors wraps diagnostics in a KindParsedWithErrors outcome.
func ParsedWithErrors[T any](violations ...Violation) Outcome[T] {
	return Outcome[T]{Kind: KindParsedWithErrors, Violations: violations}
}

// NotApplicable returns a KindNotApplicable outcome.
func NotApplicable[T any]() Outcome[T] {
	return Outcome[T]{Kind: KindNotApplicable}
}

// IsSuccess returns true for KindSuccess outcomes.
func (o Outcome[T]) IsSuccess() bool { return o.Kind == KindSuccess }

// IsNotApplicable returns true for KindNotApplicable outcomes.
func (o Outcome[T]) IsNotApplicable() bool { return o.Kind == KindNotApplicable }

// IsParsedWithErrors returns true for KindParsedWithErrors outcomes.
func (o Outcome[T]) IsParsedWithErrors() bool { return o.Kind == KindParsedWithErrors }
