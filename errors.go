package peg

import "fmt"

// ThrownError is a fatal condition raised by a stack action via
// State.Throw. Unlike an ordinary combinator failure it is never recovered
// by backtracking: once set on the parse state, every combinator wrapper
// short-circuits to false until the parse unwinds.
type ThrownError struct {
	Label   string
	Message string
	Span    Span
}

func (e *ThrownError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s @ %s", e.Label, e.Message, e.Span)
	}
	return fmt.Sprintf("%s @ %s", e.Label, e.Span)
}

// DiagnosticKind classifies a well-formedness failure (§4.6).
type DiagnosticKind int

const (
	DiagnosticLeftRecursion DiagnosticKind = iota
	DiagnosticNullableRepetition
	DiagnosticNullableToken
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticLeftRecursion:
		return "left-recursion"
	case DiagnosticNullableRepetition:
		return "nullable-repetition"
	case DiagnosticNullableToken:
		return "nullable-token"
	default:
		return "unknown"
	}
}

// Diagnostic names one rule involved in a well-formedness violation.
type Diagnostic struct {
	Kind    DiagnosticKind
	Rule    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}
