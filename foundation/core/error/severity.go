// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses them to
//              pick a level when an error is logged through LogError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-03-02 v0.2.0: Severity mapping for NGC codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers malformed user input, e.g. a syntax error in a program
	SeverityLow Severity = iota

	// SeverityMedium covers failures that stop one operation but not the caller
	SeverityMedium

	// SeverityHigh covers broken configuration and environment problems
	SeverityHigh

	// SeverityCritical covers violated internal invariants
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeMalformedPostfix, CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeUnresolvedParameter, CodeDomain, CodeNestingTooDeep, CodeInputTooLong:
		return SeverityMedium

	case CodeLex, CodeSyntax, CodeCodeMismatch, CodeUnterminatedBlock, CodeUnbalancedExpression,
		CodeUnknownFunction, CodeUnterminatedProgram, CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
