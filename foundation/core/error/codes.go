// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the ngc foundation. Parser
//              and evaluator codes map one-to-one onto the failure kinds a
//              caller can branch on; the generic and configuration codes are
//              shared with the config and CLI layers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-03-02 v0.2.0: Replaced service codes with NGC parser/evaluator codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Lexing and grammar
	CodeLex                   Code = "NGC_LEX"
	CodeSyntax                Code = "NGC_SYNTAX"
	CodeCodeMismatch          Code = "NGC_CODE_MISMATCH"
	CodeUnterminatedBlock     Code = "NGC_UNTERMINATED_BLOCK"
	CodeUnbalancedExpression  Code = "NGC_UNBALANCED_EXPRESSION"
	CodeUnknownFunction       Code = "NGC_UNKNOWN_FUNCTION"
	CodeNestingTooDeep        Code = "NGC_NESTING_TOO_DEEP"
	CodeUnterminatedProgram   Code = "NGC_UNTERMINATED_PROGRAM"
	CodeInputTooLong          Code = "NGC_INPUT_TOO_LONG"

	// Evaluation
	CodeUnresolvedParameter Code = "NGC_UNRESOLVED_PARAMETER"
	CodeMalformedPostfix    Code = "NGC_MALFORMED_POSTFIX"
	CodeDomain              Code = "NGC_DOMAIN"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLex, CodeSyntax, CodeCodeMismatch, CodeUnterminatedBlock, CodeUnbalancedExpression,
		CodeUnknownFunction, CodeNestingTooDeep, CodeUnterminatedProgram, CodeInputTooLong,
		CodeUnresolvedParameter, CodeMalformedPostfix, CodeDomain,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLex, CodeSyntax, CodeCodeMismatch, CodeUnterminatedBlock, CodeUnbalancedExpression,
		CodeUnknownFunction, CodeNestingTooDeep, CodeUnterminatedProgram, CodeInputTooLong:
		return "parse"
	case CodeUnresolvedParameter, CodeMalformedPostfix, CodeDomain:
		return "evaluation"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
