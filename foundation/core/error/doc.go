// Package error provides structured error handling for the ngc foundation.
//
// Package: error
// Title: ngc Error Handling
// Description: Errors carry a Code, a Severity, free-form details and the
//              failing operation. Parser errors live in their own positional
//              type and expose their code through the Coder interface, so
//              GetCode works on both.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Usage:
//
//	import ngcerror "github.com/msto63/ngc/foundation/core/error"
//
//	err := ngcerror.New("parameter #<depth> is not set").
//		WithCode(ngcerror.CodeUnresolvedParameter).
//		WithDetail("parameter", "#<depth>")
//
//	if ngcerror.HasCode(err, ngcerror.CodeUnresolvedParameter) {
//		// ...
//	}
package error
