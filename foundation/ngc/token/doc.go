// Package token defines the token tree produced by the ngc parser.
//
// Package: token
// Title: NGC Token Model
// Description: Tokens are immutable values owned by the Line that contains
//              them. Every construct the parser recognizes has one struct
//              implementing Token; values, parameters and expressions are
//              plain comparable or slice types compared structurally.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-03-02
//
// String renders a token back to canonical NGC text. The rendering is not
// byte-identical to the source (case, leading zeros and spacing are
// normalized) but parses back to an equal token.
package token
