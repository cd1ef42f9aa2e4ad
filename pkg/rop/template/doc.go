// Package template expands message templates containing positional "{}"
// placeholders.
//
// Expansion is forgiving: a template with more placeholders than arguments is
// padded with the NotSupplied sentinel, extra arguments are ignored, and any
// count mismatch is reported to the diag sink without blocking expansion.
package template
