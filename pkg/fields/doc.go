// Package fields defines the form field catalog: the descriptor type, the
// closed set of field variants, per-type normalization and defaulting,
// fixed choice tables, implicit validation rule inference and per-variant
// markup rendering.
package fields
