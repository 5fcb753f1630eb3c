// Package discovery finds the @Core and @Module declarations of a
// compilation unit, either by parsing Java sources with tree-sitter or by
// reading a YAML declarations file.
package discovery
