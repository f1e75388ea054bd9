// Package types holds the rule model shared by the loader and the
// sanitizer. A Rule is built once from configuration and never mutated.
package types
