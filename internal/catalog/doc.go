// Package catalog holds the immutable set of ingredient templates shown in the
// palette.
//
// A Catalog is built once at startup and never mutated afterwards; the stack
// shares Template values from it by value.
package catalog
