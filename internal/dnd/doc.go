// Package dnd turns pointer gestures into stack mutations.
//
// Tracker follows a single press/motion/release gesture and reports either a
// click or a drag-end. Resolve classifies a drag-end into an Intent, which is
// then applied to a stack.
package dnd
