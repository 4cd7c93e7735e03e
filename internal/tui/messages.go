package tui

// flashDoneMsg clears the highlight started with the same sequence number.
type flashDoneMsg struct {
	seq int
}
