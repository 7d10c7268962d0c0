package editor

// generateDoneMsg is sent when exercise or hint generation finishes.
type generateDoneMsg struct {
	Err error
}

// checkDoneMsg is sent when a writing check finishes.
type checkDoneMsg struct {
	Err error
}

// stateOpDoneMsg is sent when a save, load, or export finishes.
type stateOpDoneMsg struct {
	Loaded bool // textareas must re-sync from the session
	Err    error
}

// selectionChangedMsg is sent after a selector change was applied.
type selectionChangedMsg struct {
	Err error
}
