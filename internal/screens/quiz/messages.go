package quiz

// startedMsg is sent when the session has started or resumed.
type startedMsg struct {
	resumed bool
	err     error
}

// submittedMsg is sent when an answer has been recorded.
type submittedMsg struct {
	err error
}

// advancedMsg is sent when the session moved to the next question or finished.
type advancedMsg struct {
	err error
}

// suspendedMsg is sent when the session has been saved for later.
type suspendedMsg struct {
	err error
}
