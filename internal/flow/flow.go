// Package flow defines the screen state machine any client of the audit
// API is expected to follow: form → loading → report, with failures
// returning to the form. Keeping it as a total transition function
// makes illegal states (like rendering a report before data arrives)
// unrepresentable.
package flow

// Screen is one of the mutually exclusive client views.
type Screen int

const (
	Form Screen = iota
	Loading
	Report
)

func (s Screen) String() string {
	switch s {
	case Form:
		return "form"
	case Loading:
		return "loading"
	case Report:
		return "report"
	default:
		return "unknown"
	}
}

// Event is something that happens to the client view.
type Event int

const (
	// Submit is the user sending the business form.
	Submit Event = iota
	// Succeed is the API answering 200 with a report.
	Succeed
	// Fail is any non-200 API answer.
	Fail
	// Restart is the user explicitly starting over.
	Restart
)

// Next returns the screen that follows the given event. Events that do
// not apply to the current screen leave it unchanged, so the function
// is total and transitions are never undefined.
func Next(current Screen, event Event) Screen {
	switch current {
	case Form:
		if event == Submit {
			return Loading
		}
	case Loading:
		switch event {
		case Succeed:
			return Report
		case Fail:
			return Form
		}
	case Report:
		if event == Restart {
			return Form
		}
	}
	return current
}
