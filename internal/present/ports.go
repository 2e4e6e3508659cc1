package present

// Ports for outbound adapters.
type (
	// Presenter displays a notification to the user. It is fire-and-forget:
	// delivery failures are the adapter's concern, not the caller's.
	Presenter interface {
		Show(title, message string)
	}
)

// Func adapts an ordinary function to the Presenter interface.
type Func func(title, message string)

// Show calls f(title, message).
func (f Func) Show(title, message string) {
	f(title, message)
}
