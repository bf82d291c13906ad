package notify

// Notifier delivers a plain-text message to an external channel.
type Notifier interface {
	// Notify delivers the text.
	//
	// Remarks:
	//	- Delivery is best-effort, callers should treat failures as non-fatal.
	Notify(text string) error
}
