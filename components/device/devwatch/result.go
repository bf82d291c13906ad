package devwatch

// Result is the verdict of a single observation run.
type Result struct {
	// AnyActivity indicates that at least one monitored topic produced a message.
	AnyActivity bool

	// Topics is the sorted set of topics that produced at least one message.
	Topics []string
}
