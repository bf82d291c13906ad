package busmqtt

// ArrivalHandler to handle inbound messages from the bus.
type ArrivalHandler interface {
	// HandleArrival handles a single message arrival on the topic.
	//
	// Remarks:
	//	- Invoked from the transport goroutine, concurrently with the rest
	//	  of the run; the implementation shouldn't block.
	HandleArrival(topic string, payload []byte)
}
