package decitree

// Event names the step of the search a SearchPosition describes.
type Event string

const (
	// Popped is reported when a node is taken off the frontier.
	Popped Event = "popped"
	// Expanded is reported after the children of a non-terminal node
	// were pushed onto the frontier.
	Expanded Event = "expanded"
	// Yielded is reported right before a terminal branch is handed to
	// the consumer.
	Yielded Event = "yielded"
	// Discarded is reported when a terminal branch is dropped because
	// an equivalent branch was already yielded.
	Discarded Event = "discarded"
)

type SearchPosition interface {
	Event() Event
	NodeID() NodeID
	Depth() int
	FrontierSize() int
	Children() int
	Emitted() int
}

type Tracer interface {
	Trace(p SearchPosition)
}
