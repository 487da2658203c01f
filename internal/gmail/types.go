package gmail

// Message is a retrieved email reduced to the fields the analysis needs.
// Values are immutable once extracted; the zero value is an empty message.
type Message struct {
	ID       string
	ThreadID string
	Subject  string
	From     string
	To       string
	Date     string
	Body     string
}
