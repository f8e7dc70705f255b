package gmail

// Summary is the listing view of a message: decoded Subject and From
// headers plus the Date header exactly as the server stored it.
type Summary struct {
	// SeqNum is the server-assigned message sequence number. It is only
	// valid for the session that produced it.
	SeqNum  uint32
	Subject string
	From    string
	// Date is the raw RFC 5322 Date header value, not parsed.
	Date string
}

// Detail is a Summary plus a body preview.
type Detail struct {
	Summary
	// Body holds the first text/plain part of the message, truncated to
	// PreviewLimit characters. Empty when the message has no plain part.
	Body string
}
