package gmail

import (
	"encoding/base64"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

// ExtractMessage reduces a full Gmail API message to a Message value with
// headers and body text extracted.
func ExtractMessage(msg *gmail.Message) *Message {
	m := &Message{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
	}

	if msg.Payload == nil {
		return m
	}

	m.Subject = HeaderValue(msg, "Subject")
	m.From = HeaderValue(msg, "From")
	m.To = HeaderValue(msg, "To")
	m.Date = HeaderValue(msg, "Date")
	m.Body = extractBody(msg.Payload)

	return m
}

// HeaderValue extracts a header value from a Gmail message. Header names are
// matched case-insensitively per RFC 5322.
func HeaderValue(m *gmail.Message, header string) string {
	mpart := m.Payload
	if mpart == nil {
		return ""
	}
	for _, mph := range mpart.Headers {
		if strings.EqualFold(mph.Name, header) {
			return mph.Value
		}
	}
	return ""
}

// extractBody returns the decoded message body, preferring the first
// text/plain part and falling back to text/html.
func extractBody(payload *gmail.MessagePart) string {
	if body := findBody(payload, "text/plain"); body != "" {
		return body
	}
	return findBody(payload, "text/html")
}

// findBody walks the part tree and decodes the first part with the target
// MIME type that carries data.
func findBody(part *gmail.MessagePart, mimeType string) string {
	var body string
	walkParts(part, func(p *gmail.MessagePart) {
		if body == "" && p.MimeType == mimeType && p.Body != nil && p.Body.Data != "" {
			body = decodeBody(p.Body.Data)
		}
	})
	return body
}

// decodeBody decodes base64url-encoded body data (Gmail API uses RFC 4648
// base64url encoding). Tries standard base64 if that fails.
func decodeBody(data string) string {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.StdEncoding.DecodeString(data)
		if err != nil {
			return ""
		}
	}
	return string(decoded)
}

// walkParts recursively walks through message parts.
func walkParts(part *gmail.MessagePart, fn func(*gmail.MessagePart)) {
	if part == nil {
		return
	}

	fn(part)

	for _, subpart := range part.Parts {
		walkParts(subpart, fn)
	}
}
