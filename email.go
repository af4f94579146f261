package mailbridge

import "fmt"

// Address is a recipient or sender address with an optional display name.
// An Address with an empty Name models a bare address string; provider
// adapters decide how that is rendered on the wire.
type Address struct {
	Name  string
	Email string
}

// Addr creates an Address without a display name.
func Addr(email string) Address {
	return Address{Email: email}
}

// NamedAddr creates an Address with a display name.
func NamedAddr(name, email string) Address {
	return Address{Name: name, Email: email}
}

// String formats the address in RFC 5322 form.
// Returns "Name <email>" if a name is set, otherwise just the email.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Tags represents email tags/categories that can be either presence-only
// (using struct{}{}) or key-value pairs (using string values).
// Providers that support tagging convert these to their own format;
// providers without a tag concept ignore them.
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
// These are converted to appropriate format by each provider adapter.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Email represents a fully-prepared email message ready for sending.
// It is provider-agnostic; provider adapters translate it into their
// own wire format and may attach provider-specific extension data.
type Email struct {
	Headers     map[string]string // Custom headers
	Tags        Tags              // Provider-specific tags/categories
	Subject     string            // Email subject
	HTML        string            // HTML body content
	Text        string            // Plain text alternative
	ReplyTo     string            // Reply-to address
	From        Address           // Sender (adapters may apply a default)
	To          []Address         // Recipients, order preserved on the wire
	CC          []Address         // Carbon copy recipients
	BCC         []Address         // Blind carbon copy recipients
	Attachments []Attachment      // File attachments
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // Optional Content-ID for inline attachments
	Content     []byte // Raw file content
}
