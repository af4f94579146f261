package mailbridge

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message.
	// Returns an error if delivery fails.
	Send(ctx context.Context, email *Email) error
}

// Capabilities declares which optional features a provider supports.
// The host consults these to decide whether data like attachments can be
// passed through to the adapter unconverted.
type Capabilities struct {
	Attachments bool
}

// CapabilityReporter is an optional interface providers implement to
// declare their Capabilities. Providers that do not implement it are
// assumed to support nothing beyond plain text and HTML bodies.
type CapabilityReporter interface {
	Capabilities() Capabilities
}

// SupportsAttachments reports whether the given sender declares
// attachment support.
func SupportsAttachments(s Sender) bool {
	if r, ok := s.(CapabilityReporter); ok {
		return r.Capabilities().Attachments
	}
	return false
}
