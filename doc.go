// Package mailbridge provides a universal email sending interface with
// pluggable provider adapters.
//
// The package separates the generic message representation from provider
// wire formats, allowing easy swapping of email providers while keeping
// the same message-building code.
//
// # Architecture
//
// The package consists of three main components:
//
//   - Email: Provider-agnostic message value type
//   - Sender: Interface that email providers implement
//   - Mailer: High-level front that validates and delegates to a Sender
//
// Provider adapters live in subpackages (mailjet, resend) and translate
// an Email into the provider's API request.
//
// # Usage
//
// Basic usage with the Mailjet provider:
//
//	import (
//		"context"
//		"os"
//
//		"github.com/dmitrymomot/mailbridge"
//		"github.com/dmitrymomot/mailbridge/mailjet"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		// Create the provider
//		sender := mailjet.New(mailjet.Config{
//			APIKey:     os.Getenv("MAILJET_API_KEY"),
//			PrivateKey: os.Getenv("MAILJET_PRIVATE_KEY"),
//		})
//
//		// Create the mailer with a default sender address
//		m := mailbridge.New(sender, mailbridge.Config{
//			FromEmail: "team@example.com",
//			FromName:  "Team",
//		})
//
//		err := m.Send(ctx, &mailbridge.Email{
//			To:      []mailbridge.Address{mailbridge.Addr("user@example.com")},
//			Subject: "Welcome",
//			HTML:    "<p>Hello!</p>",
//		})
//		if err != nil {
//			panic(err)
//		}
//	}
//
// # Capabilities
//
// Adapters declare optional features through the CapabilityReporter
// interface. The host checks these before passing data through:
//
//	if mailbridge.SupportsAttachments(sender) {
//		email.Attachments = files
//	}
//
// # Provider extensions
//
// Provider-specific data (template ids, tracking payloads) does not live
// on Email. Each adapter exposes its own typed extension surface; see the
// mailjet subpackage's Message type for an example.
//
// # Custom Providers
//
// Implement the Sender interface to add support for other email providers:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailbridge.Email) error {
//		// Send email using your provider's API
//		return nil
//	}
//
// # Errors
//
// The package defines several error variables for specific failure cases:
//
//   - ErrNoRecipient: No recipient specified
//   - ErrNoSubject: No subject provided
//   - ErrNoContent: No HTML or text content provided
//   - ErrNoSender: No sender address available
//   - ErrSendFailed: Email sending failed
package mailbridge
