// Package mailjet implements mailbridge.Sender on top of the Mailjet
// v3.1 transactional send API.
//
// The adapter is two stateless pieces: a pure builder that maps a
// Message onto the provider's JSON body, and a transport that performs
// one synchronous HTTP POST with Basic authentication and classifies the
// outcome. There are no retries, no batching, and no response parsing —
// the provider's response is handed back verbatim.
//
// # Usage
//
//	sender := mailjet.New(mailjet.Config{
//		APIKey:     os.Getenv("MAILJET_API_KEY"),
//		PrivateKey: os.Getenv("MAILJET_PRIVATE_KEY"),
//	})
//
//	msg := mailjet.NewMessage(mailbridge.Email{
//		From:    mailbridge.NamedAddr("Team", "team@example.com"),
//		To:      []mailbridge.Address{mailbridge.Addr("user@example.com")},
//		Subject: "Welcome",
//		HTML:    "<p>Hello!</p>",
//	})
//
//	resp, err := sender.Deliver(ctx, msg)
//
// # Provider extensions
//
// Mailjet-specific send parameters are attached with pure setters that
// return an updated Message:
//
//	msg = msg.
//		WithTemplateID("42").
//		WithTemplateLanguage(true).
//		WithVariable("name", "Alice").
//		WithCustomID("signup-123")
//
// # Errors
//
// Deliver fails in exactly two ways:
//
//   - *ConfigError: a credential is blank; returned before any network
//     I/O happens.
//   - *APIError: the HTTP exchange failed, either at the transport level
//     (connection refused, timeout, DNS) or with a status code above
//     299. The HTTP form carries the sent request body and the full
//     response for post-mortem inspection.
package mailjet
