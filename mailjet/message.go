package mailjet

import (
	"maps"

	"github.com/dmitrymomot/mailbridge"
)

// Message is an Email together with Mailjet-specific extension data.
// All With* setters are pure: they return an updated copy and leave the
// receiver unchanged, so a Message can be staged step by step.
type Message struct {
	mailbridge.Email
	Options Options
}

// Options holds the optional Mailjet send parameters. Zero values are
// omitted from the request body; TemplateLanguage is a pointer so that
// an explicit false is still sent.
type Options struct {
	TemplateLanguage   *bool
	Variables          map[string]any
	TemplateID         string
	CustomID           string
	EventPayload       string
	MonitoringCategory string
}

// NewMessage wraps a generic Email for delivery through Mailjet.
func NewMessage(email mailbridge.Email) Message {
	return Message{Email: email}
}

// WithTemplateID sets the id of a stored Mailjet template to render
// server-side instead of the message body.
func (m Message) WithTemplateID(id string) Message {
	m.Options.TemplateID = id
	return m
}

// WithTemplateLanguage enables or disables Mailjet's template language
// for the referenced template.
func (m Message) WithTemplateLanguage(enabled bool) Message {
	m.Options.TemplateLanguage = &enabled
	return m
}

// WithVariable adds one template variable. Repeated calls accumulate
// into a single mapping; the receiver's mapping is copied, not shared.
func (m Message) WithVariable(key string, value any) Message {
	vars := make(map[string]any, len(m.Options.Variables)+1)
	maps.Copy(vars, m.Options.Variables)
	vars[key] = value
	m.Options.Variables = vars
	return m
}

// WithCustomID attaches a caller-chosen id that Mailjet echoes back in
// events and the message API.
func (m Message) WithCustomID(id string) Message {
	m.Options.CustomID = id
	return m
}

// WithEventPayload attaches an opaque payload string that Mailjet
// includes in event callbacks for this message.
func (m Message) WithEventPayload(payload string) Message {
	m.Options.EventPayload = payload
	return m
}

// WithMonitoringCategory assigns the message to a Mailjet monitoring
// category.
func (m Message) WithMonitoringCategory(category string) Message {
	m.Options.MonitoringCategory = category
	return m
}
