package mailjet

import (
	"encoding/base64"

	"github.com/dmitrymomot/mailbridge"
)

// sendRequest is the JSON body for POST /send. Optional fields carry
// omitempty so that absent data produces absent keys, not nulls.
type sendRequest struct {
	From               fromPart         `json:"From"`
	To                 []recipientPart  `json:"To,omitempty"`
	Cc                 []recipientPart  `json:"Cc,omitempty"`
	Bcc                []recipientPart  `json:"Bcc,omitempty"`
	Subject            string           `json:"Subject,omitempty"`
	HTMLPart           string           `json:"HTMLPart,omitempty"`
	TextPart           string           `json:"TextPart,omitempty"`
	TemplateID         string           `json:"TemplateID,omitempty"`
	TemplateLanguage   *bool            `json:"TemplateLanguage,omitempty"`
	Variables          map[string]any   `json:"Variables,omitempty"`
	CustomID           string           `json:"CustomID,omitempty"`
	EventPayload       string           `json:"EventPayload,omitempty"`
	MonitoringCategory string           `json:"MonitoringCategory,omitempty"`
	Attachments        []attachmentPart `json:"Attachments,omitempty"`
}

// fromPart renders the sender: the Name key is dropped entirely when no
// display name is set.
type fromPart struct {
	Name  string `json:"Name,omitempty"`
	Email string `json:"Email"`
}

// recipientPart renders a To/Cc/Bcc entry. Unlike From, the Name key is
// always present and is an explicit null for bare addresses.
type recipientPart struct {
	Name  *string `json:"Name"`
	Email string  `json:"Email"`
}

type attachmentPart struct {
	Filename      string `json:"Filename"`
	ContentType   string `json:"ContentType"`
	Base64Content string `json:"Base64Content"`
}

// buildRequest maps a Message onto the Mailjet v3.1 send body. It is a
// pure function of the message: no I/O, no error path, every message
// produces a valid body.
func buildRequest(msg Message) sendRequest {
	req := sendRequest{
		From:               fromPart{Name: msg.From.Name, Email: msg.From.Email},
		To:                 recipients(msg.To),
		Cc:                 recipients(msg.CC),
		Bcc:                recipients(msg.BCC),
		Subject:            msg.Subject,
		HTMLPart:           msg.HTML,
		TextPart:           msg.Text,
		TemplateID:         msg.Options.TemplateID,
		TemplateLanguage:   msg.Options.TemplateLanguage,
		Variables:          msg.Options.Variables,
		CustomID:           msg.Options.CustomID,
		EventPayload:       msg.Options.EventPayload,
		MonitoringCategory: msg.Options.MonitoringCategory,
	}

	if len(msg.Attachments) > 0 {
		req.Attachments = make([]attachmentPart, len(msg.Attachments))
		for i, a := range msg.Attachments {
			req.Attachments[i] = attachmentPart{
				Filename:      a.Filename,
				ContentType:   a.ContentType,
				Base64Content: base64.StdEncoding.EncodeToString(a.Content),
			}
		}
	}

	return req
}

// recipients converts an address list, preserving order. A nil result
// keeps the key out of the JSON body when the list is empty.
func recipients(addrs []mailbridge.Address) []recipientPart {
	if len(addrs) == 0 {
		return nil
	}
	parts := make([]recipientPart, len(addrs))
	for i, a := range addrs {
		parts[i] = recipientPart{Email: a.Email}
		if a.Name != "" {
			name := a.Name
			parts[i].Name = &name
		}
	}
	return parts
}
