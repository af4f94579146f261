package mailjet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailbridge"
)

func TestMessage_SettersArePure(t *testing.T) {
	t.Parallel()

	original := NewMessage(mailbridge.Email{
		From:    mailbridge.Addr("me@example.com"),
		Subject: "Hi",
	})

	updated := original.
		WithTemplateID("42").
		WithCustomID("abc").
		WithVariable("name", "Alice")

	// The receiver stays untouched at every step.
	require.Empty(t, original.Options.TemplateID)
	require.Empty(t, original.Options.CustomID)
	require.Nil(t, original.Options.Variables)

	require.Equal(t, "42", updated.Options.TemplateID)
	require.Equal(t, "abc", updated.Options.CustomID)
	require.Equal(t, map[string]any{"name": "Alice"}, updated.Options.Variables)
}

func TestMessage_WithVariable_Accumulates(t *testing.T) {
	t.Parallel()

	msg := NewMessage(mailbridge.Email{}).
		WithVariable("a", 1).
		WithVariable("b", "two").
		WithVariable("a", 3) // later call wins for the same key

	require.Equal(t, map[string]any{"a": 3, "b": "two"}, msg.Options.Variables)
}

func TestMessage_WithVariable_DoesNotShareMap(t *testing.T) {
	t.Parallel()

	base := NewMessage(mailbridge.Email{}).WithVariable("shared", true)
	left := base.WithVariable("side", "left")
	right := base.WithVariable("side", "right")

	require.Equal(t, map[string]any{"shared": true}, base.Options.Variables)
	require.Equal(t, "left", left.Options.Variables["side"])
	require.Equal(t, "right", right.Options.Variables["side"])
}

func TestMessage_WithTemplateLanguage(t *testing.T) {
	t.Parallel()

	msg := NewMessage(mailbridge.Email{})
	require.Nil(t, msg.Options.TemplateLanguage)

	enabled := msg.WithTemplateLanguage(true)
	require.NotNil(t, enabled.Options.TemplateLanguage)
	require.True(t, *enabled.Options.TemplateLanguage)

	disabled := msg.WithTemplateLanguage(false)
	require.NotNil(t, disabled.Options.TemplateLanguage)
	require.False(t, *disabled.Options.TemplateLanguage)
}
