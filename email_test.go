package mailbridge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddress_String_WithName(t *testing.T) {
	t.Parallel()

	result := NamedAddr("John Doe", "john@example.com").String()

	require.Equal(t, "John Doe <john@example.com>", result)
}

func TestAddress_String_WithoutName(t *testing.T) {
	t.Parallel()

	result := Addr("john@example.com").String()

	require.Equal(t, "john@example.com", result)
}

func TestSimpleTags_CreatesPresenceOnlyTags(t *testing.T) {
	t.Parallel()

	tags := SimpleTags("welcome", "onboarding", "transactional")

	require.Len(t, tags, 3)
	require.Contains(t, tags, "welcome")
	require.Contains(t, tags, "onboarding")
	require.Contains(t, tags, "transactional")

	// Verify values are empty structs (presence-only)
	require.Equal(t, struct{}{}, tags["welcome"])
}

func TestSimpleTags_EmptyList(t *testing.T) {
	t.Parallel()

	tags := SimpleTags()

	require.NotNil(t, tags)
	require.Empty(t, tags)
}
