package feeds

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorCodec_RoundTrip(t *testing.T) {
	codec := NewCursorCodec("test-secret")

	pos := Position{
		CreatedAt: time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC),
		ID:        "7c9e6679-7425-40de-944b-e07fc1f90ae7",
	}

	cursor := codec.Encode(pos)
	decoded, ok := codec.Decode(cursor)

	require.True(t, ok)
	assert.True(t, pos.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, pos.ID, decoded.ID)
}

func TestCursorCodec_Opaque(t *testing.T) {
	codec := NewCursorCodec("test-secret")

	cursor := codec.Encode(Position{CreatedAt: time.Now().UTC(), ID: "abc"})

	// The cursor must be a single base64 token with no visible structure
	_, err := base64.StdEncoding.DecodeString(cursor)
	assert.NoError(t, err)
	assert.NotContains(t, cursor, cursorDelimiter)
}

func TestCursorCodec_RejectsMalformedInput(t *testing.T) {
	codec := NewCursorCodec("test-secret")

	cases := []struct {
		name   string
		cursor string
	}{
		{"not base64", "!!not-base64!!"},
		{"empty", ""},
		{"wrong arity", base64.StdEncoding.EncodeToString([]byte("just-one-part"))},
		{"bad timestamp", base64.StdEncoding.EncodeToString([]byte("yesterday::id::sig"))},
		{"unsigned payload", base64.StdEncoding.EncodeToString([]byte("2025-03-14T09:26:53Z::id::deadbeef"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := codec.Decode(tc.cursor)
			assert.False(t, ok)
		})
	}
}

func TestCursorCodec_RejectsTamperedCursor(t *testing.T) {
	codec := NewCursorCodec("test-secret")

	cursor := codec.Encode(Position{CreatedAt: time.Now().UTC(), ID: "item-1"})

	raw, err := base64.StdEncoding.DecodeString(cursor)
	require.NoError(t, err)

	// Flip the item id inside the signed payload
	tampered := []byte(string(raw[:len(raw)-1]) + "x")
	_, ok := codec.Decode(base64.StdEncoding.EncodeToString(tampered))
	assert.False(t, ok)
}

func TestCursorCodec_RejectsForeignSecret(t *testing.T) {
	ours := NewCursorCodec("secret-a")
	theirs := NewCursorCodec("secret-b")

	cursor := theirs.Encode(Position{CreatedAt: time.Now().UTC(), ID: "item-1"})

	_, ok := ours.Decode(cursor)
	assert.False(t, ok)
}
