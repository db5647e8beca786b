package feeds

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"time"
)

// cursorDelimiter separates cursor components. "::" never appears in an
// RFC3339 timestamp or a UUID, so splitting is unambiguous.
const cursorDelimiter = "::"

// Position is the decoded pagination cursor: the sort key of the last row
// the client has seen
type Position struct {
	CreatedAt time.Time
	ID        string
}

// CursorCodec encodes feed positions into opaque, HMAC-signed cursor strings
// and decodes them back. A cursor that fails decoding for any reason
// (encoding, arity, timestamp, signature) is treated by callers as absent,
// never as a request error.
type CursorCodec struct {
	secret []byte
}

// NewCursorCodec creates a codec signing cursors with the given secret
func NewCursorCodec(secret string) *CursorCodec {
	return &CursorCodec{secret: []byte(secret)}
}

// Encode builds a signed opaque cursor from the last row's sort key
func (c *CursorCodec) Encode(pos Position) string {
	payload := pos.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorDelimiter + pos.ID
	signed := payload + cursorDelimiter + c.sign(payload)
	return base64.StdEncoding.EncodeToString([]byte(signed))
}

// Decode parses and verifies a cursor. The second return value is false for
// any malformed or tampered input.
func (c *CursorCodec) Decode(cursor string) (Position, bool) {
	decoded, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return Position{}, false
	}

	parts := strings.Split(string(decoded), cursorDelimiter)
	if len(parts) != 3 {
		return Position{}, false
	}

	payload := parts[0] + cursorDelimiter + parts[1]
	if !hmac.Equal([]byte(parts[2]), []byte(c.sign(payload))) {
		return Position{}, false
	}

	createdAt, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return Position{}, false
	}
	if parts[1] == "" {
		return Position{}, false
	}

	return Position{CreatedAt: createdAt, ID: parts[1]}, true
}

func (c *CursorCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
