package items

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItemRequest_ExpiryDecoding(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		expected ExpiryChoice
	}{
		{"number seven", `{"content":"please","kind":"request","expiresInDays":7}`, "7"},
		{"number thirty", `{"content":"please","kind":"request","expiresInDays":30}`, "30"},
		{"string never", `{"content":"please","kind":"request","expiresInDays":"never"}`, "never"},
		{"string seven", `{"content":"please","kind":"request","expiresInDays":"7"}`, "7"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req CreateItemRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			require.NotNil(t, req.ExpiresInDays)
			assert.Equal(t, tc.expected, *req.ExpiresInDays)
			_, known := ExpiryChoices[*req.ExpiresInDays]
			assert.True(t, known)
		})
	}
}

func TestCreateItemRequest_ExpiryOmitted(t *testing.T) {
	var req CreateItemRequest
	require.NoError(t, json.Unmarshal([]byte(`{"content":"hi","kind":"reflection"}`), &req))
	assert.Nil(t, req.ExpiresInDays)
}

func TestCreateItemRequest_ExpiryRejectsWrongShape(t *testing.T) {
	var req CreateItemRequest
	err := json.Unmarshal([]byte(`{"content":"hi","kind":"request","expiresInDays":[7]}`), &req)
	assert.Error(t, err)
}
