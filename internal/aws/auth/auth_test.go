package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallerId(t *testing.T) {
	authorizer := map[string]interface{}{
		"jwt": map[string]interface{}{
			"claims": map[string]interface{}{"sub": "user-1"},
		},
	}
	sub, err := CallerId(authorizer)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestCallerIdRejects(t *testing.T) {
	for _, authorizer := range []map[string]interface{}{
		nil,
		{"jwt": "token"},
		{"jwt": map[string]interface{}{}},
		{"jwt": map[string]interface{}{"claims": map[string]interface{}{"sub": 7}}},
		{"jwt": map[string]interface{}{"claims": map[string]interface{}{"sub": ""}}},
	} {
		_, err := CallerId(authorizer)
		assert.ErrorIs(t, err, ErrUnauthorized)
	}
}
