package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.NewToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, m.Verify(token))
}

func TestManager_RejectsForeignSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	token, err := issuer.NewToken()
	require.NoError(t, err)

	assert.ErrorIs(t, verifier.Verify(token), ErrInvalidToken)
}

func TestManager_RejectsTamperedToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.NewToken()
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	assert.ErrorIs(t, m.Verify(tampered), ErrInvalidToken)
}

func TestManager_RejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.NewToken()
	require.NoError(t, err)

	assert.ErrorIs(t, m.Verify(token), ErrInvalidToken)
}

func TestManager_RejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	assert.ErrorIs(t, m.Verify("not-a-token"), ErrInvalidToken)
	assert.ErrorIs(t, m.Verify(""), ErrInvalidToken)
}
