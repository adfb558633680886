package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDraft() Draft {
	return Draft{
		Name:      "Jordi",
		Surname:   "Puig",
		BirthDate: "2012-03-18",
		DNI:       "43218765L",
		Email:     "jordi.puig@example.com",
		Phone:     "612345678",
	}
}

func TestNewManager(t *testing.T) {
	_, err := NewManager("", time.Hour)
	assert.Error(t, err)

	_, err = NewManager("secret", 0)
	assert.Error(t, err)

	m, err := NewManager("secret", 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, m.TTL())
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	m, err := NewManager("test-signing-key", 2*time.Hour)
	require.NoError(t, err)

	draft := testDraft()

	signed, err := m.Issue(draft)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	got, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, draft, *got)
}

func TestVerifyExpired(t *testing.T) {
	m, err := NewManager("test-signing-key", time.Nanosecond)
	require.NoError(t, err)

	signed, err := m.Issue(testDraft())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	got, err := m.Verify(signed)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTampered(t *testing.T) {
	m, err := NewManager("test-signing-key", time.Hour)
	require.NoError(t, err)

	signed, err := m.Issue(testDraft())
	require.NoError(t, err)

	got, err := m.Verify(signed + "x")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyForeignKey(t *testing.T) {
	issuer, err := NewManager("key-one", time.Hour)
	require.NoError(t, err)

	verifier, err := NewManager("key-two", time.Hour)
	require.NoError(t, err)

	signed, err := issuer.Issue(testDraft())
	require.NoError(t, err)

	got, err := verifier.Verify(signed)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
