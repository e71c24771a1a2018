package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/doccms/core/session"
)

type testData struct {
	Flash string
	Theme string
}

func newSession(t *testing.T, ttl time.Duration) session.Session[testData] {
	t.Helper()
	sess, err := session.New[testData](session.NewSessionParams{
		IP:        "192.0.2.1",
		UserAgent: "test-agent",
	}, ttl)
	require.NoError(t, err)
	return sess
}

func TestNew(t *testing.T) {
	t.Parallel()

	sess := newSession(t, time.Hour)

	assert.NotEqual(t, uuid.Nil, sess.ID)
	assert.Len(t, sess.Token, 43) // 32 bytes, base64url without padding
	assert.Empty(t, sess.UserID)
	assert.Equal(t, "192.0.2.1", sess.IP)
	assert.Equal(t, "test-agent", sess.UserAgent)
	assert.True(t, sess.IsModified())
	assert.False(t, sess.IsAuthenticated())
	assert.False(t, sess.IsExpired())
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Second)

	other := newSession(t, time.Hour)
	assert.NotEqual(t, sess.Token, other.Token)
	assert.NotEqual(t, sess.ID, other.ID)
}

func TestSession_Authenticate(t *testing.T) {
	t.Parallel()

	t.Run("rotates token and keeps id", func(t *testing.T) {
		t.Parallel()

		sess := newSession(t, time.Hour)
		id, token := sess.ID, sess.Token

		require.NoError(t, sess.Authenticate("admin", testData{Theme: "dark"}))

		assert.Equal(t, id, sess.ID)
		assert.NotEqual(t, token, sess.Token)
		assert.Equal(t, "admin", sess.UserID)
		assert.Equal(t, "dark", sess.Data.Theme)
		assert.True(t, sess.IsAuthenticated())
		assert.True(t, sess.IsModified())
	})

	t.Run("rejects empty user", func(t *testing.T) {
		t.Parallel()

		sess := newSession(t, time.Hour)
		token := sess.Token

		err := sess.Authenticate("")
		assert.ErrorIs(t, err, session.ErrNotAuthenticated)
		assert.Equal(t, token, sess.Token)
		assert.False(t, sess.IsAuthenticated())
	})
}

func TestSession_Logout(t *testing.T) {
	t.Parallel()

	sess := newSession(t, time.Hour)
	require.NoError(t, sess.Authenticate("admin", testData{Theme: "dark"}))
	id, token := sess.ID, sess.Token

	require.NoError(t, sess.Logout())

	assert.Equal(t, id, sess.ID)
	assert.NotEqual(t, token, sess.Token)
	assert.Empty(t, sess.UserID)
	assert.Equal(t, testData{}, sess.Data)
	assert.False(t, sess.IsAuthenticated())

	sess.SetData(testData{Flash: "bye"})
	assert.Equal(t, "bye", sess.Data.Flash)
}

func TestSession_Refresh(t *testing.T) {
	t.Parallel()

	sess := newSession(t, time.Hour)
	require.NoError(t, sess.Authenticate("admin"))
	token := sess.Token

	require.NoError(t, sess.Refresh())
	assert.NotEqual(t, token, sess.Token)
	assert.Equal(t, "admin", sess.UserID)
}

func TestSession_Touch(t *testing.T) {
	t.Parallel()

	t.Run("within interval does nothing", func(t *testing.T) {
		t.Parallel()

		sess := newSession(t, time.Minute)
		stored := storeRoundTrip(t, sess)
		expires := stored.ExpiresAt

		stored.Touch(time.Hour, time.Hour)
		assert.False(t, stored.IsModified())
		assert.Equal(t, expires, stored.ExpiresAt)
	})

	t.Run("zero interval always extends", func(t *testing.T) {
		t.Parallel()

		sess := newSession(t, time.Minute)
		stored := storeRoundTrip(t, sess)

		stored.Touch(time.Hour, 0)
		assert.True(t, stored.IsModified())
		assert.WithinDuration(t, time.Now().Add(time.Hour), stored.ExpiresAt, time.Second)
	})
}

func TestSession_IsExpired(t *testing.T) {
	t.Parallel()

	assert.True(t, newSession(t, -time.Second).IsExpired())
	assert.False(t, newSession(t, time.Minute).IsExpired())
}
