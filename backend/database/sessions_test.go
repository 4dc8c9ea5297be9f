package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, false)
	u := newStudent(t, s, "new@x.com")

	sid, err := s.StartSession(ctx, u.ID)
	require.NoError(t, err)

	userID, ok, err := s.ResolveSession(ctx, sid)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, u.ID, userID)

	require.NoError(t, s.EndSession(ctx, sid))
	_, ok, err = s.ResolveSession(ctx, sid)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.StartSession(ctx, "missing")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
