package database

import (
	"context"
	"fmt"
)

const sessionKeyPrefix = "session:"

// StartSession records a login and returns its id.
func (s *Store) StartSession(ctx context.Context, userID string) (string, error) {
	if s.GetUserByID(userID) == nil {
		return "", fmt.Errorf("user %s: %w", userID, ErrInvalidArgument)
	}
	id := s.newID()
	if err := s.kv.Set(ctx, sessionKeyPrefix+id, []byte(userID)); err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	return id, nil
}

// ResolveSession returns the user behind a live session.
func (s *Store) ResolveSession(ctx context.Context, sessionID string) (string, bool, error) {
	raw, ok, err := s.kv.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil || !ok {
		return "", false, err
	}
	return string(raw), true, nil
}

func (s *Store) EndSession(ctx context.Context, sessionID string) error {
	return s.kv.Remove(ctx, sessionKeyPrefix+sessionID)
}
