package services

import (
	"context"
	"strings"

	"smartspend/internal/core"
	"smartspend/internal/store"
)

// SessionService is the authentication stub: any non-empty identifier
// produces an active session. No credential validation happens.
type SessionService struct {
	store *store.Store
}

func NewSessionService(st *store.Store) *SessionService {
	return &SessionService{store: st}
}

// Login accepts a display name or contact identifier. Identifiers that look
// like an email keep the address and use its local part as the name.
func (s *SessionService) Login(ctx context.Context, identifier string) (core.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return core.User{}, core.ErrEmptyIdentifier
	}

	u := core.User{Active: true}
	if at := strings.Index(identifier, "@"); at > 0 {
		u.Name = identifier[:at]
		u.Email = identifier
	} else {
		u.Name = identifier
	}

	s.store.SetUser(ctx, u)
	return u, nil
}

// Logout clears the session.
func (s *SessionService) Logout(ctx context.Context) {
	s.store.SetUser(ctx, core.User{})
}

// Current returns the stored session record.
func (s *SessionService) Current() core.User {
	return s.store.User()
}
