package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jokeboard/server/internal/common/logger"
	userdomain "github.com/jokeboard/server/internal/user/domain"
	userrepo "github.com/jokeboard/server/internal/user/repository"
)

var (
	// ErrNoSession means the request carried no valid session cookie.
	ErrNoSession = errors.New("no valid session")

	// ErrStaleSession means the cookie verified but the referenced user no
	// longer exists. Callers must force a logout, never stay half-authenticated.
	ErrStaleSession = errors.New("session references a missing user")
)

// Accessor resolves the current user from an inbound request.
type Accessor struct {
	codec   *Codec
	cookies Cookies
	users   userrepo.Repository
	log     *logger.Logger
}

func NewAccessor(codec *Codec, cookies Cookies, users userrepo.Repository, log *logger.Logger) *Accessor {
	return &Accessor{
		codec:   codec,
		cookies: cookies,
		users:   users,
		log:     log,
	}
}

func (a *Accessor) Cookies() Cookies {
	return a.cookies
}

// UserID returns the verified user id carried by the request's session
// cookie. It never fails loudly: absent, tampered or expired cookies all
// yield ok=false.
func (a *Accessor) UserID(r *http.Request) (string, bool) {
	value, ok := a.cookies.Read(r)
	if !ok {
		return "", false
	}

	payload, ok := a.codec.Decode(value)
	if !ok {
		return "", false
	}

	return payload.UserID, true
}

// User resolves the full user record for the request's session. A decoded id
// with no matching store record returns ErrStaleSession.
func (a *Accessor) User(ctx context.Context, r *http.Request) (userdomain.User, error) {
	userID, ok := a.UserID(r)
	if !ok {
		return userdomain.User{}, ErrNoSession
	}

	user, err := a.users.FindByID(ctx, userdomain.ID(userID))
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			a.log.WithFields(ctx, logger.Fields{
				"user_id": userID,
				"action":  "stale_session",
			}).Warn("session references a deleted user")
			incrementStaleSessions()
			return userdomain.User{}, ErrStaleSession
		}
		return userdomain.User{}, fmt.Errorf("failed to resolve session user: %w", err)
	}

	return user, nil
}
