package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jokeboard/server/internal/common/constants"
)

// Payload is the whole of the session state. There is no server-side session
// store: the signed cookie value carries it.
type Payload struct {
	UserID string
}

// Codec signs and verifies session payloads with a process-wide secret. The
// expiry lives inside the signed token, so a cookie outliving its max-age
// fails verification rather than silently staying valid.
type Codec struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

func NewCodec(secret string) *Codec {
	return NewCodecWithClock(secret, time.Now)
}

// NewCodecWithClock exists for tests that need to move time past the
// session max-age.
func NewCodecWithClock(secret string, now func() time.Time) *Codec {
	return &Codec{
		secret: []byte(secret),
		maxAge: constants.SessionMaxAge,
		now:    now,
	}
}

func (c *Codec) Encode(p Payload) (string, error) {
	now := c.now()
	claims := jwt.MapClaims{
		"sub": p.UserID,
		"iat": now.Unix(),
		"exp": now.Add(c.maxAge).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies the signature before trusting any field. A missing,
// tampered, truncated or expired value is an expected condition and yields
// ok=false, never an error or a falsified payload.
func (c *Codec) Decode(value string) (Payload, bool) {
	if value == "" {
		return Payload{}, false
	}

	parsed, err := jwt.Parse(
		value,
		func(token *jwt.Token) (any, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return c.secret, nil
		},
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid {
		return Payload{}, false
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Payload{}, false
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return Payload{}, false
	}

	return Payload{UserID: sub}, true
}
