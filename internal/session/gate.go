package session

import (
	"net/http"
	"net/url"

	"github.com/jokeboard/server/internal/common/constants"
)

// Redirect is the control-flow signal for "must log in first". It travels up
// the call chain as an ordinary return value; unauthenticated access is an
// expected condition, not an exception.
type Redirect struct {
	Path string
}

// LoginRedirect builds the login detour, carrying the originally requested
// path so login can send the user back where they started.
func LoginRedirect(returnTo string) *Redirect {
	q := url.Values{}
	q.Set("redirect", returnTo)
	return &Redirect{Path: constants.LoginPath + "?" + q.Encode()}
}

// RequireUserID enforces "must be authenticated". On success the verified
// user id is returned; otherwise the caller gets a Redirect to the login
// flow. An empty redirectTo defaults to the request path.
func (a *Accessor) RequireUserID(r *http.Request, redirectTo string) (string, *Redirect) {
	if userID, ok := a.UserID(r); ok {
		return userID, nil
	}

	if redirectTo == "" {
		redirectTo = r.URL.Path
	}

	incrementAuthRedirects()
	return "", LoginRedirect(redirectTo)
}
