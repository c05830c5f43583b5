package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jokeboard/server/internal/common/logger"
	"github.com/jokeboard/server/internal/session"
	userdomain "github.com/jokeboard/server/internal/user/domain"
	userrepo "github.com/jokeboard/server/internal/user/repository"
)

func newAccessor(t *testing.T, users *mockUserRepo) (*session.Accessor, *session.Codec) {
	t.Helper()
	log, err := logger.New("", "test", "error")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	codec := session.NewCodec(testSecret)
	return session.NewAccessor(codec, session.Cookies{}, users, log), codec
}

func requestWithSession(t *testing.T, codec *session.Codec, userID, path string) *http.Request {
	t.Helper()
	value, err := codec.Encode(session.Payload{UserID: userID})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: "RJ_session", Value: value})
	return req
}

func TestAccessor_UserID_NoCookie(t *testing.T) {
	accessor, _ := newAccessor(t, &mockUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/jokes", nil)
	if _, ok := accessor.UserID(req); ok {
		t.Error("expected no user id without a cookie")
	}
}

func TestAccessor_UserID_ValidCookie(t *testing.T) {
	accessor, codec := newAccessor(t, &mockUserRepo{})

	req := requestWithSession(t, codec, "user-42", "/jokes")
	userID, ok := accessor.UserID(req)
	if !ok {
		t.Fatal("expected user id")
	}
	if userID != "user-42" {
		t.Errorf("expected user-42, got %s", userID)
	}
}

func TestAccessor_UserID_GarbageCookie(t *testing.T) {
	accessor, _ := newAccessor(t, &mockUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/jokes", nil)
	req.AddCookie(&http.Cookie{Name: "RJ_session", Value: "garbage"})
	if _, ok := accessor.UserID(req); ok {
		t.Error("expected garbage cookie to yield no user id")
	}
}

func TestAccessor_User_Found(t *testing.T) {
	users := &mockUserRepo{
		findByIDFunc: func(_ context.Context, id userdomain.ID) (userdomain.User, error) {
			return userdomain.User{ID: id, Username: "alonzo"}, nil
		},
	}
	accessor, codec := newAccessor(t, users)

	req := requestWithSession(t, codec, "user-42", "/jokes")
	user, err := accessor.User(context.Background(), req)
	if err != nil {
		t.Fatalf("expected user, got error %v", err)
	}
	if user.Username != "alonzo" {
		t.Errorf("expected alonzo, got %s", user.Username)
	}
}

func TestAccessor_User_NoSession(t *testing.T) {
	accessor, _ := newAccessor(t, &mockUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/jokes", nil)
	_, err := accessor.User(context.Background(), req)
	if !errors.Is(err, session.ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestAccessor_User_StaleSession(t *testing.T) {
	users := &mockUserRepo{
		findByIDFunc: func(_ context.Context, _ userdomain.ID) (userdomain.User, error) {
			return userdomain.User{}, userrepo.ErrUserNotFound
		},
	}
	accessor, codec := newAccessor(t, users)

	req := requestWithSession(t, codec, "deleted-user", "/jokes")
	_, err := accessor.User(context.Background(), req)
	if !errors.Is(err, session.ErrStaleSession) {
		t.Errorf("expected ErrStaleSession, got %v", err)
	}
}

func TestAccessor_User_StoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	users := &mockUserRepo{
		findByIDFunc: func(_ context.Context, _ userdomain.ID) (userdomain.User, error) {
			return userdomain.User{}, storeErr
		},
	}
	accessor, codec := newAccessor(t, users)

	req := requestWithSession(t, codec, "user-42", "/jokes")
	_, err := accessor.User(context.Background(), req)
	if !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
	if errors.Is(err, session.ErrStaleSession) {
		t.Error("infrastructure failure must not read as a stale session")
	}
}

func TestAccessor_RequireUserID_Authenticated(t *testing.T) {
	accessor, codec := newAccessor(t, &mockUserRepo{})

	req := requestWithSession(t, codec, "user-42", "/jokes")
	userID, redirect := accessor.RequireUserID(req, "")
	if redirect != nil {
		t.Fatalf("expected no redirect, got %s", redirect.Path)
	}
	if userID != "user-42" {
		t.Errorf("expected user-42, got %s", userID)
	}
}

func TestAccessor_RequireUserID_Idempotent(t *testing.T) {
	accessor, codec := newAccessor(t, &mockUserRepo{})

	req := requestWithSession(t, codec, "user-42", "/jokes")
	first, _ := accessor.RequireUserID(req, "")
	for i := 0; i < 5; i++ {
		got, redirect := accessor.RequireUserID(req, "")
		if redirect != nil {
			t.Fatal("expected no redirect on repeat call")
		}
		if got != first {
			t.Errorf("expected %s on call %d, got %s", first, i+2, got)
		}
	}
}

func TestAccessor_RequireUserID_Unauthenticated(t *testing.T) {
	accessor, _ := newAccessor(t, &mockUserRepo{})

	req := httptest.NewRequest(http.MethodPost, "/jokes", nil)
	_, redirect := accessor.RequireUserID(req, "")
	if redirect == nil {
		t.Fatal("expected redirect to login")
	}

	if !strings.HasPrefix(redirect.Path, "/login?") {
		t.Fatalf("expected login path, got %s", redirect.Path)
	}
	query, err := url.ParseQuery(strings.TrimPrefix(redirect.Path, "/login?"))
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	if got := query.Get("redirect"); got != "/jokes" {
		t.Errorf("expected redirect param /jokes, got %s", got)
	}
}

func TestAccessor_RequireUserID_ExplicitFallback(t *testing.T) {
	accessor, _ := newAccessor(t, &mockUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/somewhere", nil)
	_, redirect := accessor.RequireUserID(req, "/jokes/new")
	if redirect == nil {
		t.Fatal("expected redirect to login")
	}
	query, err := url.ParseQuery(strings.TrimPrefix(redirect.Path, "/login?"))
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	if got := query.Get("redirect"); got != "/jokes/new" {
		t.Errorf("expected redirect param /jokes/new, got %s", got)
	}
}
