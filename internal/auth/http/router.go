package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jokeboard/server/internal/auth/service"
	"github.com/jokeboard/server/internal/common/constants"
	commonhttp "github.com/jokeboard/server/internal/common/http"
	"github.com/jokeboard/server/internal/common/logger"
	"github.com/jokeboard/server/internal/session"
)

type Handler struct {
	auth           *service.AuthService
	codec          *session.Codec
	cookies        session.Cookies
	errorHandler   *commonhttp.ErrorHandler
	log            *logger.Logger
	requestTimeout time.Duration
}

func NewHandler(
	auth *service.AuthService,
	codec *session.Codec,
	cookies session.Cookies,
	requestTimeout time.Duration,
	log *logger.Logger,
) http.Handler {
	h := &Handler{
		auth:           auth,
		codec:          codec,
		cookies:        cookies,
		errorHandler:   commonhttp.NewErrorHandler(log),
		log:            log,
		requestTimeout: requestTimeout,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/login", commonhttp.RequireMethod(http.MethodPost)(h.login))
	mux.HandleFunc("/logout", commonhttp.RequireMethod(http.MethodPost)(h.logout))
	mux.HandleFunc("/register", commonhttp.RequireMethod(http.MethodPost)(h.register))
	return mux
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Warnf("login failed: invalid form: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidForm, "form not submitted correctly", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	user, err := h.auth.Login(ctx, service.LoginInput{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.createUserSession(w, string(user.ID)); err != nil {
		h.log.Errorf("login failed: session encode error: %v", err)
		commonhttp.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	target := commonhttp.SafeRedirectTarget(r.FormValue("redirect"), constants.DefaultLoginTarget)
	commonhttp.Redirect(w, r, target)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Warnf("register failed: invalid form: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidForm, "form not submitted correctly", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	user, err := h.auth.Register(ctx, service.RegisterInput{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.createUserSession(w, string(user.ID)); err != nil {
		h.log.Errorf("register failed: session encode error: %v", err)
		commonhttp.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	target := commonhttp.SafeRedirectTarget(r.FormValue("redirect"), constants.DefaultLoginTarget)
	commonhttp.Redirect(w, r, target)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)
	commonhttp.Redirect(w, r, constants.LoginPath)
}

func (h *Handler) createUserSession(w http.ResponseWriter, userID string) error {
	value, err := h.codec.Encode(session.Payload{UserID: userID})
	if err != nil {
		return err
	}
	h.cookies.Write(w, value)
	return nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if vErr, ok := service.AsValidationError(err); ok {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeBadRequest, vErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		commonhttp.WriteErrorEnvelope(w, http.StatusUnauthorized, commonhttp.CodeInvalidCredentials, "invalid username or password", nil)
	case errors.Is(err, service.ErrUsernameTaken):
		commonhttp.WriteErrorEnvelope(w, http.StatusConflict, "USERNAME_TAKEN", "username already taken", nil)
	default:
		h.errorHandler.HandleError(w, r, err)
	}
}
