package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jokeboard/server/internal/common/constants"
	commonhttp "github.com/jokeboard/server/internal/common/http"
	"github.com/jokeboard/server/internal/common/logger"
	jokedomain "github.com/jokeboard/server/internal/joke/domain"
	jokerepo "github.com/jokeboard/server/internal/joke/repository"
	"github.com/jokeboard/server/internal/joke/service"
	"github.com/jokeboard/server/internal/session"
	userdomain "github.com/jokeboard/server/internal/user/domain"
)

type Handler struct {
	jokes          *service.JokeService
	sessions       *session.Accessor
	errorHandler   *commonhttp.ErrorHandler
	log            *logger.Logger
	requestTimeout time.Duration
}

func NewHandler(
	jokes *service.JokeService,
	sessions *session.Accessor,
	requestTimeout time.Duration,
	log *logger.Logger,
) http.Handler {
	h := &Handler{
		jokes:          jokes,
		sessions:       sessions,
		errorHandler:   commonhttp.NewErrorHandler(log),
		log:            log,
		requestTimeout: requestTimeout,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/jokes", h.handleJokes)
	mux.HandleFunc("/jokes/", commonhttp.RequireMethod(http.MethodGet)(h.jokeByID))
	mux.HandleFunc("/api/jokes/validate", commonhttp.RequireMethod(http.MethodPost)(h.validateSubmission))
	return mux
}

func (h *Handler) handleJokes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listJokes(w, r)
	case http.MethodPost:
		h.createJoke(w, r)
	default:
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", nil)
	}
}

// createJoke is the submission pipeline's HTTP face: auth gate, field
// parsing, validation, persistence. Failure never loses the user's input.
func (h *Handler) createJoke(w http.ResponseWriter, r *http.Request) {
	userID, redirect := h.sessions.RequireUserID(r, "")
	if redirect != nil {
		commonhttp.Redirect(w, r, redirect.Path)
		return
	}

	form, err := parseForm(r)
	if err != nil {
		h.log.Warnf("joke create failed: unreadable form: %v", err)
		writeMalformedSubmission(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	joke, err := h.jokes.Create(ctx, userdomain.ID(userID), form)
	if err != nil {
		if subErr, ok := service.AsSubmissionError(err); ok {
			writeSubmissionError(w, subErr)
			return
		}
		// The cookie verified but the jokester row is gone: the insert hits
		// the users FK. Same stale-session outcome as on reads.
		if errors.Is(err, jokerepo.ErrJokesterNotFound) {
			h.log.WithFields(r.Context(), logger.Fields{
				"user_id": userID,
				"action":  "stale_session",
			}).Warn("joke submission from a deleted user")
			h.forceLogout(w, r)
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}

	commonhttp.Redirect(w, r, "/jokes/"+string(joke.ID))
}

type jokeSummaryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type currentUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type jokesListResponse struct {
	Jokes []jokeSummaryResponse `json:"jokes"`
	User  *currentUserResponse  `json:"user,omitempty"`
}

func (h *Handler) listJokes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	resp := jokesListResponse{Jokes: []jokeSummaryResponse{}}

	// The listing itself is public, but resolving the viewer may reveal a
	// stale session, which forces a logout instead of a half-authenticated
	// page.
	user, err := h.sessions.User(ctx, r)
	switch {
	case err == nil:
		resp.User = &currentUserResponse{ID: string(user.ID), Username: user.Username}
	case errors.Is(err, session.ErrStaleSession):
		h.forceLogout(w, r)
		return
	case errors.Is(err, session.ErrNoSession):
		// anonymous viewer
	default:
		h.errorHandler.HandleError(w, r, err)
		return
	}

	summaries, err := h.jokes.List(ctx, listLimit(r))
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	for _, s := range summaries {
		resp.Jokes = append(resp.Jokes, jokeSummaryResponse{ID: string(s.ID), Name: s.Name})
	}

	commonhttp.WriteJSON(w, http.StatusOK, resp)
}

type jokeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Content    string `json:"content"`
	JokesterID string `json:"jokesterId"`
}

func (h *Handler) jokeByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jokes/")
	if id == "" || strings.Contains(id, "/") {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidPath, "invalid path", nil)
		return
	}
	if _, err := uuid.Parse(id); err != nil {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJokeID, "invalid joke id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	joke, err := h.jokes.Get(ctx, jokedomain.ID(id))
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, jokeResponse{
		ID:         string(joke.ID),
		Name:       joke.Name,
		Content:    joke.Content,
		JokesterID: string(joke.JokesterID),
	})
}

// validateSubmission runs the parse+validate stages without persisting, so
// an in-flight client can optimistically render the prospective joke and
// reconcile against the authoritative outcome of the real submission.
func (h *Handler) validateSubmission(w http.ResponseWriter, r *http.Request) {
	// Serves a script, not a browser navigation: 401 rather than a redirect.
	if _, ok := h.sessions.UserID(r); !ok {
		commonhttp.WriteErrorEnvelope(w, http.StatusUnauthorized, commonhttp.CodeAuthRequired, "authentication required", nil)
		return
	}

	form, err := parseForm(r)
	if err != nil {
		writeMalformedSubmission(w)
		return
	}

	fields, subErr := h.jokes.ParseAndValidate(form)
	if subErr != nil {
		writeSubmissionError(w, subErr)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, fieldsPayload{
		Name:    fields.Name,
		Content: fields.Content,
	})
}

func (h *Handler) forceLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Cookies().Clear(w)
	commonhttp.Redirect(w, r, constants.LoginPath)
}

// listLimit reads the optional limit query parameter. The service clamps it.
func listLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}
