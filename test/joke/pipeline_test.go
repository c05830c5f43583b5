package joke

import (
	"context"
	"errors"
	"testing"

	commonerrors "github.com/jokeboard/server/internal/common/errors"
	"github.com/jokeboard/server/internal/joke/domain"
	"github.com/jokeboard/server/internal/joke/service"
)

const validContent = "I never wanted to believe that my Dad was stealing from his job as a road worker."

func TestCreate_ValidSubmission(t *testing.T) {
	svc, repo := setupJokeService(t)

	form := service.MapForm{
		"name":    "Road worker",
		"content": validContent,
	}
	joke, err := svc.Create(context.Background(), "jokester-1", form)
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted joke, got %d", len(repo.created))
	}
	persisted := repo.created[0]
	if persisted.Name != "Road worker" {
		t.Errorf("expected name to persist, got %q", persisted.Name)
	}
	if persisted.Content != validContent {
		t.Errorf("expected content to persist, got %q", persisted.Content)
	}
	if persisted.JokesterID != "jokester-1" {
		t.Errorf("expected jokester-1, got %s", persisted.JokesterID)
	}
	if joke.ID == "" {
		t.Error("expected a generated joke id")
	}
	if joke.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
}

func TestCreate_ValidationFailure(t *testing.T) {
	svc, repo := setupJokeService(t)

	form := service.MapForm{"name": "a", "content": "short"}
	_, err := svc.Create(context.Background(), "jokester-1", form)

	subErr, ok := service.AsSubmissionError(err)
	if !ok {
		t.Fatalf("expected SubmissionError, got %v", err)
	}
	if subErr.FormError != "" {
		t.Errorf("validation failure must not set a form error, got %q", subErr.FormError)
	}
	if subErr.FieldErrors.Name == "" || subErr.FieldErrors.Content == "" {
		t.Errorf("expected both field errors, got %+v", subErr.FieldErrors)
	}
	if subErr.Fields == nil {
		t.Fatal("expected submitted fields to be echoed back")
	}
	if subErr.Fields.Name != "a" || subErr.Fields.Content != "short" {
		t.Errorf("echoed fields must match the submission, got %+v", *subErr.Fields)
	}
	if len(repo.created) != 0 {
		t.Error("nothing may be persisted on validation failure")
	}
}

func TestCreate_MissingField(t *testing.T) {
	svc, repo := setupJokeService(t)

	testCases := []struct {
		name string
		form service.MapForm
	}{
		{"missing content", service.MapForm{"name": "Road worker"}},
		{"missing name", service.MapForm{"content": validContent}},
		{"missing both", service.MapForm{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "jokester-1", tc.form)

			subErr, ok := service.AsSubmissionError(err)
			if !ok {
				t.Fatalf("expected SubmissionError, got %v", err)
			}
			if subErr.FormError != "Form not submitted correctly." {
				t.Errorf("expected malformed-form error, got %q", subErr.FormError)
			}
			if !subErr.FieldErrors.Empty() {
				t.Errorf("malformed submission must not carry field errors, got %+v", subErr.FieldErrors)
			}
			if subErr.Fields != nil {
				t.Error("malformed submission must not echo fields")
			}
			if len(repo.created) != 0 {
				t.Error("nothing may be persisted on a malformed submission")
			}
		})
	}
}

func TestCreate_RepoError(t *testing.T) {
	svc, repo := setupJokeService(t)
	storeErr := errors.New("connection refused")
	repo.createFunc = func(_ context.Context, _ domain.Joke) error {
		return storeErr
	}

	form := service.MapForm{"name": "Road worker", "content": validContent}
	_, err := svc.Create(context.Background(), "jokester-1", form)
	if !errors.Is(err, storeErr) {
		t.Errorf("expected store error, got %v", err)
	}
	if _, ok := service.AsSubmissionError(err); ok {
		t.Error("store failure must not read as a submission error")
	}
}

func TestParseAndValidate_EmptyStringIsPresent(t *testing.T) {
	svc, _ := setupJokeService(t)

	// An empty value is a present field that fails validation, not a
	// malformed form.
	fields, subErr := svc.ParseAndValidate(service.MapForm{"name": "", "content": ""})
	if subErr == nil {
		t.Fatal("expected a submission error")
	}
	if subErr.FormError != "" {
		t.Errorf("expected field errors, not a form error, got %q", subErr.FormError)
	}
	if fields != (service.Fields{}) {
		// Fields echo what was submitted, even when empty.
		t.Errorf("expected empty fields, got %+v", fields)
	}
}

func TestParseAndValidate_Valid(t *testing.T) {
	svc, repo := setupJokeService(t)

	fields, subErr := svc.ParseAndValidate(service.MapForm{
		"name":    "Road worker",
		"content": validContent,
	})
	if subErr != nil {
		t.Fatalf("expected validation to pass, got %v", subErr)
	}
	if fields.Name != "Road worker" || fields.Content != validContent {
		t.Errorf("unexpected fields %+v", fields)
	}
	if len(repo.created) != 0 {
		t.Error("ParseAndValidate must not persist")
	}
}

func TestList_ClampsLimit(t *testing.T) {
	svc, repo := setupJokeService(t)

	var gotLimit int
	repo.listFunc = func(_ context.Context, limit int) ([]domain.Summary, error) {
		gotLimit = limit
		return []domain.Summary{}, nil
	}

	testCases := []struct {
		name string
		in   int
		want int
	}{
		{"zero falls back to default", 0, 50},
		{"negative falls back to default", -5, 50},
		{"in range passes through", 10, 10},
		{"above cap clamps", 1000, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.List(context.Background(), tc.in); err != nil {
				t.Fatalf("list: %v", err)
			}
			if gotLimit != tc.want {
				t.Errorf("expected limit %d, got %d", tc.want, gotLimit)
			}
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := setupJokeService(t)

	_, err := svc.Get(context.Background(), "5f0c7d9a-8b3e-4a21-9c44-1e2d3f4a5b6c")
	if !errors.Is(err, commonerrors.ErrJokeNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
