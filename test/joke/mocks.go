package joke

import (
	"context"
	"testing"

	"github.com/jokeboard/server/internal/common/logger"
	"github.com/jokeboard/server/internal/joke/domain"
	jokerepo "github.com/jokeboard/server/internal/joke/repository"
	"github.com/jokeboard/server/internal/joke/service"
	userdomain "github.com/jokeboard/server/internal/user/domain"
	userrepo "github.com/jokeboard/server/internal/user/repository"
)

type mockJokeRepo struct {
	createFunc   func(ctx context.Context, joke domain.Joke) error
	findByIDFunc func(ctx context.Context, id domain.ID) (domain.Joke, error)
	listFunc     func(ctx context.Context, limit int) ([]domain.Summary, error)

	created []domain.Joke
}

func (m *mockJokeRepo) Create(ctx context.Context, joke domain.Joke) error {
	m.created = append(m.created, joke)
	if m.createFunc != nil {
		return m.createFunc(ctx, joke)
	}
	return nil
}

func (m *mockJokeRepo) FindByID(ctx context.Context, id domain.ID) (domain.Joke, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return domain.Joke{}, jokerepo.ErrJokeNotFound
}

func (m *mockJokeRepo) List(ctx context.Context, limit int) ([]domain.Summary, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return []domain.Summary{}, nil
}

type mockUserRepo struct {
	findByIDFunc func(ctx context.Context, id userdomain.ID) (userdomain.User, error)
}

func (m *mockUserRepo) Create(_ context.Context, _ userdomain.User) error {
	return nil
}

func (m *mockUserRepo) FindByUsername(_ context.Context, _ string) (userdomain.User, error) {
	return userdomain.User{}, userrepo.ErrUserNotFound
}

func (m *mockUserRepo) FindByID(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return userdomain.User{ID: id, Username: "alonzo"}, nil
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "5f0c7d9a-8b3e-4a21-9c44-1e2d3f4a5b6c", nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("", "test", "error")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func setupJokeService(t *testing.T) (*service.JokeService, *mockJokeRepo) {
	t.Helper()
	repo := &mockJokeRepo{}
	return service.NewJokeService(repo, &mockIDGenerator{}, testLogger(t)), repo
}
