package service

import (
	"context"
	"errors"
	"time"

	"github.com/jokeboard/server/internal/common/constants"
	commoncrypto "github.com/jokeboard/server/internal/common/crypto"
	commonerrors "github.com/jokeboard/server/internal/common/errors"
	"github.com/jokeboard/server/internal/common/logger"
	"github.com/jokeboard/server/internal/joke/domain"
	jokerepo "github.com/jokeboard/server/internal/joke/repository"
	userdomain "github.com/jokeboard/server/internal/user/domain"
)

// JokeService runs the submission pipeline: parse fields, validate, persist.
// Authentication is enforced by the caller; the service only ever sees a
// verified jokester id.
type JokeService struct {
	repo        jokerepo.Repository
	idGenerator commoncrypto.IDGenerator
	now         func() time.Time
	log         *logger.Logger
}

func NewJokeService(
	repo jokerepo.Repository,
	idGenerator commoncrypto.IDGenerator,
	log *logger.Logger,
) *JokeService {
	return &JokeService{
		repo:        repo,
		idGenerator: idGenerator,
		now:         time.Now,
		log:         log,
	}
}

// ParseAndValidate extracts and checks the submission fields without
// persisting anything. A client rendering an optimistic preview of an
// in-flight submission hits exactly this path.
func (s *JokeService) ParseAndValidate(form Form) (Fields, *SubmissionError) {
	name, nameOK := form.Field("name")
	content, contentOK := form.Field("content")

	if !nameOK || !contentOK {
		incrementMalformedSubmissions()
		return Fields{}, newMalformedSubmission()
	}

	fields := Fields{Name: name, Content: content}

	fieldErrors, ok := ValidateSubmission(fields)
	if !ok {
		if fieldErrors.Name != "" {
			incrementValidationFailure("name")
		}
		if fieldErrors.Content != "" {
			incrementValidationFailure("content")
		}
		return fields, newValidationFailure(fieldErrors, fields)
	}

	return fields, nil
}

// Create runs the full pipeline for an authenticated submission. On success
// the persisted joke is returned; a rejected submission surfaces as a
// *SubmissionError and nothing is written.
func (s *JokeService) Create(ctx context.Context, jokesterID userdomain.ID, form Form) (domain.Joke, error) {
	fields, subErr := s.ParseAndValidate(form)
	if subErr != nil {
		s.log.WithFields(ctx, logger.Fields{
			"jokester_id": string(jokesterID),
			"action":      "joke_submission_rejected",
		}).Warnf("joke submission rejected: %v", subErr)
		return domain.Joke{}, subErr
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"jokester_id": string(jokesterID),
			"action":      "joke_id_generation_failed",
		}).Errorf("joke create failed: id generation error: %v", err)
		return domain.Joke{}, err
	}

	joke := domain.Joke{
		ID:         domain.ID(id),
		Name:       fields.Name,
		Content:    fields.Content,
		JokesterID: jokesterID,
		CreatedAt:  s.now(),
	}

	if err := s.repo.Create(ctx, joke); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"jokester_id": string(jokesterID),
			"action":      "joke_create_failed",
		}).Errorf("joke create failed: %v", err)
		return domain.Joke{}, err
	}

	s.log.WithFields(ctx, logger.Fields{
		"joke_id":     string(joke.ID),
		"jokester_id": string(jokesterID),
		"action":      "joke_created",
	}).Info("joke created")
	incrementJokesCreated()

	return joke, nil
}

func (s *JokeService) Get(ctx context.Context, id domain.ID) (domain.Joke, error) {
	joke, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, jokerepo.ErrJokeNotFound) {
			return domain.Joke{}, commonerrors.ErrJokeNotFound
		}
		return domain.Joke{}, err
	}
	return joke, nil
}

// List returns the newest joke summaries. A non-positive limit falls back to
// the default page size; anything above the cap is clamped.
func (s *JokeService) List(ctx context.Context, limit int) ([]domain.Summary, error) {
	if limit <= 0 {
		limit = constants.DefaultJokesListLimit
	}
	if limit > constants.MaxJokesListLimit {
		limit = constants.MaxJokesListLimit
	}
	return s.repo.List(ctx, limit)
}
