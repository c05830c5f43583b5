package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/jokeboard/server/internal/joke/domain"
)

var (
	ErrJokeNotFound = errors.New("joke not found")

	// ErrJokesterNotFound means the insert referenced a user row that no
	// longer exists. The caller holds a verified but stale session.
	ErrJokesterNotFound = errors.New("jokester not found")
)

type Repository interface {
	Create(ctx context.Context, joke domain.Joke) error
	FindByID(ctx context.Context, id domain.ID) (domain.Joke, error)
	List(ctx context.Context, limit int) ([]domain.Summary, error)
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Create(ctx context.Context, joke domain.Joke) error {
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO jokes (id, jokester_id, name, content, created_at) VALUES ($1, $2, $3, $4, $5)`,
		string(joke.ID),
		string(joke.JokesterID),
		joke.Name,
		joke.Content,
		joke.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrJokesterNotFound
		}
		return fmt.Errorf("failed to create joke: %w", err)
	}
	return nil
}

func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.Joke, error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, jokester_id, name, content, created_at FROM jokes WHERE id = $1`,
		string(id),
	)

	var joke domain.Joke
	err := row.Scan(&joke.ID, &joke.JokesterID, &joke.Name, &joke.Content, &joke.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Joke{}, ErrJokeNotFound
		}
		return domain.Joke{}, fmt.Errorf("failed to scan joke: %w", err)
	}
	return joke, nil
}

func (r *PgRepository) List(ctx context.Context, limit int) ([]domain.Summary, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT id, name FROM jokes ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jokes: %w", err)
	}
	defer rows.Close()

	var jokes []domain.Summary
	for rows.Next() {
		var s domain.Summary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan joke summary: %w", err)
		}
		jokes = append(jokes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read joke rows: %w", err)
	}

	return jokes, nil
}
