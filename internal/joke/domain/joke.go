package domain

import (
	"time"

	userdomain "github.com/jokeboard/server/internal/user/domain"
)

type ID string

// Joke is the persisted unit of user-generated content. Its Name and Content
// always satisfy the submission rules; validation is a hard gate in front of
// the repository, not advisory.
type Joke struct {
	ID         ID
	Name       string
	Content    string
	JokesterID userdomain.ID
	CreatedAt  time.Time
}

type Summary struct {
	ID   ID
	Name string
}
