package prospects

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/vitrine-ai/vitrine/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a prospect repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "prospects"),
	}
}

const prospectColumns = "id, name, prompt, created_at"

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Prospect, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	name := strings.TrimSpace(cmd.Name)
	prompt := strings.TrimSpace(cmd.Prompt)

	q := `
		INSERT INTO prospects(id, name, prompt)
		VALUES ($1, $2, $3)
		RETURNING ` + prospectColumns

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Prospect, error) {
		return repository.QueryOne(ctx, tx, q, []any{id, name, prompt}, scanProspect)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("prospect created", "id", p.ID, "name", p.Name)
	return &p, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Prospect, error) {
	q := "SELECT " + prospectColumns + " FROM prospects WHERE id = $1"

	p, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanProspect)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) List(ctx context.Context) ([]Prospect, error) {
	q := "SELECT " + prospectColumns + " FROM prospects ORDER BY created_at DESC, id"

	return repository.QueryMany(ctx, r.db, q, nil, scanProspect)
}

func scanProspect(s repository.Scanner) (Prospect, error) {
	var p Prospect
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Prompt,
		&p.CreatedAt,
	)
	return p, err
}
