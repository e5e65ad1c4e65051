package catalogrepo

import (
	"context"
	"database/sql"
	"errors"

	"lendshelf/model"
)

// ErrNotFound is returned when the referenced item id is absent.
var ErrNotFound = errors.New("item not found")

// Repo is the catalog store contract. Ingestion is external: there is no
// create or delete here, availability is the only mutable attribute.
type Repo interface {
	Get(ctx context.Context, id int64) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	SetAvailability(ctx context.Context, id int64, available bool) (*model.Item, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Get(ctx context.Context, id int64) (*model.Item, error) {
	const q = `
		SELECT id, title, author, description, category, cohort, available, image_ref
		FROM items
		WHERE id = $1`
	var it model.Item
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&it.ID, &it.Title, &it.Author, &it.Description,
		&it.Category, &it.Cohort, &it.Available, &it.ImageRef,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repo) List(ctx context.Context) ([]model.Item, error) {
	const q = `
		SELECT id, title, author, description, category, cohort, available, image_ref
		FROM items
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(
			&it.ID, &it.Title, &it.Author, &it.Description,
			&it.Category, &it.Cohort, &it.Available, &it.ImageRef,
		); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// SetAvailability is idempotent: writing the current value is a no-op success.
func (r *repo) SetAvailability(ctx context.Context, id int64, available bool) (*model.Item, error) {
	const q = `
		UPDATE items
		SET available = $2
		WHERE id = $1
		RETURNING id, title, author, description, category, cohort, available, image_ref`
	var it model.Item
	err := r.db.QueryRowContext(ctx, q, id, available).Scan(
		&it.ID, &it.Title, &it.Author, &it.Description,
		&it.Category, &it.Cohort, &it.Available, &it.ImageRef,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}
