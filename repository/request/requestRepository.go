package requestrepo

import (
	"context"
	"database/sql"
	"errors"

	"lendshelf/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when the referenced request id is absent.
	ErrNotFound = errors.New("request not found")
	// ErrInvalidState is returned for any transition other than
	// pending->approved / pending->rejected, and for cancel of a
	// non-pending request. The ledger is left unchanged.
	ErrInvalidState = errors.New("invalid request state")
	// ErrDuplicatePending is returned when a pending request already
	// exists for the same (item, requester) pair.
	ErrDuplicatePending = errors.New("pending request already exists")
)

// Repo is the request ledger contract. Ids are sequence-assigned and never
// reused, even after a cancel removes the row.
type Repo interface {
	Get(ctx context.Context, requestID int64) (*model.Request, error)
	ListFor(ctx context.Context, requesterID int64) ([]model.Request, error)
	HasPending(ctx context.Context, itemID, requesterID int64) (bool, error)
	Create(ctx context.Context, itemID, requesterID int64, itemTitle string) (*model.Request, error)
	Cancel(ctx context.Context, requestID int64) error
	SetStatus(ctx context.Context, requestID int64, status model.RequestStatus) (*model.Request, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Get(ctx context.Context, requestID int64) (*model.Request, error) {
	const q = `
		SELECT id, item_id, requester_id, item_title, created_at, status
		FROM requests
		WHERE id = $1`
	var req model.Request
	err := r.db.QueryRowContext(ctx, q, requestID).Scan(
		&req.ID, &req.ItemID, &req.RequesterID, &req.ItemTitle, &req.CreatedAt, &req.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repo) ListFor(ctx context.Context, requesterID int64) ([]model.Request, error) {
	const q = `
		SELECT id, item_id, requester_id, item_title, created_at, status
		FROM requests
		WHERE requester_id = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Request
	for rows.Next() {
		var req model.Request
		if err := rows.Scan(
			&req.ID, &req.ItemID, &req.RequesterID, &req.ItemTitle, &req.CreatedAt, &req.Status,
		); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *repo) HasPending(ctx context.Context, itemID, requesterID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM requests
			WHERE item_id = $1 AND requester_id = $2 AND status = 'PENDING'
		)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, itemID, requesterID).Scan(&exists)
	return exists, err
}

func (r *repo) Create(ctx context.Context, itemID, requesterID int64, itemTitle string) (*model.Request, error) {
	// The partial unique index on (item_id, requester_id) WHERE
	// status='PENDING' backs the coordinator's dedup gate even across
	// processes.
	const q = `
		INSERT INTO requests (item_id, requester_id, item_title, created_at, status)
		VALUES ($1, $2, $3, CURRENT_DATE, 'PENDING')
		RETURNING id, created_at`
	req := &model.Request{
		ItemID:      itemID,
		RequesterID: requesterID,
		ItemTitle:   itemTitle,
		Status:      model.RequestPending,
	}
	err := r.db.QueryRowContext(ctx, q, itemID, requesterID, itemTitle).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	return req, nil
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrDuplicatePending
	}
	return nil
}

func (r *repo) Cancel(ctx context.Context, requestID int64) error {
	const q = `
		DELETE FROM requests
		WHERE id = $1
		AND status = 'PENDING'`
	res, err := r.db.ExecContext(ctx, q, requestID)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff > 0 {
		return nil
	}
	// Nothing deleted: distinguish missing from terminal.
	if _, err := r.Get(ctx, requestID); err != nil {
		return err
	}
	return ErrInvalidState
}

func (r *repo) SetStatus(ctx context.Context, requestID int64, status model.RequestStatus) (*model.Request, error) {
	if status != model.RequestApproved && status != model.RequestRejected {
		return nil, ErrInvalidState
	}
	const q = `
		UPDATE requests
		SET status = $2
		WHERE id = $1
		AND status = 'PENDING'
		RETURNING id, item_id, requester_id, item_title, created_at, status`
	var req model.Request
	err := r.db.QueryRowContext(ctx, q, requestID, status).Scan(
		&req.ID, &req.ItemID, &req.RequesterID, &req.ItemTitle, &req.CreatedAt, &req.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		if _, gerr := r.Get(ctx, requestID); gerr != nil {
			return nil, gerr
		}
		return nil, ErrInvalidState
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}
