package repository

import (
	"context"
	"errors"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/swap"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SwapRequestRepository interface {
	Create(ctx context.Context, req swap.Request) (swap.Request, error)
	FindByID(ctx context.Context, id uuid.UUID) (swap.Request, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]swap.Request, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from swap.Status, to swap.Status) (swap.Request, error)
}

type PostgresSwapRequestRepository struct {
	db database.DB
}

func NewPostgresSwapRequestRepository(db database.DB) *PostgresSwapRequestRepository {
	return &PostgresSwapRequestRepository{db: db}
}

const swapSelect = `SELECT sr.id, sr.requester_id, ru.name, sr.target_id, tu.name,
	 sr.requester_skill_id, rs.name, sr.target_skill_id, ts.name,
	 sr.message, sr.status, sr.created_at, sr.updated_at
	 FROM swap_requests sr
	 JOIN users ru ON ru.id = sr.requester_id
	 JOIN users tu ON tu.id = sr.target_id
	 JOIN skills rs ON rs.id = sr.requester_skill_id
	 JOIN skills ts ON ts.id = sr.target_skill_id`

func (r *PostgresSwapRequestRepository) Create(ctx context.Context, req swap.Request) (swap.Request, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO swap_requests (id, requester_id, target_id, requester_skill_id, target_skill_id, message, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		req.ID, req.RequesterID, req.TargetID, req.RequesterSkillID, req.TargetSkillID, req.Message, string(req.Status),
	)
	if err != nil {
		return swap.Request{}, err
	}
	return r.FindByID(ctx, req.ID)
}

func (r *PostgresSwapRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (swap.Request, error) {
	row := r.db.QueryRow(ctx, swapSelect+` WHERE sr.id = $1`, id)
	req, err := scanSwapRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return swap.Request{}, swap.ErrNotFound
		}
		return swap.Request{}, err
	}
	return req, nil
}

func (r *PostgresSwapRequestRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]swap.Request, error) {
	rows, err := r.db.Query(ctx,
		swapSelect+` WHERE sr.requester_id = $1 OR sr.target_id = $1 ORDER BY sr.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]swap.Request, 0)
	for rows.Next() {
		req, err := scanSwapRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus moves a request from one status to another. It returns
// swap.ErrNotFound when no request with that id is in the from status.
func (r *PostgresSwapRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from swap.Status, to swap.Status) (swap.Request, error) {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE swap_requests SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		string(to), id, string(from),
	)
	if err != nil {
		return swap.Request{}, err
	}
	if rowsAffected == 0 {
		return swap.Request{}, swap.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func scanSwapRequest(row database.Row) (swap.Request, error) {
	var (
		req    swap.Request
		status string
	)
	err := row.Scan(
		&req.ID, &req.RequesterID, &req.RequesterName, &req.TargetID, &req.TargetName,
		&req.RequesterSkillID, &req.RequesterSkill, &req.TargetSkillID, &req.TargetSkill,
		&req.Message, &status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return swap.Request{}, err
	}
	req.Status = swap.Status(status)
	return req, nil
}
