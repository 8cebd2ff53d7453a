package accidents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrReportNotFound    = errors.New("accident report not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Store is the data access abstraction for the accident book.
// Implemented by Repository (which uses pgxpool.Pool).
type Store interface {
	Create(ctx context.Context, r *Report) (*Report, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Report, error)
	List(ctx context.Context, status string, limit, offset int) ([]*Report, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Report, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, rep *Report) (*Report, error) {
	query := `
		INSERT INTO accident_reports
			(id, reporter_name, reporter_email, injured_party, location,
			 occurred_at, injury_type, description, treatment_given,
			 riddor_reportable, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at;
	`
	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	rep.Status = StatusOpen

	row := r.db.QueryRow(ctx, query,
		rep.ID, rep.ReporterName, rep.ReporterEmail, rep.InjuredParty, rep.Location,
		rep.OccurredAt, rep.InjuryType, rep.Description, nullableString(rep.TreatmentGiven),
		rep.RiddorReportable, rep.Status,
	)
	if err := row.Scan(&rep.CreatedAt, &rep.UpdatedAt); err != nil {
		return nil, fmt.Errorf("create accident report: %w", err)
	}
	return rep, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	query := `
		SELECT id, reporter_name, reporter_email, injured_party, location,
		       occurred_at, injury_type, description, treatment_given,
		       riddor_reportable, status, created_at, updated_at
		FROM accident_reports
		WHERE id = $1;
	`
	rep, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("get accident report: %w", err)
	}
	return rep, nil
}

// List returns a page of reports, newest first, optionally filtered by
// status, with the true total for pagination.
func (r *Repository) List(ctx context.Context, status string, limit, offset int) ([]*Report, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, reporter_name, reporter_email, injured_party, location,
		       occurred_at, injury_type, description, treatment_given,
		       riddor_reportable, status, created_at, updated_at,
		       COUNT(*) OVER() AS total_count
		FROM accident_reports
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list accident reports: %w", err)
	}
	defer rows.Close()

	var (
		reports    []*Report
		totalCount int
	)
	for rows.Next() {
		var (
			rep       Report
			treatment sql.NullString
			t         int
		)
		if err := rows.Scan(
			&rep.ID, &rep.ReporterName, &rep.ReporterEmail, &rep.InjuredParty, &rep.Location,
			&rep.OccurredAt, &rep.InjuryType, &rep.Description, &treatment,
			&rep.RiddorReportable, &rep.Status, &rep.CreatedAt, &rep.UpdatedAt, &t,
		); err != nil {
			return nil, 0, fmt.Errorf("scan accident report: %w", err)
		}
		if treatment.Valid {
			rep.TreatmentGiven = treatment.String
		}
		totalCount = t
		reports = append(reports, &rep)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration: %w", err)
	}

	if len(reports) == 0 && offset > 0 {
		countQ := `SELECT COUNT(*) FROM accident_reports WHERE ($1 = '' OR status = $1);`
		if err := r.db.QueryRow(ctx, countQ, status).Scan(&totalCount); err != nil {
			return nil, 0, fmt.Errorf("count accident reports: %w", err)
		}
	}

	return reports, totalCount, nil
}

// UpdateStatus advances a report through the review flow, rejecting
// transitions the flow does not allow.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Report, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ValidTransition(existing.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, existing.Status, status)
	}

	query := `
		UPDATE accident_reports
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, reporter_name, reporter_email, injured_party, location,
		          occurred_at, injury_type, description, treatment_given,
		          riddor_reportable, status, created_at, updated_at;
	`
	rep, err := scanReport(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("update accident report status: %w", err)
	}
	return rep, nil
}

func scanReport(row pgx.Row) (*Report, error) {
	var (
		rep       Report
		treatment sql.NullString
	)
	if err := row.Scan(
		&rep.ID, &rep.ReporterName, &rep.ReporterEmail, &rep.InjuredParty, &rep.Location,
		&rep.OccurredAt, &rep.InjuryType, &rep.Description, &treatment,
		&rep.RiddorReportable, &rep.Status, &rep.CreatedAt, &rep.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if treatment.Valid {
		rep.TreatmentGiven = treatment.String
	}
	return &rep, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
