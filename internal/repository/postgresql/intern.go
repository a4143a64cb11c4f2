package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/intern"
	"github.com/presensi-magang/attendance-backend-go/internal/pkg/database"
)

type internRepository struct {
	db *database.DB
}

func NewInternRepository(db *database.DB) intern.InternRepository {
	return &internRepository{db: db}
}

// Create implements intern.InternRepository.
func (r *internRepository) Create(ctx context.Context, in intern.Intern) (intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO interns (name, school, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, in.Name, in.School, in.Status).
		Scan(&in.ID, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return intern.Intern{}, fmt.Errorf("failed to create intern: %w", err)
	}

	return in, nil
}

// GetByID implements intern.InternRepository.
func (r *internRepository) GetByID(ctx context.Context, id int64) (intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, school, status, created_at, updated_at
		FROM interns
		WHERE id = $1
	`

	var in intern.Intern
	err := q.QueryRow(ctx, query, id).Scan(
		&in.ID, &in.Name, &in.School, &in.Status, &in.CreatedAt, &in.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return intern.Intern{}, intern.ErrInternNotFound
		}
		return intern.Intern{}, fmt.Errorf("failed to get intern by ID: %w", err)
	}

	return in, nil
}

// List implements intern.InternRepository.
func (r *internRepository) List(ctx context.Context) ([]intern.Intern, error) {
	return r.list(ctx, `
		SELECT id, name, school, status, created_at, updated_at
		FROM interns
		ORDER BY id DESC
	`)
}

func (r *internRepository) list(ctx context.Context, query string) ([]intern.Intern, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query interns: %w", err)
	}
	defer rows.Close()

	var interns []intern.Intern
	for rows.Next() {
		var in intern.Intern
		if err := rows.Scan(&in.ID, &in.Name, &in.School, &in.Status, &in.CreatedAt, &in.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan intern: %w", err)
		}
		interns = append(interns, in)
	}

	return interns, nil
}

// Delete implements intern.InternRepository. The attendance foreign key has no
// cascade: a restrict violation means history still references the intern.
func (r *internRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM interns WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return intern.ErrHasAttendanceHistory
		}
		return fmt.Errorf("failed to delete intern: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return intern.ErrInternNotFound
	}

	return nil
}
