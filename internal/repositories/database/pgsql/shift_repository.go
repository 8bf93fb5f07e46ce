package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tallyhq/tally_pro_app/internal/apperrors"
	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	portsrepo "github.com/tallyhq/tally_pro_app/internal/core/ports/repositories"
	"github.com/tallyhq/tally_pro_app/internal/models"
)

type PgxShiftRepository struct {
	db *pgxpool.Pool
}

func newPgxShiftRepository(db *pgxpool.Pool) portsrepo.ShiftRepository {
	return &PgxShiftRepository{db: db}
}

// Ensure PgxShiftRepository implements portsrepo.ShiftRepository
var _ portsrepo.ShiftRepository = (*PgxShiftRepository)(nil)

// Helper to convert models.Shift to domain.Shift
func toDomainShift(m models.Shift) domain.Shift {
	var clockOut *time.Time
	if m.ClockOut.Valid {
		t := m.ClockOut.Time
		clockOut = &t
	}
	return domain.Shift{
		ShiftID:      m.ShiftID,
		CompanyID:    m.CompanyID,
		RecorderID:   m.RecorderID,
		RecorderName: m.RecorderName,
		ClockIn:      m.ClockIn,
		ClockOut:     clockOut,
	}
}

// OpenShift inserts the shift only when the recorder has no open one. The
// conditional insert keeps the at-most-one-open-shift invariant even if two
// requests race past the service-level lock.
func (r *PgxShiftRepository) OpenShift(ctx context.Context, shift domain.Shift) error {
	query := `
        INSERT INTO shifts (shift_id, company_id, recorder_id, clock_in, clock_out)
        SELECT $1, $2, $3, $4, NULL
        WHERE NOT EXISTS (
            SELECT 1 FROM shifts
            WHERE company_id = $2 AND recorder_id = $3 AND clock_out IS NULL
        );
    `
	tag, err := r.db.Exec(ctx, query,
		shift.ShiftID,
		shift.CompanyID,
		shift.RecorderID,
		shift.ClockIn,
	)
	if err != nil {
		return fmt.Errorf("failed to open shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOpenShiftExists
	}
	return nil
}

// CloseOpenShift stamps clock_out on the recorder's open shift in a single
// conditional update and returns the closed row.
func (r *PgxShiftRepository) CloseOpenShift(ctx context.Context, companyID, recorderID string, at time.Time) (*domain.Shift, error) {
	query := `
        UPDATE shifts
        SET clock_out = $3
        WHERE company_id = $1 AND recorder_id = $2 AND clock_out IS NULL
        RETURNING shift_id, company_id, recorder_id, clock_in, clock_out;
    `
	var m models.Shift
	err := r.db.QueryRow(ctx, query, companyID, recorderID, at).Scan(
		&m.ShiftID,
		&m.CompanyID,
		&m.RecorderID,
		&m.ClockIn,
		&m.ClockOut,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoOpenShift
		}
		return nil, fmt.Errorf("failed to close shift: %w", err)
	}

	domainShift := toDomainShift(m)
	return &domainShift, nil
}

func (r *PgxShiftRepository) FindOpenShift(ctx context.Context, companyID, recorderID string) (*domain.Shift, error) {
	query := `
		SELECT shift_id, company_id, recorder_id, clock_in, clock_out
		FROM shifts
		WHERE company_id = $1 AND recorder_id = $2 AND clock_out IS NULL;
	`
	var m models.Shift
	err := r.db.QueryRow(ctx, query, companyID, recorderID).Scan(
		&m.ShiftID,
		&m.CompanyID,
		&m.RecorderID,
		&m.ClockIn,
		&m.ClockOut,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open shift: %w", err)
	}

	domainShift := toDomainShift(m)
	return &domainShift, nil
}

// ListShiftsByRange filters on the clock-in calendar date, matching how the
// traffic report groups shifts.
func (r *PgxShiftRepository) ListShiftsByRange(ctx context.Context, companyID string, rng domain.DateRange) ([]domain.Shift, error) {
	query := `
		SELECT s.shift_id, s.company_id, s.recorder_id, u.name, s.clock_in, s.clock_out
		FROM shifts s
		JOIN users u ON u.user_id = s.recorder_id
		WHERE s.company_id = $1 AND (s.clock_in AT TIME ZONE 'UTC')::date >= $2::date AND (s.clock_in AT TIME ZONE 'UTC')::date <= $3::date
		ORDER BY s.clock_in DESC;
	`
	rows, err := r.db.Query(ctx, query, companyID, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var shifts []domain.Shift
	for rows.Next() {
		var m models.Shift
		if err := rows.Scan(
			&m.ShiftID,
			&m.CompanyID,
			&m.RecorderID,
			&m.RecorderName,
			&m.ClockIn,
			&m.ClockOut,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		shifts = append(shifts, toDomainShift(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift rows: %w", err)
	}

	return shifts, nil
}
