package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	portsrepo "github.com/tallyhq/tally_pro_app/internal/core/ports/repositories"
	"github.com/tallyhq/tally_pro_app/internal/models"
)

type PgxExtraExpenditureRepository struct {
	db *pgxpool.Pool
}

func newPgxExtraExpenditureRepository(db *pgxpool.Pool) portsrepo.ExtraExpenditureRepository {
	return &PgxExtraExpenditureRepository{db: db}
}

// Ensure PgxExtraExpenditureRepository implements portsrepo.ExtraExpenditureRepository
var _ portsrepo.ExtraExpenditureRepository = (*PgxExtraExpenditureRepository)(nil)

// Helper to convert domain.ExtraExpenditure to models.ExtraExpenditure
func toModelExtra(d domain.ExtraExpenditure) models.ExtraExpenditure {
	return models.ExtraExpenditure{
		ExtraID:     d.ExtraID,
		CompanyID:   d.CompanyID,
		Date:        d.Date,
		Amount:      d.Amount,
		Description: sql.NullString{String: d.Description, Valid: d.Description != ""},
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.ExtraExpenditure to domain.ExtraExpenditure
func toDomainExtra(m models.ExtraExpenditure) domain.ExtraExpenditure {
	return domain.ExtraExpenditure{
		ExtraID:     m.ExtraID,
		CompanyID:   m.CompanyID,
		Date:        m.Date,
		Amount:      m.Amount,
		Description: m.Description.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxExtraExpenditureRepository) SaveExtra(ctx context.Context, extra domain.ExtraExpenditure) error {
	modelExtra := toModelExtra(extra)
	query := `
        INSERT INTO extra_expenditures (extra_id, company_id, expense_date, amount, description, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		modelExtra.ExtraID,
		modelExtra.CompanyID,
		modelExtra.Date,
		modelExtra.Amount,
		modelExtra.Description,
		modelExtra.CreatedAt,
		modelExtra.CreatedBy,
		modelExtra.LastUpdatedAt,
		modelExtra.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save extra expenditure: %w", err)
	}
	return nil
}

func (r *PgxExtraExpenditureRepository) ListExtras(ctx context.Context, companyID string, rng domain.DateRange) ([]domain.ExtraExpenditure, error) {
	query := `
		SELECT extra_id, company_id, expense_date, amount, description, created_at, created_by, last_updated_at, last_updated_by
		FROM extra_expenditures
		WHERE company_id = $1 AND expense_date >= $2 AND expense_date <= $3
		ORDER BY expense_date ASC;
	`
	rows, err := r.db.Query(ctx, query, companyID, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list extra expenditures for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var extras []domain.ExtraExpenditure
	for rows.Next() {
		var m models.ExtraExpenditure
		if err := rows.Scan(
			&m.ExtraID,
			&m.CompanyID,
			&m.Date,
			&m.Amount,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan extra expenditure row: %w", err)
		}
		extras = append(extras, toDomainExtra(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating extra expenditure rows: %w", err)
	}

	return extras, nil
}
