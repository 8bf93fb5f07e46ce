package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tallyhq/tally_pro_app/internal/apperrors"
	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	portsrepo "github.com/tallyhq/tally_pro_app/internal/core/ports/repositories"
	"github.com/tallyhq/tally_pro_app/internal/models"
)

type PgxCompanyRepository struct {
	db *pgxpool.Pool
}

func newPgxCompanyRepository(db *pgxpool.Pool) portsrepo.CompanyRepository {
	return &PgxCompanyRepository{db: db}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepository
var _ portsrepo.CompanyRepository = (*PgxCompanyRepository)(nil)

// Helper to convert domain.Company to models.Company
func toModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID: d.CompanyID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     sql.NullString{String: d.Phone, Valid: d.Phone != ""},
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Company to domain.Company
func toDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID: m.CompanyID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone.String,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	modelCompany := toModelCompany(company)
	query := `
        INSERT INTO companies (company_id, name, email, phone, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (company_id) DO UPDATE SET
            name = EXCLUDED.name,
            email = EXCLUDED.email,
            phone = EXCLUDED.phone,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		modelCompany.CompanyID,
		modelCompany.Name,
		modelCompany.Email,
		modelCompany.Phone,
		modelCompany.CreatedAt,
		modelCompany.CreatedBy,
		modelCompany.LastUpdatedAt,
		modelCompany.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}
	return nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, email, phone, created_at, created_by, last_updated_at, last_updated_by
		FROM companies
		WHERE company_id = $1;
	`
	return r.findCompany(ctx, query, companyID)
}

func (r *PgxCompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, email, phone, created_at, created_by, last_updated_at, last_updated_by
		FROM companies
		WHERE name = $1;
	`
	return r.findCompany(ctx, query, name)
}

func (r *PgxCompanyRepository) findCompany(ctx context.Context, query string, arg any) (*domain.Company, error) {
	var modelCompany models.Company
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&modelCompany.CompanyID,
		&modelCompany.Name,
		&modelCompany.Email,
		&modelCompany.Phone,
		&modelCompany.CreatedAt,
		&modelCompany.CreatedBy,
		&modelCompany.LastUpdatedAt,
		&modelCompany.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	domainCompany := toDomainCompany(modelCompany)
	return &domainCompany, nil
}
