package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tallyhq/tally_pro_app/internal/apperrors"
	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	portsrepo "github.com/tallyhq/tally_pro_app/internal/core/ports/repositories"
	"github.com/tallyhq/tally_pro_app/internal/models"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		CompanyID:    d.CompanyID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		CompanyID:    m.CompanyID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserCompanyRole(m.Role),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// Helper to convert slice of models.User to slice of domain.User
func toDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = toDomainUser(m)
	}
	return ds
}

const userColumns = `user_id, company_id, name, email, password_hash, role, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        INSERT INTO users (user_id, company_id, name, email, password_hash, role, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (user_id) DO UPDATE SET
            name = EXCLUDED.name,
            password_hash = EXCLUDED.password_hash,
            role = EXCLUDED.role,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.CompanyID,
		modelUser.Name,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.Role,
		modelUser.CreatedAt,
		modelUser.CreatedBy,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	return r.findUser(ctx, query, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return r.findUser(ctx, query, email)
}

func (r *PgxUserRepository) findUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var modelUser models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&modelUser.UserID,
		&modelUser.CompanyID,
		&modelUser.Name,
		&modelUser.Email,
		&modelUser.PasswordHash,
		&modelUser.Role,
		&modelUser.CreatedAt,
		&modelUser.CreatedBy,
		&modelUser.LastUpdatedAt,
		&modelUser.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) ListUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var modelUsers []models.User
	for rows.Next() {
		var m models.User
		if err := rows.Scan(
			&m.UserID,
			&m.CompanyID,
			&m.Name,
			&m.Email,
			&m.PasswordHash,
			&m.Role,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		modelUsers = append(modelUsers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return toDomainUserSlice(modelUsers), nil
}
