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

type PgxEntryRepository struct {
	db *pgxpool.Pool
}

func newPgxEntryRepository(db *pgxpool.Pool) portsrepo.EntryRepository {
	return &PgxEntryRepository{db: db}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepository
var _ portsrepo.EntryRepository = (*PgxEntryRepository)(nil)

// Helper to convert domain.Entry to models.Entry
func toModelEntry(d domain.Entry) models.Entry {
	var category sql.NullString
	if d.Category != nil && *d.Category != "" {
		category = sql.NullString{String: *d.Category, Valid: true}
	}
	return models.Entry{
		EntryID:     d.EntryID,
		CompanyID:   d.CompanyID,
		RecorderID:  d.RecorderID,
		Kind:        string(d.Kind),
		Amount:      d.Amount,
		Category:    category,
		Description: sql.NullString{String: d.Description, Valid: d.Description != ""},
		Date:        d.Date,
		RecordedAt:  d.RecordedAt,
	}
}

// Helper to convert models.Entry to domain.Entry
func toDomainEntry(m models.Entry) domain.Entry {
	var category *string
	if m.Category.Valid {
		c := m.Category.String
		category = &c
	}
	return domain.Entry{
		EntryID:      m.EntryID,
		CompanyID:    m.CompanyID,
		RecorderID:   m.RecorderID,
		RecorderName: m.RecorderName,
		Kind:         domain.EntryKind(m.Kind),
		Amount:       m.Amount,
		Category:     category,
		Description:  m.Description.String,
		Date:         m.Date,
		RecordedAt:   m.RecordedAt,
	}
}

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	modelEntry := toModelEntry(entry)
	query := `
        INSERT INTO entries (entry_id, company_id, recorder_id, kind, amount, category, description, entry_date, recorded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		modelEntry.EntryID,
		modelEntry.CompanyID,
		modelEntry.RecorderID,
		modelEntry.Kind,
		modelEntry.Amount,
		modelEntry.Category,
		modelEntry.Description,
		modelEntry.Date,
		modelEntry.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}

// ListEntriesForReport orders ascending so the aggregation engine sees rows
// in chronological order.
func (r *PgxEntryRepository) ListEntriesForReport(ctx context.Context, companyID string, rng domain.DateRange) ([]domain.Entry, error) {
	return r.listEntries(ctx, companyID, rng, "ASC")
}

func (r *PgxEntryRepository) ListEntries(ctx context.Context, companyID string, rng domain.DateRange) ([]domain.Entry, error) {
	return r.listEntries(ctx, companyID, rng, "DESC")
}

func (r *PgxEntryRepository) listEntries(ctx context.Context, companyID string, rng domain.DateRange, direction string) ([]domain.Entry, error) {
	query := `
		SELECT e.entry_id, e.company_id, e.recorder_id, u.name, e.kind, e.amount, e.category, e.description, e.entry_date, e.recorded_at
		FROM entries e
		JOIN users u ON u.user_id = e.recorder_id
		WHERE e.company_id = $1 AND e.entry_date >= $2 AND e.entry_date <= $3
		ORDER BY e.entry_date ` + direction + `, e.recorded_at ` + direction + `;
	`
	rows, err := r.db.Query(ctx, query, companyID, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var m models.Entry
		if err := rows.Scan(
			&m.EntryID,
			&m.CompanyID,
			&m.RecorderID,
			&m.RecorderName,
			&m.Kind,
			&m.Amount,
			&m.Category,
			&m.Description,
			&m.Date,
			&m.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, toDomainEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}

	return entries, nil
}
