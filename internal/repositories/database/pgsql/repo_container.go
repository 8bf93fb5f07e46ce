package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tallyhq/tally_pro_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	entryRepo := newPgxEntryRepository(dbPool)
	extraRepo := newPgxExtraExpenditureRepository(dbPool)
	shiftRepo := newPgxShiftRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CompanyRepo: companyRepo,
		UserRepo:    userRepo,
		EntryRepo:   entryRepo,
		ExtraRepo:   extraRepo,
		ShiftRepo:   shiftRepo,
	}
}
