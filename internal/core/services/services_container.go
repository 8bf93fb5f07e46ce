package services

import (
	portsrepo "github.com/tallyhq/tally_pro_app/internal/core/ports/repositories"
	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
	"github.com/tallyhq/tally_pro_app/internal/platform/config"
)

// NewServiceContainer wires up all application services with their
// repository dependencies. The user service doubles as the caller resolver
// every other service derives tenant scope from.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo, repos.CompanyRepo)
	resolver := userSvc.(portssvc.CallerResolverSvc)

	return &portssvc.ServiceContainer{
		User:      userSvc,
		Company:   NewCompanyService(repos.CompanyRepo, resolver),
		Entry:     NewEntryService(repos.EntryRepo, resolver),
		Extra:     NewExtraExpenditureService(repos.ExtraRepo, resolver),
		Shift:     NewShiftService(repos.ShiftRepo, resolver),
		Reporting: NewReportingService(repos.EntryRepo, repos.ExtraRepo, repos.ShiftRepo, resolver),
	}
}
