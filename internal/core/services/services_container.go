package services

import (
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Numbering first since document creation depends on it
	container.Numbering = NewNumberingService(repos.NumberingRepo, cfg.NumberingStyles)

	container.Party = NewPartyService(repos.PartyRepo)
	container.Product = NewProductService(repos.ProductRepo)
	container.Document = NewDocumentService(repos.DocumentRepo, repos.PartyRepo, repos.ProductRepo, container.Numbering)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.DocumentRepo, repos.PartyRepo)
	container.User = NewUserService(repos.UserRepo, cfg)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.DocumentSvcFacade  = (*documentService)(nil)
	_ portssvc.PaymentSvcFacade   = (*paymentService)(nil)
	_ portssvc.PartySvcFacade     = (*partyService)(nil)
	_ portssvc.ProductSvcFacade   = (*productService)(nil)
	_ portssvc.UserSvcFacade      = (*userService)(nil)
	_ portssvc.NumberingSvcFacade = (*numberingService)(nil)
	_ portssvc.ReportingService   = (*reportingService)(nil)
)
