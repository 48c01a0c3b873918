package repositories

// RepositoryProvider aggregates every repository facade the services depend
// on. A single provider keeps container wiring in one place.
type RepositoryProvider struct {
	DocumentRepo  DocumentRepositoryFacade
	PaymentRepo   PaymentRepositoryFacade
	PartyRepo     PartyRepositoryFacade
	ProductRepo   ProductRepositoryFacade
	UserRepo      UserRepositoryFacade
	NumberingRepo NumberingRepositoryFacade
	ReportingRepo ReportingRepositoryFacade
}
