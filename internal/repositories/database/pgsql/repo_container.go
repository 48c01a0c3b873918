package pgsql

import (
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DocumentRepo:  newPgxDocumentRepository(dbPool),
		PaymentRepo:   newPgxPaymentRepository(dbPool),
		PartyRepo:     newPgxPartyRepository(dbPool),
		ProductRepo:   newPgxProductRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		NumberingRepo: newPgxNumberingRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
	}
}
