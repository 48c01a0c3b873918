package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/billing"
)

// --- Mock DocumentRepository ---

type MockDocumentRepository struct {
	mock.Mock
}

var _ portsrepo.DocumentRepositoryFacade = (*MockDocumentRepository)(nil)

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindLineItemsByDocumentID(ctx context.Context, documentID string) ([]domain.LineItem, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockDocumentRepository) ListDocumentsByKind(ctx context.Context, kind domain.DocumentKind, limit int, nextToken *string) ([]domain.Document, *string, error) {
	args := m.Called(ctx, kind, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Document), returnedNextToken, args.Error(2)
}

func (m *MockDocumentRepository) SumPaymentsForDocument(ctx context.Context, documentID string) (decimal.Decimal, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDocumentRepository) CountPaymentsForDocument(ctx context.Context, documentID string) (int64, error) {
	args := m.Called(ctx, documentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document, items []domain.LineItem) error {
	args := m.Called(ctx, doc, items)
	return args.Error(0)
}

func (m *MockDocumentRepository) ReplaceDocumentItems(ctx context.Context, doc domain.Document, items []domain.LineItem) error {
	args := m.Called(ctx, doc, items)
	return args.Error(0)
}

func (m *MockDocumentRepository) UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, documentID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

func (m *MockDocumentRepository) CreateInvoiceFromQuote(ctx context.Context, quoteID string, invoice domain.Document, items []domain.LineItem) error {
	args := m.Called(ctx, quoteID, invoice, items)
	return args.Error(0)
}

// --- Mock PartyRepository ---

type MockPartyRepository struct {
	mock.Mock
}

var _ portsrepo.PartyRepositoryFacade = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListPartiesByKind(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) DeleteParty(ctx context.Context, partyID string, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, partyID, deletedBy, deletedAt)
	return args.Error(0)
}

// --- Mock ProductRepository ---

type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, productID, deletedBy, deletedAt)
	return args.Error(0)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByParty(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, partyID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Payment), returnedNextToken, args.Error(2)
}

func (m *MockPaymentRepository) ListPaymentsByDocument(ctx context.Context, documentID string) ([]domain.Payment, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// --- Mock NumberingRepository ---

type MockNumberingRepository struct {
	mock.Mock
}

var _ portsrepo.NumberingRepositoryFacade = (*MockNumberingRepository)(nil)

func (m *MockNumberingRepository) AllocateNextValue(ctx context.Context, kind domain.DocumentKind, style billing.SeriesStyle) (int64, error) {
	args := m.Called(ctx, kind, style)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNumberingRepository) PeekNextValue(ctx context.Context, kind domain.DocumentKind, style billing.SeriesStyle) (int64, error) {
	args := m.Called(ctx, kind, style)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepositoryFacade = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) ListOpenDocumentBalances(ctx context.Context, kind domain.DocumentKind) ([]domain.OpenDocumentBalance, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpenDocumentBalance), args.Error(1)
}

// --- Mock NumberingService ---

type MockNumberingService struct {
	mock.Mock
}

var _ portssvc.NumberingSvcFacade = (*MockNumberingService)(nil)

func (m *MockNumberingService) NextNumber(ctx context.Context, kind domain.DocumentKind) (string, error) {
	args := m.Called(ctx, kind)
	return args.String(0), args.Error(1)
}

func (m *MockNumberingService) AllocateNumber(ctx context.Context, kind domain.DocumentKind) (string, error) {
	args := m.Called(ctx, kind)
	return args.String(0), args.Error(1)
}
