package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
)

type DocumentServiceTestSuite struct {
	suite.Suite
	mockDocumentRepo *MockDocumentRepository
	mockPartyRepo    *MockPartyRepository
	mockProductRepo  *MockProductRepository
	mockNumberingSvc *MockNumberingService
	service          portssvc.DocumentSvcFacade
	ctx              context.Context
	userID           string
	customer         domain.Party
	vendor           domain.Party
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.mockDocumentRepo = new(MockDocumentRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockNumberingSvc = new(MockNumberingService)
	suite.service = services.NewDocumentService(suite.mockDocumentRepo, suite.mockPartyRepo, suite.mockProductRepo, suite.mockNumberingSvc)
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()

	suite.customer = domain.Party{
		PartyID: uuid.NewString(),
		Kind:    domain.Customer,
		Name:    "Acme Corp",
	}
	suite.vendor = domain.Party{
		PartyID: uuid.NewString(),
		Kind:    domain.Vendor,
		Name:    "Supplies Inc",
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func (suite *DocumentServiceTestSuite) invoiceRequest() dto.CreateDocumentRequest {
	due := time.Now().UTC().AddDate(0, 0, 30)
	return dto.CreateDocumentRequest{
		Date:    time.Now().UTC(),
		DueDate: &due,
		PartyID: &suite.customer.PartyID,
		Tax:     dec("2.50"),
		Items: []dto.LineItemInput{
			{Description: "Widget", Quantity: decPtr("3"), UnitPrice: decPtr("10.00")},
			{Description: "Gadget", Quantity: decPtr("2"), UnitPrice: decPtr("4.75")},
		},
	}
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_ComputesTotalsAndAllocatesNumber() {
	req := suite.invoiceRequest()
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(&suite.customer, nil)
	suite.mockNumberingSvc.On("AllocateNumber", suite.ctx, domain.KindInvoice).Return("INV-000042", nil)
	suite.mockDocumentRepo.On("SaveDocument", suite.ctx, mock.AnythingOfType("domain.Document"), mock.AnythingOfType("[]domain.LineItem")).Return(nil)

	doc, err := suite.service.CreateDocument(suite.ctx, domain.KindInvoice, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.KindInvoice, doc.Kind)
	suite.Equal("INV-000042", doc.Number)
	suite.True(doc.Subtotal.Equal(dec("39.50")), "subtotal should be 3*10 + 2*4.75, got %s", doc.Subtotal)
	suite.True(doc.Total.Equal(dec("42.00")), "total should include tax, got %s", doc.Total)
	suite.Equal(domain.StatusOpen, doc.Status)
	suite.Len(doc.Items, 2)
	suite.True(doc.Items[0].Amount.Equal(dec("30.00")))
	suite.Equal(suite.userID, doc.CreatedBy)
	suite.mockDocumentRepo.AssertExpectations(suite.T())
	suite.mockNumberingSvc.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_ExplicitNumberSkipsAllocation() {
	req := suite.invoiceRequest()
	req.Number = "INV-000777"
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(&suite.customer, nil)
	suite.mockDocumentRepo.On("SaveDocument", suite.ctx, mock.AnythingOfType("domain.Document"), mock.AnythingOfType("[]domain.LineItem")).Return(nil)

	doc, err := suite.service.CreateDocument(suite.ctx, domain.KindInvoice, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("INV-000777", doc.Number)
	suite.mockNumberingSvc.AssertNotCalled(suite.T(), "AllocateNumber", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateQuote_SuppliedNumberRejected() {
	req := suite.invoiceRequest()
	req.Number = "MANUAL-1"
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(&suite.customer, nil)

	_, err := suite.service.CreateDocument(suite.ctx, domain.KindQuote, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockNumberingSvc.AssertNotCalled(suite.T(), "AllocateNumber", mock.Anything, mock.Anything)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateQuote_NumberIsSystemAssigned() {
	req := suite.invoiceRequest()
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(&suite.customer, nil)
	suite.mockNumberingSvc.On("AllocateNumber", suite.ctx, domain.KindQuote).Return("Q-000001", nil)
	suite.mockDocumentRepo.On("SaveDocument", suite.ctx, mock.AnythingOfType("domain.Document"), mock.AnythingOfType("[]domain.LineItem")).Return(nil)

	doc, err := suite.service.CreateDocument(suite.ctx, domain.KindQuote, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Q-000001", doc.Number)
	suite.Equal(domain.StatusDraft, doc.Status)
	suite.mockNumberingSvc.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_DuplicateNumberConflicts() {
	req := suite.invoiceRequest()
	req.Number = "INV-000001"
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(&suite.customer, nil)
	suite.mockDocumentRepo.On("SaveDocument", suite.ctx, mock.AnythingOfType("domain.Document"), mock.AnythingOfType("[]domain.LineItem")).Return(apperrors.ErrConflict)

	_, err := suite.service.CreateDocument(suite.ctx, domain.KindInvoice, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_NegativeTaxRejected() {
	req := suite.invoiceRequest()
	req.Tax = dec("-1")

	_, err := suite.service.CreateDocument(suite.ctx, domain.KindInvoice, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_VendorPartyRejected() {
	req := suite.invoiceRequest()
	req.PartyID = &suite.vendor.PartyID
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.vendor.PartyID).Return(&suite.vendor, nil)

	_, err := suite.service.CreateDocument(suite.ctx, domain.KindInvoice, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_BlankRowsSkipped() {
	req := suite.invoiceRequest()
	req.Items = append(req.Items, dto.LineItemInput{})
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(&suite.customer, nil)
	suite.mockNumberingSvc.On("AllocateNumber", suite.ctx, domain.KindInvoice).Return("INV-000042", nil)
	suite.mockDocumentRepo.On("SaveDocument", suite.ctx, mock.AnythingOfType("domain.Document"), mock.AnythingOfType("[]domain.LineItem")).Return(nil)

	doc, err := suite.service.CreateDocument(suite.ctx, domain.KindInvoice, req, suite.userID)

	suite.Require().NoError(err)
	suite.Len(doc.Items, 2, "the all-blank row should be dropped")
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_AllBlankItemsRejected() {
	req := suite.invoiceRequest()
	req.Items = []dto.LineItemInput{{}, {}}
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(&suite.customer, nil)

	_, err := suite.service.CreateDocument(suite.ctx, domain.KindInvoice, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DocumentServiceTestSuite) TestCreateInvoice_ProductDefaultsFillMissingFields() {
	productID := uuid.NewString()
	req := suite.invoiceRequest()
	req.Items = []dto.LineItemInput{
		{ProductID: &productID, Quantity: decPtr("4")},
	}
	product := domain.Product{
		ProductID:   productID,
		Code:        "WID-1",
		Description: "Standard widget",
		Unit:        "ea",
		Price:       dec("5.25"),
	}
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(&suite.customer, nil)
	suite.mockProductRepo.On("FindProductsByIDs", suite.ctx, []string{productID}).Return(map[string]domain.Product{productID: product}, nil)
	suite.mockNumberingSvc.On("AllocateNumber", suite.ctx, domain.KindInvoice).Return("INV-000043", nil)
	suite.mockDocumentRepo.On("SaveDocument", suite.ctx, mock.AnythingOfType("domain.Document"), mock.AnythingOfType("[]domain.LineItem")).Return(nil)

	doc, err := suite.service.CreateDocument(suite.ctx, domain.KindInvoice, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(doc.Items, 1)
	suite.Equal("Standard widget", doc.Items[0].Description)
	suite.Equal("ea", doc.Items[0].Unit)
	suite.True(doc.Items[0].UnitPrice.Equal(dec("5.25")))
	suite.True(doc.Subtotal.Equal(dec("21.00")))
}

func (suite *DocumentServiceTestSuite) TestCreatePurchaseOrder_DefaultsToVendorSide() {
	req := suite.invoiceRequest()
	req.PartyID = &suite.vendor.PartyID
	req.POType = ""
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.vendor.PartyID).Return(&suite.vendor, nil)
	suite.mockNumberingSvc.On("AllocateNumber", suite.ctx, domain.KindPurchaseOrder).Return("0005", nil)
	suite.mockDocumentRepo.On("SaveDocument", suite.ctx, mock.AnythingOfType("domain.Document"), mock.AnythingOfType("[]domain.LineItem")).Return(nil)

	doc, err := suite.service.CreateDocument(suite.ctx, domain.KindPurchaseOrder, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.POTypeVendor, doc.POType)
	suite.Equal(domain.StatusDraft, doc.Status, "purchase orders start as drafts, not open")
}

func (suite *DocumentServiceTestSuite) TestGetDocumentByID_FlipsOpenToOverdue() {
	documentID := uuid.NewString()
	pastDue := time.Now().UTC().AddDate(0, 0, -10)
	doc := &domain.Document{
		DocumentID: documentID,
		Kind:       domain.KindInvoice,
		Number:     "INV-000001",
		Date:       pastDue.AddDate(0, 0, -30),
		DueDate:    &pastDue,
		Total:      dec("100.00"),
		Status:     domain.StatusOpen,
	}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, documentID).Return(doc, nil)
	suite.mockDocumentRepo.On("FindLineItemsByDocumentID", suite.ctx, documentID).Return([]domain.LineItem{}, nil)
	suite.mockDocumentRepo.On("SumPaymentsForDocument", suite.ctx, documentID).Return(decimal.Zero, nil)
	suite.mockDocumentRepo.On("UpdateDocumentStatus", suite.ctx, documentID, domain.StatusOverdue, mock.Anything, mock.AnythingOfType("time.Time")).Return(nil)

	got, err := suite.service.GetDocumentByID(suite.ctx, domain.KindInvoice, documentID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusOverdue, got.Status)
	suite.mockDocumentRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestGetDocumentByID_FlipFailureStillReturnsDerivedStatus() {
	documentID := uuid.NewString()
	pastDue := time.Now().UTC().AddDate(0, 0, -5)
	doc := &domain.Document{
		DocumentID: documentID,
		Kind:       domain.KindBill,
		DueDate:    &pastDue,
		Total:      dec("50.00"),
		Status:     domain.StatusOpen,
	}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, documentID).Return(doc, nil)
	suite.mockDocumentRepo.On("FindLineItemsByDocumentID", suite.ctx, documentID).Return([]domain.LineItem{}, nil)
	suite.mockDocumentRepo.On("SumPaymentsForDocument", suite.ctx, documentID).Return(decimal.Zero, nil)
	suite.mockDocumentRepo.On("UpdateDocumentStatus", suite.ctx, documentID, domain.StatusOverdue, mock.Anything, mock.AnythingOfType("time.Time")).Return(apperrors.ErrInternal)

	got, err := suite.service.GetDocumentByID(suite.ctx, domain.KindBill, documentID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusOverdue, got.Status)
}

func (suite *DocumentServiceTestSuite) TestGetDocumentByID_KindMismatchIsNotFound() {
	documentID := uuid.NewString()
	doc := &domain.Document{DocumentID: documentID, Kind: domain.KindQuote}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, documentID).Return(doc, nil)

	_, err := suite.service.GetDocumentByID(suite.ctx, domain.KindInvoice, documentID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DocumentServiceTestSuite) TestGetDocumentBalance() {
	documentID := uuid.NewString()
	doc := &domain.Document{
		DocumentID: documentID,
		Kind:       domain.KindInvoice,
		Total:      dec("100.00"),
		Status:     domain.StatusPartial,
	}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, documentID).Return(doc, nil)
	suite.mockDocumentRepo.On("SumPaymentsForDocument", suite.ctx, documentID).Return(dec("40.00"), nil)

	balance, err := suite.service.GetDocumentBalance(suite.ctx, domain.KindInvoice, documentID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(dec("60.00")))
}

func (suite *DocumentServiceTestSuite) TestGetDocumentBalance_QuoteRejected() {
	_, err := suite.service.GetDocumentBalance(suite.ctx, domain.KindQuote, uuid.NewString())
	suite.ErrorIs(err, services.ErrNotBalanceTracked)
}

func (suite *DocumentServiceTestSuite) TestUpdateDocument_ConvertedQuoteIsFrozen() {
	quoteID := uuid.NewString()
	invoiceID := uuid.NewString()
	quote := &domain.Document{
		DocumentID: quoteID,
		Kind:       domain.KindQuote,
		Status:     domain.StatusInvoiced,
		InvoiceID:  &invoiceID,
	}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, quoteID).Return(quote, nil)

	_, err := suite.service.UpdateDocument(suite.ctx, domain.KindQuote, quoteID, dto.UpdateDocumentRequest{Notes: strPtr("edit")}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func (suite *DocumentServiceTestSuite) TestUpdateDocumentStatus_InvoiceRejected() {
	_, err := suite.service.UpdateDocumentStatus(suite.ctx, domain.KindInvoice, uuid.NewString(), domain.StatusPaid, suite.userID)
	suite.ErrorIs(err, services.ErrStatusDerived)
}

func (suite *DocumentServiceTestSuite) TestUpdateDocumentStatus_QuoteCannotBeMarkedInvoicedDirectly() {
	_, err := suite.service.UpdateDocumentStatus(suite.ctx, domain.KindQuote, uuid.NewString(), domain.StatusInvoiced, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DocumentServiceTestSuite) TestUpdateDocumentStatus_QuoteAccepted() {
	quoteID := uuid.NewString()
	quote := &domain.Document{DocumentID: quoteID, Kind: domain.KindQuote, Status: domain.StatusSent}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, quoteID).Return(quote, nil)
	suite.mockDocumentRepo.On("UpdateDocumentStatus", suite.ctx, quoteID, domain.StatusAccepted, suite.userID, mock.AnythingOfType("time.Time")).Return(nil)

	doc, err := suite.service.UpdateDocumentStatus(suite.ctx, domain.KindQuote, quoteID, domain.StatusAccepted, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusAccepted, doc.Status)
}

func (suite *DocumentServiceTestSuite) TestDeleteDocument_PaidInvoiceRefused() {
	documentID := uuid.NewString()
	doc := &domain.Document{DocumentID: documentID, Kind: domain.KindInvoice, Status: domain.StatusPaid}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, documentID).Return(doc, nil)
	suite.mockDocumentRepo.On("CountPaymentsForDocument", suite.ctx, documentID).Return(int64(2), nil)

	err := suite.service.DeleteDocument(suite.ctx, domain.KindInvoice, documentID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "DeleteDocument", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestDeleteDocument_UnpaidInvoiceDeletes() {
	documentID := uuid.NewString()
	doc := &domain.Document{DocumentID: documentID, Kind: domain.KindInvoice, Status: domain.StatusOpen}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, documentID).Return(doc, nil)
	suite.mockDocumentRepo.On("CountPaymentsForDocument", suite.ctx, documentID).Return(int64(0), nil)
	suite.mockDocumentRepo.On("DeleteDocument", suite.ctx, documentID).Return(nil)

	err := suite.service.DeleteDocument(suite.ctx, domain.KindInvoice, documentID, suite.userID)

	suite.NoError(err)
	suite.mockDocumentRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestDeleteDocument_ConvertedQuoteRefused() {
	quoteID := uuid.NewString()
	invoiceID := uuid.NewString()
	quote := &domain.Document{DocumentID: quoteID, Kind: domain.KindQuote, Status: domain.StatusInvoiced, InvoiceID: &invoiceID}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, quoteID).Return(quote, nil)

	err := suite.service.DeleteDocument(suite.ctx, domain.KindQuote, quoteID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func (suite *DocumentServiceTestSuite) TestConvertQuoteToInvoice() {
	quoteID := uuid.NewString()
	quote := &domain.Document{
		DocumentID: quoteID,
		Kind:       domain.KindQuote,
		Number:     "Q-000009",
		Status:     domain.StatusAccepted,
		PartyID:    &suite.customer.PartyID,
		Subtotal:   dec("90.00"),
		Tax:        dec("10.00"),
		Total:      dec("100.00"),
	}
	quoteItems := []domain.LineItem{
		{LineItemID: uuid.NewString(), DocumentID: quoteID, Description: "Consulting", Quantity: dec("9"), UnitPrice: dec("10.00"), Amount: dec("90.00")},
	}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, quoteID).Return(quote, nil)
	suite.mockDocumentRepo.On("FindLineItemsByDocumentID", suite.ctx, quoteID).Return(quoteItems, nil)
	suite.mockNumberingSvc.On("AllocateNumber", suite.ctx, domain.KindInvoice).Return("INV-000050", nil)
	suite.mockDocumentRepo.On("CreateInvoiceFromQuote", suite.ctx, quoteID, mock.AnythingOfType("domain.Document"), mock.AnythingOfType("[]domain.LineItem")).Return(nil)

	invoice, err := suite.service.ConvertQuoteToInvoice(suite.ctx, quoteID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.KindInvoice, invoice.Kind)
	suite.Equal("INV-000050", invoice.Number)
	suite.True(invoice.Total.Equal(quote.Total))
	suite.Equal(domain.StatusOpen, invoice.Status)
	suite.Require().NotNil(invoice.DueDate)
	suite.WithinDuration(time.Now().UTC().AddDate(0, 0, 30), *invoice.DueDate, time.Minute)
	suite.Require().Len(invoice.Items, 1)
	suite.NotEqual(quoteItems[0].LineItemID, invoice.Items[0].LineItemID, "copied items get fresh IDs")
	suite.Equal(invoice.DocumentID, invoice.Items[0].DocumentID)
	suite.mockDocumentRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestConvertQuoteToInvoice_EmptyQuoteRefused() {
	quoteID := uuid.NewString()
	quote := &domain.Document{DocumentID: quoteID, Kind: domain.KindQuote, Status: domain.StatusSent}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, quoteID).Return(quote, nil)
	suite.mockDocumentRepo.On("FindLineItemsByDocumentID", suite.ctx, quoteID).Return([]domain.LineItem{}, nil)

	_, err := suite.service.ConvertQuoteToInvoice(suite.ctx, quoteID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.mockNumberingSvc.AssertNotCalled(suite.T(), "AllocateNumber", mock.Anything, mock.Anything)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "CreateInvoiceFromQuote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestConvertQuoteToInvoice_StatusDoesNotGateConversion() {
	quoteID := uuid.NewString()
	quote := &domain.Document{
		DocumentID: quoteID,
		Kind:       domain.KindQuote,
		Status:     domain.StatusDraft,
		Total:      dec("40.00"),
	}
	quoteItems := []domain.LineItem{
		{LineItemID: uuid.NewString(), DocumentID: quoteID, Description: "Survey", Quantity: dec("4"), UnitPrice: dec("10.00"), Amount: dec("40.00")},
	}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, quoteID).Return(quote, nil)
	suite.mockDocumentRepo.On("FindLineItemsByDocumentID", suite.ctx, quoteID).Return(quoteItems, nil)
	suite.mockNumberingSvc.On("AllocateNumber", suite.ctx, domain.KindInvoice).Return("INV-000052", nil)
	suite.mockDocumentRepo.On("CreateInvoiceFromQuote", suite.ctx, quoteID, mock.AnythingOfType("domain.Document"), mock.AnythingOfType("[]domain.LineItem")).Return(nil)

	invoice, err := suite.service.ConvertQuoteToInvoice(suite.ctx, quoteID, suite.userID)

	suite.Require().NoError(err, "a draft quote with items converts")
	suite.Equal("INV-000052", invoice.Number)
}

func (suite *DocumentServiceTestSuite) TestConvertQuoteToInvoice_AlreadyConvertedRefused() {
	quoteID := uuid.NewString()
	invoiceID := uuid.NewString()
	quote := &domain.Document{DocumentID: quoteID, Kind: domain.KindQuote, Status: domain.StatusInvoiced, InvoiceID: &invoiceID}
	quoteItems := []domain.LineItem{
		{LineItemID: uuid.NewString(), DocumentID: quoteID, Description: "Consulting", Quantity: dec("1"), UnitPrice: dec("10.00"), Amount: dec("10.00")},
	}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, quoteID).Return(quote, nil)
	suite.mockDocumentRepo.On("FindLineItemsByDocumentID", suite.ctx, quoteID).Return(quoteItems, nil)

	_, err := suite.service.ConvertQuoteToInvoice(suite.ctx, quoteID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.mockNumberingSvc.AssertNotCalled(suite.T(), "AllocateNumber", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestConvertQuoteToInvoice_LostRaceSurfacesPrecondition() {
	quoteID := uuid.NewString()
	quote := &domain.Document{
		DocumentID: quoteID,
		Kind:       domain.KindQuote,
		Status:     domain.StatusAccepted,
		Total:      dec("10.00"),
	}
	quoteItems := []domain.LineItem{
		{LineItemID: uuid.NewString(), DocumentID: quoteID, Description: "Consulting", Quantity: dec("1"), UnitPrice: dec("10.00"), Amount: dec("10.00")},
	}
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, quoteID).Return(quote, nil)
	suite.mockDocumentRepo.On("FindLineItemsByDocumentID", suite.ctx, quoteID).Return(quoteItems, nil)
	suite.mockNumberingSvc.On("AllocateNumber", suite.ctx, domain.KindInvoice).Return("INV-000051", nil)
	suite.mockDocumentRepo.On("CreateInvoiceFromQuote", suite.ctx, quoteID, mock.AnythingOfType("domain.Document"), mock.AnythingOfType("[]domain.LineItem")).
		Return(apperrors.NewPreconditionError("quote has already been converted"))

	_, err := suite.service.ConvertQuoteToInvoice(suite.ctx, quoteID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
