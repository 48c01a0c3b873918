package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo  *MockPaymentRepository
	mockDocumentRepo *MockDocumentRepository
	mockPartyRepo    *MockPartyRepository
	service          portssvc.PaymentSvcFacade
	ctx              context.Context
	userID           string
	customer         domain.Party
	vendor           domain.Party
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockDocumentRepo = new(MockDocumentRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockDocumentRepo, suite.mockPartyRepo)
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()

	suite.customer = domain.Party{PartyID: uuid.NewString(), Kind: domain.Customer, Name: "Acme Corp"}
	suite.vendor = domain.Party{PartyID: uuid.NewString(), Kind: domain.Vendor, Name: "Supplies Inc"}
}

func (suite *PaymentServiceTestSuite) paymentRequest() dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		PartyID: suite.customer.PartyID,
		Date:    time.Now().UTC(),
		Amount:  dec("25.00"),
		Method:  "check",
	}
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_AppliedToInvoice() {
	documentID := uuid.NewString()
	req := suite.paymentRequest()
	req.DocumentID = &documentID
	invoice := &domain.Document{
		DocumentID: documentID,
		Kind:       domain.KindInvoice,
		PartyID:    &suite.customer.PartyID,
		Total:      dec("100.00"),
		Status:     domain.StatusOpen,
	}
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(&suite.customer, nil)
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, documentID).Return(invoice, nil)
	suite.mockPaymentRepo.On("SavePayment", suite.ctx, mock.AnythingOfType("domain.Payment")).Return(nil)

	payment, err := suite.service.RecordPayment(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(payment.PaymentID)
	suite.Equal(suite.customer.PartyID, payment.PartyID)
	suite.Require().NotNil(payment.DocumentID)
	suite.Equal(documentID, *payment.DocumentID)
	suite.True(payment.Amount.Equal(dec("25.00")))
	suite.Equal(suite.userID, payment.CreatedBy)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_UnappliedSkipsDocumentChecks() {
	req := suite.paymentRequest()
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(&suite.customer, nil)
	suite.mockPaymentRepo.On("SavePayment", suite.ctx, mock.AnythingOfType("domain.Payment")).Return(nil)

	payment, err := suite.service.RecordPayment(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Nil(payment.DocumentID)
	suite.mockDocumentRepo.AssertNotCalled(suite.T(), "FindDocumentByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmountRejected() {
	req := suite.paymentRequest()
	req.Amount = dec("0")

	_, err := suite.service.RecordPayment(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_UnknownPartyRejected() {
	req := suite.paymentRequest()
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.RecordPayment(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_QuoteCannotReceivePayments() {
	documentID := uuid.NewString()
	req := suite.paymentRequest()
	req.DocumentID = &documentID
	quote := &domain.Document{DocumentID: documentID, Kind: domain.KindQuote, PartyID: &suite.customer.PartyID}
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(&suite.customer, nil)
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, documentID).Return(quote, nil)

	_, err := suite.service.RecordPayment(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_CustomerCannotPayBill() {
	documentID := uuid.NewString()
	req := suite.paymentRequest()
	req.DocumentID = &documentID
	bill := &domain.Document{DocumentID: documentID, Kind: domain.KindBill, PartyID: &suite.customer.PartyID}
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(&suite.customer, nil)
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, documentID).Return(bill, nil)

	_, err := suite.service.RecordPayment(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_DocumentOfDifferentPartyRejected() {
	documentID := uuid.NewString()
	otherCustomerID := uuid.NewString()
	req := suite.paymentRequest()
	req.DocumentID = &documentID
	invoice := &domain.Document{DocumentID: documentID, Kind: domain.KindInvoice, PartyID: &otherCustomerID}
	suite.mockPartyRepo.On("FindPartyByID", suite.ctx, suite.customer.PartyID).Return(&suite.customer, nil)
	suite.mockDocumentRepo.On("FindDocumentByID", suite.ctx, documentID).Return(invoice, nil)

	_, err := suite.service.RecordPayment(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentByID() {
	paymentID := uuid.NewString()
	payment := &domain.Payment{PaymentID: paymentID, PartyID: suite.customer.PartyID, Amount: dec("10.00")}
	suite.mockPaymentRepo.On("FindPaymentByID", suite.ctx, paymentID).Return(payment, nil)

	got, err := suite.service.GetPaymentByID(suite.ctx, paymentID)

	suite.Require().NoError(err)
	suite.Equal(paymentID, got.PaymentID)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentByID_NotFound() {
	paymentID := uuid.NewString()
	suite.mockPaymentRepo.On("FindPaymentByID", suite.ctx, paymentID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.GetPaymentByID(suite.ctx, paymentID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestListPaymentsByParty_DefaultsLimitAndMapsToken() {
	partyID := suite.customer.PartyID
	payments := []domain.Payment{
		{PaymentID: uuid.NewString(), PartyID: partyID, Amount: dec("5.00")},
		{PaymentID: uuid.NewString(), PartyID: partyID, Amount: dec("7.50")},
	}
	suite.mockPaymentRepo.On("ListPaymentsByParty", suite.ctx, partyID, 20, (*string)(nil)).Return(payments, "token-2", nil)

	resp, err := suite.service.ListPaymentsByParty(suite.ctx, partyID, dto.ListPaymentsParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Payments, 2)
	suite.Equal("token-2", resp.NextToken)
}

func (suite *PaymentServiceTestSuite) TestListPaymentsByDocument() {
	documentID := uuid.NewString()
	payments := []domain.Payment{{PaymentID: uuid.NewString(), PartyID: suite.customer.PartyID, DocumentID: &documentID}}
	suite.mockPaymentRepo.On("ListPaymentsByDocument", suite.ctx, documentID).Return(payments, nil)

	got, err := suite.service.ListPaymentsByDocument(suite.ctx, documentID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
