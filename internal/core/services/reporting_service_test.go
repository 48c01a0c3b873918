package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingService
	ctx               context.Context
	asOf              time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
	suite.ctx = context.Background()
	suite.asOf = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
}

// dueDaysAgo returns a due date n days before the suite's asOf date.
func (suite *ReportingServiceTestSuite) dueDaysAgo(n int) *time.Time {
	d := suite.asOf.AddDate(0, 0, -n)
	return &d
}

func (suite *ReportingServiceTestSuite) TestReceivablesAging_BucketsByDaysPastDue() {
	acmeID := uuid.NewString()
	balances := []domain.OpenDocumentBalance{
		{DocumentID: uuid.NewString(), PartyID: &acmeID, PartyName: "Acme Corp", DueDate: suite.dueDaysAgo(-5), Balance: dec("100.00")},
		{DocumentID: uuid.NewString(), PartyID: &acmeID, PartyName: "Acme Corp", DueDate: suite.dueDaysAgo(15), Balance: dec("200.00")},
		{DocumentID: uuid.NewString(), PartyID: &acmeID, PartyName: "Acme Corp", DueDate: suite.dueDaysAgo(45), Balance: dec("300.00")},
		{DocumentID: uuid.NewString(), PartyID: &acmeID, PartyName: "Acme Corp", DueDate: suite.dueDaysAgo(75), Balance: dec("400.00")},
		{DocumentID: uuid.NewString(), PartyID: &acmeID, PartyName: "Acme Corp", DueDate: suite.dueDaysAgo(120), Balance: dec("500.00")},
	}
	suite.mockReportingRepo.On("ListOpenDocumentBalances", suite.ctx, domain.KindInvoice).Return(balances, nil)

	report, err := suite.service.ReceivablesAging(suite.ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.Equal(domain.KindInvoice, report.Kind)
	suite.True(report.Buckets.Current.Equal(dec("100.00")))
	suite.True(report.Buckets.Days130.Equal(dec("200.00")))
	suite.True(report.Buckets.Days3160.Equal(dec("300.00")))
	suite.True(report.Buckets.Days6190.Equal(dec("400.00")))
	suite.True(report.Buckets.Days90.Equal(dec("500.00")))
	suite.True(report.Buckets.Total.Equal(dec("1500.00")))
	suite.Require().Len(report.Rows, 1)
	suite.True(report.Rows[0].Total.Equal(dec("1500.00")))
}

func (suite *ReportingServiceTestSuite) TestReceivablesAging_IssueDateUsedWhenNoDueDate() {
	partyID := uuid.NewString()
	balances := []domain.OpenDocumentBalance{
		{DocumentID: uuid.NewString(), PartyID: &partyID, PartyName: "Acme Corp", Date: suite.asOf.AddDate(0, 0, -45), Balance: dec("50.00")},
	}
	suite.mockReportingRepo.On("ListOpenDocumentBalances", suite.ctx, domain.KindInvoice).Return(balances, nil)

	report, err := suite.service.ReceivablesAging(suite.ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.True(report.Buckets.Days3160.Equal(dec("50.00")))
}

func (suite *ReportingServiceTestSuite) TestReceivablesAging_ResidualCentBalancesSkipped() {
	partyID := uuid.NewString()
	balances := []domain.OpenDocumentBalance{
		{DocumentID: uuid.NewString(), PartyID: &partyID, PartyName: "Acme Corp", DueDate: suite.dueDaysAgo(10), Balance: dec("0.01")},
		{DocumentID: uuid.NewString(), PartyID: &partyID, PartyName: "Acme Corp", DueDate: suite.dueDaysAgo(10), Balance: dec("0.02")},
	}
	suite.mockReportingRepo.On("ListOpenDocumentBalances", suite.ctx, domain.KindInvoice).Return(balances, nil)

	report, err := suite.service.ReceivablesAging(suite.ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1, "only the balance above the paid tolerance survives")
	suite.True(report.Buckets.Total.Equal(dec("0.02")))
}

func (suite *ReportingServiceTestSuite) TestPayablesAging_RowsSortedCaseInsensitively() {
	zetaID := uuid.NewString()
	alphaID := uuid.NewString()
	balances := []domain.OpenDocumentBalance{
		{DocumentID: uuid.NewString(), PartyID: &zetaID, PartyName: "zeta supplies", DueDate: suite.dueDaysAgo(5), Balance: dec("10.00")},
		{DocumentID: uuid.NewString(), PartyID: &alphaID, PartyName: "Alpha Parts", DueDate: suite.dueDaysAgo(5), Balance: dec("20.00")},
		{DocumentID: uuid.NewString(), PartyID: nil, PartyName: "", DueDate: suite.dueDaysAgo(5), Balance: dec("5.00")},
	}
	suite.mockReportingRepo.On("ListOpenDocumentBalances", suite.ctx, domain.KindBill).Return(balances, nil)

	report, err := suite.service.PayablesAging(suite.ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 3)
	suite.Nil(report.Rows[0].PartyID, "the anonymous row sorts first")
	suite.Equal("Alpha Parts", report.Rows[1].PartyName)
	suite.Equal("zeta supplies", report.Rows[2].PartyName)
	suite.True(report.Buckets.Total.Equal(dec("35.00")))
}

func (suite *ReportingServiceTestSuite) TestPayablesAging_EqualNamesOrderedByPartyID() {
	firstID := "party-a"
	secondID := "party-b"
	balances := []domain.OpenDocumentBalance{
		{DocumentID: uuid.NewString(), PartyID: &secondID, PartyName: "ACME", DueDate: suite.dueDaysAgo(5), Balance: dec("10.00")},
		{DocumentID: uuid.NewString(), PartyID: &firstID, PartyName: "acme", DueDate: suite.dueDaysAgo(5), Balance: dec("20.00")},
	}
	suite.mockReportingRepo.On("ListOpenDocumentBalances", suite.ctx, domain.KindBill).Return(balances, nil)

	report, err := suite.service.PayablesAging(suite.ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 2)
	suite.Equal(firstID, *report.Rows[0].PartyID, "names that compare equal fall back to party ID order")
	suite.Equal(secondID, *report.Rows[1].PartyID)
}

func (suite *ReportingServiceTestSuite) TestPayablesAging_GroupsDocumentsPerParty() {
	partyID := uuid.NewString()
	balances := []domain.OpenDocumentBalance{
		{DocumentID: uuid.NewString(), PartyID: &partyID, PartyName: "Supplies Inc", DueDate: suite.dueDaysAgo(10), Balance: dec("30.00")},
		{DocumentID: uuid.NewString(), PartyID: &partyID, PartyName: "Supplies Inc", DueDate: suite.dueDaysAgo(40), Balance: dec("70.00")},
	}
	suite.mockReportingRepo.On("ListOpenDocumentBalances", suite.ctx, domain.KindBill).Return(balances, nil)

	report, err := suite.service.PayablesAging(suite.ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	suite.True(report.Rows[0].Days130.Equal(dec("30.00")))
	suite.True(report.Rows[0].Days3160.Equal(dec("70.00")))
	suite.True(report.Rows[0].Total.Equal(dec("100.00")))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
