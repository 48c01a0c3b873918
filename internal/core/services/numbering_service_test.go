package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/billing"
)

type NumberingServiceTestSuite struct {
	suite.Suite
	mockNumberingRepo *MockNumberingRepository
	service           portssvc.NumberingSvcFacade
	ctx               context.Context
}

func (suite *NumberingServiceTestSuite) SetupTest() {
	suite.mockNumberingRepo = new(MockNumberingRepository)
	suite.service = services.NewNumberingService(suite.mockNumberingRepo, nil)
	suite.ctx = context.Background()
}

func (suite *NumberingServiceTestSuite) TestNextNumber_FormatsWithoutReserving() {
	style := billing.DefaultSeriesStyles()[domain.KindInvoice]
	suite.mockNumberingRepo.On("PeekNextValue", suite.ctx, domain.KindInvoice, style).Return(int64(8), nil)

	number, err := suite.service.NextNumber(suite.ctx, domain.KindInvoice)

	suite.Require().NoError(err)
	suite.Equal("INV-000008", number)
	suite.mockNumberingRepo.AssertNotCalled(suite.T(), "AllocateNextValue", suite.ctx, domain.KindInvoice, style)
}

func (suite *NumberingServiceTestSuite) TestAllocateNumber_AdvancesCounter() {
	style := billing.DefaultSeriesStyles()[domain.KindBill]
	suite.mockNumberingRepo.On("AllocateNextValue", suite.ctx, domain.KindBill, style).Return(int64(12), nil)

	number, err := suite.service.AllocateNumber(suite.ctx, domain.KindBill)

	suite.Require().NoError(err)
	suite.Equal("0012", number, "bills carry no prefix and pad to four digits")
	suite.mockNumberingRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestAllocateNumber_ConfiguredStyleOverridesDefault() {
	styles := map[domain.DocumentKind]billing.SeriesStyle{
		domain.KindQuote: {Prefix: "QTE-", Width: 3},
	}
	service := services.NewNumberingService(suite.mockNumberingRepo, styles)
	suite.mockNumberingRepo.On("AllocateNextValue", suite.ctx, domain.KindQuote, styles[domain.KindQuote]).Return(int64(4), nil)

	number, err := service.AllocateNumber(suite.ctx, domain.KindQuote)

	suite.Require().NoError(err)
	suite.Equal("QTE-004", number)
}

func (suite *NumberingServiceTestSuite) TestNextNumber_UnconfiguredKindFails() {
	service := services.NewNumberingService(suite.mockNumberingRepo, map[domain.DocumentKind]billing.SeriesStyle{
		domain.KindInvoice: {Prefix: "INV-", Width: 6},
	})

	_, err := service.NextNumber(suite.ctx, domain.KindQuote)

	suite.Error(err)
	suite.mockNumberingRepo.AssertNotCalled(suite.T(), "PeekNextValue", suite.ctx, domain.KindQuote, billing.SeriesStyle{})
}

func TestNumberingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NumberingServiceTestSuite))
}
