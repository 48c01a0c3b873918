package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/middleware"
)

// partyHandler handles HTTP requests for customers and vendors. The two
// kinds share handlers; the route group fixes which side of the ledger a
// request addresses.
type partyHandler struct {
	partyService   portssvc.PartySvcFacade
	paymentService portssvc.PaymentReaderSvc
}

// newPartyHandler creates a new partyHandler.
func newPartyHandler(ps portssvc.PartySvcFacade, pay portssvc.PaymentReaderSvc) *partyHandler {
	return &partyHandler{
		partyService:   ps,
		paymentService: pay,
	}
}

// registerPartyRoutes registers the customer and vendor route groups.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade, paymentService portssvc.PaymentReaderSvc) {
	h := newPartyHandler(partyService, paymentService)

	groups := []struct {
		path string
		kind domain.PartyKind
	}{
		{"/customers", domain.Customer},
		{"/vendors", domain.Vendor},
	}

	for _, g := range groups {
		kind := g.kind
		parties := rg.Group(g.path)
		{
			parties.GET("", h.listParties(kind))
			parties.POST("", h.createParty(kind))
			parties.GET("/:id", h.getParty(kind))
			parties.PUT("/:id", h.updateParty(kind))
			parties.DELETE("/:id", h.deleteParty(kind))
			parties.GET("/:id/payments", h.listPartyPayments(kind))
		}
	}
}

// findPartyOfKind loads a party and hides it behind a not found error when
// it belongs to the other route group.
func (h *partyHandler) findPartyOfKind(c *gin.Context, kind domain.PartyKind, partyID string) (*domain.Party, error) {
	party, err := h.partyService.GetPartyByID(c.Request.Context(), partyID)
	if err != nil {
		return nil, err
	}
	if party.Kind != kind {
		return nil, apperrors.ErrNotFound
	}
	return party, nil
}

// createParty godoc
// @Summary Create a customer or vendor
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /customers [post]
func (h *partyHandler) createParty(kind domain.PartyKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		var req dto.CreatePartyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for create party", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return
		}

		creatorUserID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			logger.Error("Creator user ID not found in context")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		logger = logger.With(slog.String("kind", string(kind)), slog.String("creator_user_id", creatorUserID))

		party, err := h.partyService.CreateParty(c.Request.Context(), kind, req, creatorUserID)
		if err != nil {
			respondServiceError(c, logger, err, "Failed to create party")
			return
		}

		logger.Info("Party created", slog.String("party_id", party.PartyID))
		c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
	}
}

// getParty godoc
// @Summary Get a customer or vendor
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *partyHandler) getParty(kind domain.PartyKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		partyID := c.Param("id")

		party, err := h.findPartyOfKind(c, kind, partyID)
		if err != nil {
			respondServiceError(c, logger.With(slog.String("party_id", partyID)), err, "Failed to retrieve party")
			return
		}

		c.JSON(http.StatusOK, dto.ToPartyResponse(party))
	}
}

// listParties godoc
// @Summary List customers or vendors
// @Description Retrieves every party of the route's kind ordered by name
// @Tags parties
// @Produce  json
// @Success 200 {object} dto.ListPartiesResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *partyHandler) listParties(kind domain.PartyKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		parties, err := h.partyService.ListParties(c.Request.Context(), kind)
		if err != nil {
			respondServiceError(c, logger.With(slog.String("kind", string(kind))), err, "Failed to list parties")
			return
		}

		c.JSON(http.StatusOK, dto.ToListPartiesResponse(parties))
	}
}

// updateParty godoc
// @Summary Update a customer or vendor
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   id path string true "Party ID"
// @Param   party body dto.UpdatePartyRequest true "Fields to update"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *partyHandler) updateParty(kind domain.PartyKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		partyID := c.Param("id")

		var req dto.UpdatePartyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for update party", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return
		}

		requestingUserID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			logger.Error("Requesting user ID not found in context")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		logger = logger.With(slog.String("party_id", partyID), slog.String("updater_user_id", requestingUserID))

		if _, err := h.findPartyOfKind(c, kind, partyID); err != nil {
			respondServiceError(c, logger, err, "Failed to retrieve party")
			return
		}

		party, err := h.partyService.UpdateParty(c.Request.Context(), partyID, req, requestingUserID)
		if err != nil {
			respondServiceError(c, logger, err, "Failed to update party")
			return
		}

		logger.Info("Party updated")
		c.JSON(http.StatusOK, dto.ToPartyResponse(party))
	}
}

// deleteParty godoc
// @Summary Delete a customer or vendor
// @Description Removes a party that owns no documents and no payments
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 409 {object} ErrorResponse "Party still referenced by documents or payments"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *partyHandler) deleteParty(kind domain.PartyKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		partyID := c.Param("id")

		requestingUserID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			logger.Error("Requesting user ID not found in context")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		logger = logger.With(slog.String("party_id", partyID), slog.String("deleter_user_id", requestingUserID))

		if _, err := h.findPartyOfKind(c, kind, partyID); err != nil {
			respondServiceError(c, logger, err, "Failed to retrieve party")
			return
		}

		if err := h.partyService.DeleteParty(c.Request.Context(), partyID, requestingUserID); err != nil {
			respondServiceError(c, logger, err, "Failed to delete party")
			return
		}

		logger.Info("Party deleted")
		c.Status(http.StatusNoContent)
	}
}

// listPartyPayments godoc
// @Summary List a party's payments
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 404 {object} ErrorResponse "Party not found"
// @Security BearerAuth
// @Router /customers/{id}/payments [get]
func (h *partyHandler) listPartyPayments(kind domain.PartyKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		partyID := c.Param("id")

		var params dto.ListPaymentsParams
		if err := c.ShouldBindQuery(&params); err != nil {
			logger.Warn("Failed to bind query params for list party payments", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
			return
		}

		if _, err := h.findPartyOfKind(c, kind, partyID); err != nil {
			respondServiceError(c, logger.With(slog.String("party_id", partyID)), err, "Failed to retrieve party")
			return
		}

		resp, err := h.paymentService.ListPaymentsByParty(c.Request.Context(), partyID, params)
		if err != nil {
			respondServiceError(c, logger.With(slog.String("party_id", partyID)), err, "Failed to list payments")
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
