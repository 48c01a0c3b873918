package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/middleware"
)

// documentHandler handles HTTP requests for invoices, bills, quotes and
// purchase orders. The document kind is fixed by the route group, never
// taken from the request body.
type documentHandler struct {
	documentService  portssvc.DocumentSvcFacade
	paymentService   portssvc.PaymentReaderSvc
	numberingService portssvc.NumberingSvcFacade
}

// newDocumentHandler creates a new documentHandler.
func newDocumentHandler(ds portssvc.DocumentSvcFacade, ps portssvc.PaymentReaderSvc, ns portssvc.NumberingSvcFacade) *documentHandler {
	return &documentHandler{
		documentService:  ds,
		paymentService:   ps,
		numberingService: ns,
	}
}

// registerDocumentRoutes registers one route group per document kind.
func registerDocumentRoutes(rg *gin.RouterGroup, ds portssvc.DocumentSvcFacade, ps portssvc.PaymentReaderSvc, ns portssvc.NumberingSvcFacade) {
	h := newDocumentHandler(ds, ps, ns)

	groups := []struct {
		path string
		kind domain.DocumentKind
	}{
		{"/invoices", domain.KindInvoice},
		{"/bills", domain.KindBill},
		{"/quotes", domain.KindQuote},
		{"/purchase-orders", domain.KindPurchaseOrder},
	}

	for _, g := range groups {
		kind := g.kind
		docs := rg.Group(g.path)
		{
			docs.GET("", h.listDocuments(kind))
			docs.POST("", h.createDocument(kind))
			docs.GET("/next-number", h.nextNumber(kind))
			docs.GET("/:id", h.getDocument(kind))
			docs.PUT("/:id", h.updateDocument(kind))
			docs.DELETE("/:id", h.deleteDocument(kind))
			docs.PUT("/:id/status", h.updateDocumentStatus(kind))
		}
		if kind.IsBalanceTracked() {
			docs.GET("/:id/balance", h.getDocumentBalance(kind))
			docs.GET("/:id/payments", h.listDocumentPayments(kind))
		}
		if kind == domain.KindQuote {
			docs.POST("/:id/convert", h.convertQuoteToInvoice)
		}
	}
}

// createDocument godoc
// @Summary Create a document
// @Description Creates a new document of the kind fixed by the route, assigning the next number in the sequence when none is supplied
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   document body dto.CreateDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Number already in use"
// @Security BearerAuth
// @Router /invoices [post]
func (h *documentHandler) createDocument(kind domain.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		var req dto.CreateDocumentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for create document", slog.String("error", err.Error()))
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

		doc, err := h.documentService.CreateDocument(c.Request.Context(), kind, req, creatorUserID)
		if err != nil {
			respondServiceError(c, logger, err, "Failed to create document")
			return
		}

		logger.Info("Document created", slog.String("document_id", doc.DocumentID), slog.String("number", doc.Number))
		c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
	}
}

// getDocument godoc
// @Summary Get a document
// @Description Retrieves a document with its line items. Viewing an open invoice or bill past its due date flips it to overdue.
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *documentHandler) getDocument(kind domain.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		documentID := c.Param("id")

		doc, err := h.documentService.GetDocumentByID(c.Request.Context(), kind, documentID)
		if err != nil {
			respondServiceError(c, logger.With(slog.String("document_id", documentID)), err, "Failed to retrieve document")
			return
		}

		resp := dto.ToDocumentResponse(doc)
		if kind.IsBalanceTracked() {
			if balance, err := h.documentService.GetDocumentBalance(c.Request.Context(), kind, documentID); err == nil {
				resp.Balance = &balance
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

// listDocuments godoc
// @Summary List documents
// @Description Retrieves a page of documents of one kind, newest first
// @Tags documents
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListDocumentsResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *documentHandler) listDocuments(kind domain.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		var params dto.ListDocumentsParams
		if err := c.ShouldBindQuery(&params); err != nil {
			logger.Warn("Failed to bind query params for list documents", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
			return
		}

		resp, err := h.documentService.ListDocuments(c.Request.Context(), kind, params)
		if err != nil {
			respondServiceError(c, logger, err, "Failed to list documents")
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// updateDocument godoc
// @Summary Update a document
// @Description Updates header fields and optionally replaces the full line item set, recomputing totals and derived status
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   id path string true "Document ID"
// @Param   document body dto.UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 409 {object} ErrorResponse "Converted quotes are read-only"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *documentHandler) updateDocument(kind domain.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		documentID := c.Param("id")

		var req dto.UpdateDocumentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for update document", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return
		}

		requestingUserID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			logger.Error("Requesting user ID not found in context")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		logger = logger.With(slog.String("document_id", documentID), slog.String("updater_user_id", requestingUserID))

		doc, err := h.documentService.UpdateDocument(c.Request.Context(), kind, documentID, req, requestingUserID)
		if err != nil {
			respondServiceError(c, logger, err, "Failed to update document")
			return
		}

		logger.Info("Document updated")
		c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
	}
}

// updateDocumentStatus godoc
// @Summary Set a document status
// @Description Sets an operator-driven status on a quote or purchase order. Invoice and bill statuses are derived from payments and cannot be set directly.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   id path string true "Document ID"
// @Param   status body dto.UpdateDocumentStatusRequest true "New status"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse "Status not allowed for this kind"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /quotes/{id}/status [put]
func (h *documentHandler) updateDocumentStatus(kind domain.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		documentID := c.Param("id")

		var req dto.UpdateDocumentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for update document status", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return
		}

		requestingUserID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			logger.Error("Requesting user ID not found in context")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		logger = logger.With(slog.String("document_id", documentID), slog.String("status", string(req.Status)))

		doc, err := h.documentService.UpdateDocumentStatus(c.Request.Context(), kind, documentID, req.Status, requestingUserID)
		if err != nil {
			if errors.Is(err, services.ErrStatusDerived) {
				logger.Warn("Direct status write rejected")
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
			respondServiceError(c, logger, err, "Failed to update document status")
			return
		}

		logger.Info("Document status updated")
		c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
	}
}

// deleteDocument godoc
// @Summary Delete a document
// @Description Removes a document and its line items. Documents with applied payments and converted quotes refuse deletion.
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 409 {object} ErrorResponse "Deletion blocked by payments or conversion"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *documentHandler) deleteDocument(kind domain.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		documentID := c.Param("id")

		requestingUserID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			logger.Error("Requesting user ID not found in context")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		logger = logger.With(slog.String("document_id", documentID), slog.String("deleter_user_id", requestingUserID))

		if err := h.documentService.DeleteDocument(c.Request.Context(), kind, documentID, requestingUserID); err != nil {
			respondServiceError(c, logger, err, "Failed to delete document")
			return
		}

		logger.Info("Document deleted")
		c.Status(http.StatusNoContent)
	}
}

// getDocumentBalance godoc
// @Summary Get a document balance
// @Description Returns the remaining balance of an invoice or bill
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 200 {object} map[string]string "Returns the remaining balance"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /invoices/{id}/balance [get]
func (h *documentHandler) getDocumentBalance(kind domain.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		documentID := c.Param("id")

		balance, err := h.documentService.GetDocumentBalance(c.Request.Context(), kind, documentID)
		if err != nil {
			respondServiceError(c, logger.With(slog.String("document_id", documentID)), err, "Failed to compute balance")
			return
		}

		c.JSON(http.StatusOK, gin.H{"documentID": documentID, "balance": balance})
	}
}

// listDocumentPayments godoc
// @Summary List payments applied to a document
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /invoices/{id}/payments [get]
func (h *documentHandler) listDocumentPayments(kind domain.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		documentID := c.Param("id")

		if _, err := h.documentService.GetDocumentByID(c.Request.Context(), kind, documentID); err != nil {
			respondServiceError(c, logger.With(slog.String("document_id", documentID)), err, "Failed to retrieve document")
			return
		}

		payments, err := h.paymentService.ListPaymentsByDocument(c.Request.Context(), documentID)
		if err != nil {
			respondServiceError(c, logger.With(slog.String("document_id", documentID)), err, "Failed to list payments")
			return
		}

		c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments, ""))
	}
}

// nextNumber godoc
// @Summary Preview the next document number
// @Description Returns the number the next saved document of this kind is expected to receive. Advisory only; nothing is reserved until a document commits.
// @Tags documents
// @Produce  json
// @Success 200 {object} dto.NextNumberResponse
// @Security BearerAuth
// @Router /invoices/next-number [get]
func (h *documentHandler) nextNumber(kind domain.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		number, err := h.numberingService.NextNumber(c.Request.Context(), kind)
		if err != nil {
			respondServiceError(c, logger.With(slog.String("kind", string(kind))), err, "Failed to determine next number")
			return
		}

		c.JSON(http.StatusOK, dto.NextNumberResponse{Kind: kind, Number: number})
	}
}

// convertQuoteToInvoice godoc
// @Summary Convert a quote to an invoice
// @Description Creates an invoice from a quote, copying its lines and linking the quote to the new invoice. A quote converts at most once.
// @Tags documents
// @Produce  json
// @Param   id path string true "Quote ID"
// @Success 201 {object} dto.DocumentResponse "The created invoice"
// @Failure 404 {object} ErrorResponse "Quote not found"
// @Failure 409 {object} ErrorResponse "Quote empty or already converted"
// @Security BearerAuth
// @Router /quotes/{id}/convert [post]
func (h *documentHandler) convertQuoteToInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("quote_id", quoteID), slog.String("converter_user_id", requestingUserID))

	invoice, err := h.documentService.ConvertQuoteToInvoice(c.Request.Context(), quoteID, requestingUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to convert quote")
		return
	}

	logger.Info("Quote converted to invoice", slog.String("invoice_id", invoice.DocumentID), slog.String("invoice_number", invoice.Number))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(invoice))
}
