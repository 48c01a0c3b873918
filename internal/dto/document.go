package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
)

// LineItemInput is one editable row of a document form. Quantity and
// unitPrice are pointers so an untouched field can fall back to the
// referenced product's defaults; a row with every field blank is skipped.
type LineItemInput struct {
	Description string           `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	Unit        string           `json:"unit"`
	ProductID   *string          `json:"productID"`
}

// CreateDocumentRequest defines the data needed to create a document. The
// kind comes from the route, never the body. Number is optional; when blank
// the next number in the kind's sequence is assigned at commit.
type CreateDocumentRequest struct {
	Number  string          `json:"number"`
	Date    time.Time       `json:"date" binding:"required"`
	DueDate *time.Time      `json:"dueDate"`
	PartyID *string         `json:"partyID"`
	Tax     decimal.Decimal `json:"tax"`
	Terms   string          `json:"terms"`
	Notes   string          `json:"notes"`
	POType  domain.POType   `json:"poType" binding:"omitempty,oneof=vendor customer"`
	Items   []LineItemInput `json:"items" binding:"required"`
}

// UpdateDocumentRequest defines the data allowed when editing a document.
// Header fields use pointers to distinguish omitted from zero-value; a
// non-nil Items replaces the full item set.
type UpdateDocumentRequest struct {
	Date    *time.Time       `json:"date"`
	DueDate *time.Time       `json:"dueDate"`
	PartyID *string          `json:"partyID"`
	Tax     *decimal.Decimal `json:"tax"`
	Terms   *string          `json:"terms"`
	Notes   *string          `json:"notes"`
	Items   []LineItemInput  `json:"items"`
}

// UpdateDocumentStatusRequest sets an operator-driven status on a quote or
// purchase order.
type UpdateDocumentStatusRequest struct {
	Status domain.DocumentStatus `json:"status" binding:"required"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	LineItemID  string          `json:"lineItemID"`
	ProductID   *string         `json:"productID,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
	Unit        string          `json:"unit,omitempty"`
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	DocumentID string                `json:"documentID"`
	Kind       domain.DocumentKind   `json:"kind"`
	Number     string                `json:"number"`
	Date       time.Time             `json:"date"`
	DueDate    *time.Time            `json:"dueDate,omitempty"`
	PartyID    *string               `json:"partyID,omitempty"`
	Subtotal   decimal.Decimal       `json:"subtotal"`
	Tax        decimal.Decimal       `json:"tax"`
	Total      decimal.Decimal       `json:"total"`
	Balance    *decimal.Decimal      `json:"balance,omitempty"`
	Status     domain.DocumentStatus `json:"status"`
	Terms      string                `json:"terms,omitempty"`
	Notes      string                `json:"notes,omitempty"`
	InvoiceID  *string               `json:"invoiceID,omitempty"`
	POType     domain.POType         `json:"poType,omitempty"`
	Items      []LineItemResponse    `json:"items,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
	CreatedBy  string                `json:"createdBy"`
}

// ListDocumentsParams defines query parameters for listing documents.
type ListDocumentsParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// ListDocumentsResponse wraps a page of documents with the cursor for the
// next page.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken string             `json:"nextToken,omitempty"`
}

// NextNumberResponse carries the advisory next number for a document kind.
// The value is not reserved; the sequence only advances at commit.
type NextNumberResponse struct {
	Kind   domain.DocumentKind `json:"kind"`
	Number string              `json:"number"`
}

// ToLineItemResponse converts a domain.LineItem to LineItemResponse DTO.
func ToLineItemResponse(item *domain.LineItem) LineItemResponse {
	return LineItemResponse{
		LineItemID:  item.LineItemID,
		ProductID:   item.ProductID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Amount:      item.Amount,
		Unit:        item.Unit,
	}
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO.
func ToDocumentResponse(doc *domain.Document) DocumentResponse {
	resp := DocumentResponse{
		DocumentID: doc.DocumentID,
		Kind:       doc.Kind,
		Number:     doc.Number,
		Date:       doc.Date,
		DueDate:    doc.DueDate,
		PartyID:    doc.PartyID,
		Subtotal:   doc.Subtotal,
		Tax:        doc.Tax,
		Total:      doc.Total,
		Status:     doc.Status,
		Terms:      doc.Terms,
		Notes:      doc.Notes,
		InvoiceID:  doc.InvoiceID,
		POType:     doc.POType,
		CreatedAt:  doc.CreatedAt,
		CreatedBy:  doc.CreatedBy,
	}
	if len(doc.Items) > 0 {
		resp.Items = make([]LineItemResponse, len(doc.Items))
		for i, item := range doc.Items {
			resp.Items[i] = ToLineItemResponse(&item)
		}
	}
	return resp
}

// ToListDocumentsResponse converts a page of domain documents to the list DTO.
func ToListDocumentsResponse(docs []domain.Document, nextToken string) ListDocumentsResponse {
	responses := make([]DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = ToDocumentResponse(&doc)
	}
	return ListDocumentsResponse{
		Documents: responses,
		NextToken: nextToken,
	}
}
