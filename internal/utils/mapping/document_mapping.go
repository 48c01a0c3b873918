package mapping

import (
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:  d.DocumentID,
		Kind:        models.DocumentKind(d.Kind),
		Number:      d.Number,
		Date:        d.Date,
		DueDate:     d.DueDate,
		PartyID:     d.PartyID,
		Subtotal:    d.Subtotal,
		Tax:         d.Tax,
		Total:       d.Total,
		Status:      models.DocumentStatus(d.Status),
		Terms:       d.Terms,
		Notes:       d.Notes,
		InvoiceID:   d.InvoiceID,
		POType:      string(d.POType),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:  m.DocumentID,
		Kind:        domain.DocumentKind(m.Kind),
		Number:      m.Number,
		Date:        m.Date,
		DueDate:     m.DueDate,
		PartyID:     m.PartyID,
		Subtotal:    m.Subtotal,
		Tax:         m.Tax,
		Total:       m.Total,
		Status:      domain.DocumentStatus(m.Status),
		Terms:       m.Terms,
		Notes:       m.Notes,
		InvoiceID:   m.InvoiceID,
		POType:      domain.POType(m.POType),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLineItem converts a domain LineItem to a model LineItem
func ToModelLineItem(d domain.LineItem, position int) models.LineItem {
	return models.LineItem{
		LineItemID:  d.LineItemID,
		DocumentID:  d.DocumentID,
		ProductID:   d.ProductID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		Amount:      d.Amount,
		Unit:        d.Unit,
		Position:    position,
	}
}

// ToDomainLineItem converts a model LineItem to a domain LineItem
func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		LineItemID:  m.LineItemID,
		DocumentID:  m.DocumentID,
		ProductID:   m.ProductID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Amount:      m.Amount,
		Unit:        m.Unit,
	}
}

// ToDomainLineItemSlice converts a slice of model LineItems to domain LineItems
func ToDomainLineItemSlice(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
