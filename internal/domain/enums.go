package domain

// InvoiceStatus represents the lifecycle of an invoice.
type InvoiceStatus string

const (
	StatusDraft  InvoiceStatus = "Draft"
	StatusIssued InvoiceStatus = "Issued"
	StatusPaid   InvoiceStatus = "Paid"
)

// ValidInvoiceStatus reports whether s is a known invoice status.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case StatusDraft, StatusIssued, StatusPaid:
		return true
	}
	return false
}

// TaxType selects the income-tax regime.
type TaxType string

const (
	// TaxTypeLumpSum is ryczałt: tax on gross income, expenses not deductible.
	TaxTypeLumpSum TaxType = "lump-sum"
	// TaxTypeLinear is liniowy: tax on income minus expenses.
	TaxTypeLinear TaxType = "linear"
)

// HealthTier selects the fixed health-insurance amount by annual income band.
type HealthTier string

const (
	HealthTierLow    HealthTier = "low"
	HealthTierMedium HealthTier = "medium"
	HealthTierHigh   HealthTier = "high"
)
