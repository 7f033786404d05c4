package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanyProfile is the single company record, including the effective
// tax/contribution rate configuration. Nil rate fields mean "use the
// statutory default"; an explicit zero is a valid override.
type CompanyProfile struct {
	ID                int64  `db:"id" json:"id"`
	CompanyName       string `db:"company_name" json:"company_name"`
	NIP               string `db:"nip" json:"nip"`
	StreetAddress     string `db:"street_address" json:"street_address"`
	City              string `db:"city" json:"city"`
	PostalCode        string `db:"postal_code" json:"postal_code"`
	BankAccountNumber string `db:"bank_account_number" json:"bank_account_number"`

	DefaultVATRate *float64 `db:"default_vat_rate" json:"default_vat_rate"`
	PITTaxType     *TaxType `db:"pit_tax_type" json:"pit_tax_type"`
	PITRate        *float64 `db:"pit_rate" json:"pit_rate"`

	ZUSBaseAmount            decimal.NullDecimal `db:"zus_base_amount" json:"zus_base_amount"`
	ZUSRetirementRate        *float64            `db:"zus_retirement_rate" json:"zus_retirement_rate"`
	ZUSDisabilityRate        *float64            `db:"zus_disability_rate" json:"zus_disability_rate"`
	ZUSAccidentRate          *float64            `db:"zus_accident_rate" json:"zus_accident_rate"`
	ZUSSicknessRate          *float64            `db:"zus_sickness_rate" json:"zus_sickness_rate"`
	ZUSSicknessIncluded      *bool               `db:"zus_sickness_included" json:"zus_sickness_included"`
	ZUSLaborFundRate         *float64            `db:"zus_labor_fund_rate" json:"zus_labor_fund_rate"`
	ZUSFEPRate               *float64            `db:"zus_fep_rate" json:"zus_fep_rate"`
	ZUSHealthInsuranceAmount decimal.NullDecimal `db:"zus_health_insurance_amount" json:"zus_health_insurance_amount"`
	ZUSHealthInsuranceTier   *HealthTier         `db:"zus_health_insurance_tier" json:"zus_health_insurance_tier"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Client is a counterparty that invoices are issued to.
type Client struct {
	ID            int64     `db:"id" json:"id"`
	ClientName    string    `db:"client_name" json:"client_name"`
	NIP           string    `db:"nip" json:"nip"`
	StreetAddress string    `db:"street_address" json:"street_address"`
	City          string    `db:"city" json:"city"`
	PostalCode    string    `db:"postal_code" json:"postal_code"`
	Email         string    `db:"email" json:"email"`
	ContactPerson string    `db:"contact_person" json:"contact_person"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Invoice is a sales invoice. Totals are 2-decimal-rounded sums of its
// items; the record is immutable after creation except for status changes.
type Invoice struct {
	ID            int64           `db:"id" json:"id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	ClientID      int64           `db:"client_id" json:"client_id"`
	ClientName    string          `db:"client_name" json:"client_name,omitempty"`
	IssueDate     time.Time       `db:"issue_date" json:"issue_date"`
	DueDate       *time.Time      `db:"due_date" json:"due_date,omitempty"`
	PaymentTerms  string          `db:"payment_terms" json:"payment_terms,omitempty"`
	TotalNet      decimal.Decimal `db:"total_net" json:"total_net"`
	TotalVAT      decimal.Decimal `db:"total_vat" json:"total_vat"`
	TotalGross    decimal.Decimal `db:"total_gross" json:"total_gross"`
	Status        InvoiceStatus   `db:"status" json:"status"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// InvoiceItem is a single invoice line. Per-line derived amounts keep full
// precision; rounding happens only at the invoice-total level.
type InvoiceItem struct {
	ID           int64           `db:"id" json:"id"`
	InvoiceID    int64           `db:"invoice_id" json:"invoice_id"`
	Description  string          `db:"description" json:"description"`
	Quantity     decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPriceNet decimal.Decimal `db:"unit_price_net" json:"unit_price_net"`
	VATRate      decimal.Decimal `db:"vat_rate" json:"vat_rate"`
	TotalNet     decimal.Decimal `db:"total_net" json:"total_net"`
	TotalVAT     decimal.Decimal `db:"total_vat" json:"total_vat"`
	TotalGross   decimal.Decimal `db:"total_gross" json:"total_gross"`
}

// Expense is a purchase entry; its VAT paid is deductible in the period it
// falls in.
type Expense struct {
	ID            int64           `db:"id" json:"id"`
	ExpenseDate   time.Time       `db:"expense_date" json:"expense_date"`
	VendorName    string          `db:"vendor_name" json:"vendor_name"`
	Description   string          `db:"description" json:"description"`
	AmountNet     decimal.Decimal `db:"amount_net" json:"amount_net"`
	VATAmountPaid decimal.Decimal `db:"vat_amount_paid" json:"vat_amount_paid"`
	AmountGross   decimal.Decimal `db:"amount_gross" json:"amount_gross"`
	Category      string          `db:"category" json:"category"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// VATBreakdown nets VAT collected on sales against VAT paid on purchases.
// VATDue may be negative (refund position).
type VATBreakdown struct {
	VATCollected decimal.Decimal `json:"vat_collected"`
	VATPaid      decimal.Decimal `json:"vat_paid"`
	VATDue       decimal.Decimal `json:"vat_due"`
}

// PITBreakdown is the income-tax calculation for a period.
type PITBreakdown struct {
	Income        decimal.Decimal `json:"income"`
	Expenses      decimal.Decimal `json:"expenses"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	TaxType       TaxType         `json:"tax_type"`
	IncomeTaxRate float64         `json:"income_tax_rate"`
	IncomeTax     decimal.Decimal `json:"income_tax"`
}

// ZUSBreakdown is the monthly social- and health-insurance contribution set.
type ZUSBreakdown struct {
	Retirement           decimal.Decimal `json:"retirement"`
	Disability           decimal.Decimal `json:"disability"`
	Accident             decimal.Decimal `json:"accident"`
	Sickness             decimal.Decimal `json:"sickness"`
	LaborFund            decimal.Decimal `json:"labor_fund"`
	FEP                  decimal.Decimal `json:"fep"`
	HealthInsurance      decimal.Decimal `json:"health_insurance"`
	SocialInsuranceTotal decimal.Decimal `json:"social_insurance_total"`
	Total                decimal.Decimal `json:"total"`
}

// FinancialSummary is the composed period report. It is recomputed on every
// request and never persisted.
type FinancialSummary struct {
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	VAT            VATBreakdown    `json:"vat"`
	PIT            PITBreakdown    `json:"pit"`
	ZUS            ZUSBreakdown    `json:"zus"`
	TotalTaxBurden decimal.Decimal `json:"total_tax_burden"`
}

// RegistryEntry is a company record returned by the national registry lookup.
type RegistryEntry struct {
	Name      string `json:"name"`
	NIP       string `json:"nip"`
	REGON     string `json:"regon"`
	Address   string `json:"address"`
	VATStatus string `json:"vat_status"`
}
