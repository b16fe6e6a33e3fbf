package entities

// Tier names one of the three service bundles a composition run produces.

type Tier string

const (
	TierEssential Tier = "Essential"
	TierStandard  Tier = "Standard"
	TierPremium   Tier = "Premium"
)

// ItemCategory classifies a price-book item and its derived line items.
// Cash advances are third-party fees passed through without markup.
type ItemCategory string

const (
	CategoryService     ItemCategory = "service"
	CategoryMerchandise ItemCategory = "merchandise"
	CategoryCashAdvance ItemCategory = "cashAdvance"
)

// LineItem is one priced entry within a package. The description carries the
// quantity/unit-price arithmetic that produced the amount, so a reader can
// reconstruct the total from the breakdown alone.
type LineItem struct {
	Description string       `json:"description"`
	AmountCents int64        `json:"amount_cents"`
	Category    ItemCategory `json:"category"`
}

// PackageAssumptions records the inputs a composition run assumed rather
// than received. Estimated is true when attendee count or budget bounds were
// defaulted.
type PackageAssumptions struct {
	AttendeeCount int  `json:"attendee_count"`
	Estimated     bool `json:"estimated"`
}

// Package is one tier of a generated quote, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: case_id, SK: sort_order
//
// Lifecycle: exactly three packages (Essential/Standard/Premium) are created
// by one composition call and replace any prior set for the case as a whole;
// individual packages are never updated in place. TotalCents is always the
// sum of the line item amounts.
type Package struct {
	ID            string             `json:"id"`
	CaseID        string             `json:"case_id"`
	Tier          Tier               `json:"tier"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	TotalCents    int64              `json:"total_cents"`
	Inclusions    []string           `json:"inclusions"`
	Assumptions   PackageAssumptions `json:"assumptions"`
	LineItems     []LineItem         `json:"line_items"`
	IsRecommended bool               `json:"is_recommended"`
	SortOrder     int                `json:"sort_order"`
}
