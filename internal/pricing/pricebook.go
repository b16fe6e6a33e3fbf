package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

// PriceUnit is the billing unit of a price-book item.

type PriceUnit string

const (
	UnitFlat     PriceUnit = "flat"
	UnitPerKm    PriceUnit = "per_km"
	UnitPerHour  PriceUnit = "per_hour"
	UnitPerGuest PriceUnit = "per_guest"
	UnitPerDay   PriceUnit = "per_day"
	UnitPer50    PriceUnit = "per_50"
)

// PriceBookItem is one priceable catalog entry. Prices are integer cents.
// MinCents/MaxCents, when non-zero, clamp the computed line total.
type PriceBookItem struct {
	Code           string
	Name           string
	Description    string
	Unit           PriceUnit
	BasePriceCents int64
	Category       entities.ItemCategory
	MinCents       int64
	MaxCents       int64
}

// Item codes referenced by the package composer.
const (
	CodeProfServiceFee      = "PROF_SERVICE_FEE"
	CodeTransfer25Km        = "TRANSFER_25KM"
	CodeTransferPerKm       = "TRANSFER_PER_KM"
	CodeMortuaryPerDay      = "MORTUARY_PER_DAY"
	CodeChapelPerHour       = "CHAPEL_PER_HOUR"
	CodeCelebrant           = "CELEBRANT"
	CodeHearse              = "HEARSE"
	CodeFamilyCar           = "FAMILY_CAR"
	CodeOrderServicePer50   = "ORDER_SERVICE_PER_50"
	CodeCremationFee        = "CREMATION_FEE"
	CodeBurialFee           = "BURIAL_FEE"
	CodeDeathCertProcessing = "DEATH_CERT_PROCESSING"
	CodeCoffinBasic         = "COFFIN_BASIC"
	CodeCoffinStandard      = "COFFIN_STANDARD"
	CodeCoffinPremium       = "COFFIN_PREMIUM"
	CodeUrnStandard         = "URN_STANDARD"
	CodeUrnPremium          = "URN_PREMIUM"
	CodeFlowersBasic        = "FLOWERS_BASIC"
	CodeFlowersPremium      = "FLOWERS_PREMIUM"
	CodeCateringPerGuest    = "CATERING_PER_GUEST"
)

// vicPriceBook is the AU/VIC-style funeral catalog. Single source of truth
// for package building and quote display; loaded once, never mutated.
var vicPriceBook = []PriceBookItem{
	// Professional / service
	{Code: CodeProfServiceFee, Name: "Professional service fee", Description: "Funeral director and staff", Unit: UnitFlat, BasePriceCents: 295000, Category: entities.CategoryService},
	{Code: CodeTransfer25Km, Name: "Transfer of deceased (within 25km)", Description: "First 25km included", Unit: UnitFlat, BasePriceCents: 49500, Category: entities.CategoryService},
	{Code: CodeTransferPerKm, Name: "Transfer (per km beyond 25km)", Description: "Additional distance", Unit: UnitPerKm, BasePriceCents: 350, Category: entities.CategoryService},
	{Code: CodeMortuaryPerDay, Name: "Mortuary care (per day)", Description: "Care and preparation", Unit: UnitPerDay, BasePriceCents: 8500, Category: entities.CategoryService},
	{Code: CodeChapelPerHour, Name: "Viewing / chapel hire (per hour)", Description: "Chapel or viewing room", Unit: UnitPerHour, BasePriceCents: 12000, Category: entities.CategoryService},
	{Code: CodeCelebrant, Name: "Celebrant / officiant", Description: "Service officiant", Unit: UnitFlat, BasePriceCents: 45000, Category: entities.CategoryService},
	{Code: CodeHearse, Name: "Hearse", Description: "Funeral vehicle", Unit: UnitFlat, BasePriceCents: 49500, Category: entities.CategoryService},
	{Code: CodeFamilyCar, Name: "Family car / limo", Description: "One vehicle", Unit: UnitFlat, BasePriceCents: 35000, Category: entities.CategoryService},
	{Code: CodeOrderServicePer50, Name: "Printed service sheets (per 50)", Description: "Order of service", Unit: UnitPer50, BasePriceCents: 4500, Category: entities.CategoryService},
	// Disbursements (third-party)
	{Code: CodeCremationFee, Name: "Cremation fee (third-party)", Description: "Crematorium fee", Unit: UnitFlat, BasePriceCents: 110000, Category: entities.CategoryCashAdvance},
	{Code: CodeBurialFee, Name: "Burial fees (cemetery dependent)", Description: "Estimated; varies by cemetery", Unit: UnitFlat, BasePriceCents: 250000, Category: entities.CategoryCashAdvance},
	{Code: CodeDeathCertProcessing, Name: "Death certificate processing", Description: "Registry and copies", Unit: UnitFlat, BasePriceCents: 8500, Category: entities.CategoryCashAdvance},
	// Merchandise
	{Code: CodeCoffinBasic, Name: "Coffin (basic)", Description: "Veneer / particleboard", Unit: UnitFlat, BasePriceCents: 69500, Category: entities.CategoryMerchandise},
	{Code: CodeCoffinStandard, Name: "Coffin (standard)", Description: "20-gauge steel", Unit: UnitFlat, BasePriceCents: 149500, Category: entities.CategoryMerchandise},
	{Code: CodeCoffinPremium, Name: "Coffin (premium)", Description: "Solid timber or premium", Unit: UnitFlat, BasePriceCents: 350000, Category: entities.CategoryMerchandise},
	{Code: CodeUrnStandard, Name: "Urn (standard)", Description: "Cremation urn", Unit: UnitFlat, BasePriceCents: 29500, Category: entities.CategoryMerchandise},
	{Code: CodeUrnPremium, Name: "Urn (premium)", Description: "Premium urn", Unit: UnitFlat, BasePriceCents: 59500, Category: entities.CategoryMerchandise},
	{Code: CodeFlowersBasic, Name: "Flowers (basic tribute)", Description: "Single tribute", Unit: UnitFlat, BasePriceCents: 19500, Category: entities.CategoryMerchandise},
	{Code: CodeFlowersPremium, Name: "Flowers (premium)", Description: "Larger tribute or casket spray", Unit: UnitFlat, BasePriceCents: 45000, Category: entities.CategoryMerchandise},
	{Code: CodeCateringPerGuest, Name: "Catering (per guest)", Description: "Wake / refreshments", Unit: UnitPerGuest, BasePriceCents: 1850, Category: entities.CategoryMerchandise},
}

var priceBookByCode = func() map[string]PriceBookItem {
	m := make(map[string]PriceBookItem, len(vicPriceBook))
	for _, it := range vicPriceBook {
		m[it.Code] = it
	}
	return m
}()

// Lookup resolves a price-book item by code.
func Lookup(code string) (PriceBookItem, bool) {
	it, ok := priceBookByCode[code]
	return it, ok
}

// Items returns the full catalog in display order.
func Items() []PriceBookItem {
	out := make([]PriceBookItem, len(vicPriceBook))
	copy(out, vicPriceBook)
	return out
}

// ComputeLineTotal computes the billed cents for an item and quantity.
// per_km billing ignores qty and uses extraKm; per_50 bills in blocks of 50
// regardless of partial occupancy. The result is clamped to the item's
// min/max when set.
func ComputeLineTotal(item PriceBookItem, qty int, extraKm int) int64 {
	var total int64
	switch item.Unit {
	case UnitPerKm:
		total = item.BasePriceCents * int64(extraKm)
	case UnitPer50:
		blocks := int64(math.Ceil(float64(qty) / 50))
		total = item.BasePriceCents * blocks
	default:
		total = item.BasePriceCents * int64(qty)
	}
	if item.MinCents > 0 && total < item.MinCents {
		total = item.MinCents
	}
	if item.MaxCents > 0 && total > item.MaxCents {
		total = item.MaxCents
	}
	return total
}

// FormatAUD renders cents as an en-AU currency string, dropping the cents
// part when it is zero ("$2,950", "$18.50").
func FormatAUD(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	dollars := cents / 100
	rem := cents % 100

	s := fmt.Sprintf("%d", dollars)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "$" + b.String()
	if rem != 0 {
		out = fmt.Sprintf("%s.%02d", out, rem)
	}
	if neg {
		out = "-" + out
	}
	return out
}
