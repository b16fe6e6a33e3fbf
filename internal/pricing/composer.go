package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

// Package composer: turns case attributes plus optional override constraints
// into the three tiered packages. Totals come from catalog items and
// quantities only; nothing here is randomized or clock-dependent, so the
// same inputs always produce identical packages.

type lineEntry struct {
	code    string
	qty     int
	extraKm int
}

const (
	inclusionServiceCap     = 6
	inclusionMerchandiseCap = 4
	thirdPartyInclusion     = "Third-party fees (as listed)"
)

func buildLineDescription(name string, qty int, unitPriceCents, subtotalCents int64) string {
	return fmt.Sprintf("%s — %d x %s = %s", name, qty, FormatAUD(unitPriceCents), FormatAUD(subtotalCents))
}

func essentialItems(c entities.Case, constraints *entities.PricingConstraints) []lineEntry {
	guests := c.EffectiveAttendeeCount(constraints)

	items := []lineEntry{
		{code: CodeProfServiceFee, qty: 1},
		{code: CodeTransfer25Km, qty: 1},
		{code: CodeMortuaryPerDay, qty: 2},
	}
	if c.IsCremation() {
		items = append(items,
			lineEntry{code: CodeCremationFee, qty: 1},
			lineEntry{code: CodeCoffinBasic, qty: 1},
			lineEntry{code: CodeUrnStandard, qty: 1},
		)
	} else {
		items = append(items,
			lineEntry{code: CodeBurialFee, qty: 1},
			lineEntry{code: CodeCoffinBasic, qty: 1},
		)
	}
	items = append(items,
		lineEntry{code: CodeDeathCertProcessing, qty: 1},
		lineEntry{code: CodeChapelPerHour, qty: 2},
		lineEntry{code: CodeCelebrant, qty: 1},
		// Order-of-service sheets are billed on at least one block even for
		// small gatherings.
		lineEntry{code: CodeOrderServicePer50, qty: maxInt(50, guests)},
	)
	return items
}

func standardItems(c entities.Case, constraints *entities.PricingConstraints) []lineEntry {
	base := filterEntries(essentialItems(c, constraints), CodeCoffinBasic, CodeChapelPerHour)
	guests := c.EffectiveAttendeeCount(constraints)

	extra := []lineEntry{
		{code: CodeHearse, qty: 1},
		{code: CodeChapelPerHour, qty: 4},
		{code: CodeCoffinStandard, qty: 1},
	}
	if c.FlowersRequested(constraints) {
		extra = append(extra, lineEntry{code: CodeFlowersBasic, qty: 1})
	}
	extra = append(extra, lineEntry{code: CodeCateringPerGuest, qty: guests})

	return append(base, extra...)
}

func premiumItems(c entities.Case, constraints *entities.PricingConstraints) []lineEntry {
	base := filterEntries(standardItems(c, constraints),
		CodeCoffinStandard, CodeUrnStandard, CodeChapelPerHour, CodeFlowersBasic)
	guests := c.EffectiveAttendeeCount(constraints)

	extra := []lineEntry{
		{code: CodeFamilyCar, qty: 1},
		{code: CodeChapelPerHour, qty: 6},
		{code: CodeFlowersPremium, qty: 1},
		{code: CodeCoffinPremium, qty: 1},
		{code: CodeCateringPerGuest, qty: guests},
	}
	if c.IsCremation() {
		extra = append(extra, lineEntry{code: CodeUrnPremium, qty: 1})
	}

	return append(base, extra...)
}

func filterEntries(entries []lineEntry, excluded ...string) []lineEntry {
	out := make([]lineEntry, 0, len(entries))
	for _, e := range entries {
		drop := false
		for _, code := range excluded {
			if e.code == code {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, e)
		}
	}
	return out
}

// entriesToLineItems resolves entries through the price book. Unknown codes
// and zero-amount results are skipped rather than erroring; see the
// compliance notes in DESIGN.md for the trade-off.
func entriesToLineItems(entries []lineEntry, extraKm int) []entities.LineItem {
	lines := make([]entities.LineItem, 0, len(entries))
	for _, e := range entries {
		item, ok := Lookup(e.code)
		if !ok {
			continue
		}
		km := e.extraKm
		if km == 0 && item.Unit == UnitPerKm {
			km = extraKm
		}
		subtotal := ComputeLineTotal(item, e.qty, km)
		if subtotal <= 0 {
			continue
		}
		displayQty := e.qty
		switch {
		case item.Unit == UnitPer50:
			displayQty = int(math.Ceil(float64(e.qty) / 50))
		case item.Unit == UnitPerKm && extraKm > 0:
			displayQty = extraKm
		}
		lines = append(lines, entities.LineItem{
			Description: buildLineDescription(item.Name, displayQty, item.BasePriceCents, subtotal),
			AmountCents: subtotal,
			Category:    item.Category,
		})
	}
	return lines
}

// lineItemsToInclusions produces the capped display summary: up to 6 service
// names, up to 4 merchandise names, and one generic third-party line when any
// disbursements exist.
func lineItemsToInclusions(lines []entities.LineItem) []string {
	var services, merchandise []string
	hasCashAdvance := false
	for _, l := range lines {
		name := l.Description
		if i := strings.Index(name, " — "); i >= 0 {
			name = name[:i]
		}
		switch l.Category {
		case entities.CategoryService:
			services = append(services, name)
		case entities.CategoryMerchandise:
			merchandise = append(merchandise, name)
		case entities.CategoryCashAdvance:
			hasCashAdvance = true
		}
	}
	inclusions := make([]string, 0, inclusionServiceCap+inclusionMerchandiseCap+1)
	inclusions = append(inclusions, capSlice(services, inclusionServiceCap)...)
	inclusions = append(inclusions, capSlice(merchandise, inclusionMerchandiseCap)...)
	if hasCashAdvance {
		inclusions = append(inclusions, thirdPartyInclusion)
	}
	return inclusions
}

func capSlice(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// BuildPackages composes the Essential, Standard and Premium packages for a
// case. The three packages form one batch: Standard is the single
// recommended tier and sort order is fixed. IDs and case linkage are left to
// the caller.
func BuildPackages(c entities.Case, constraints *entities.PricingConstraints) []entities.Package {
	guests := c.EffectiveAttendeeCount(constraints)
	const extraKm = 0
	isEstimated := c.ExpectedAttendeesMax == nil || c.BudgetMinCents == nil

	tiers := []struct {
		tier        entities.Tier
		description string
		entries     []lineEntry
		recommended bool
		sortOrder   int
	}{
		{
			tier:        entities.TierEssential,
			description: "Essential professional services and disbursements.",
			entries:     essentialItems(c, constraints),
			sortOrder:   0,
		},
		{
			tier:        entities.TierStandard,
			description: "Traditional service with visitation, standard coffin and catering.",
			entries:     standardItems(c, constraints),
			recommended: true,
			sortOrder:   1,
		},
		{
			tier:        entities.TierPremium,
			description: "Full commemorative suite with premium coffin and family transport.",
			entries:     premiumItems(c, constraints),
			sortOrder:   2,
		},
	}

	packages := make([]entities.Package, 0, len(tiers))
	for _, t := range tiers {
		lines := entriesToLineItems(t.entries, extraKm)
		var total int64
		for _, l := range lines {
			total += l.AmountCents
		}
		description := t.description
		if isEstimated {
			description += " (Estimated)"
		}
		packages = append(packages, entities.Package{
			Tier:        t.tier,
			Name:        string(t.tier),
			Description: description,
			TotalCents:  total,
			Inclusions:  lineItemsToInclusions(lines),
			Assumptions: entities.PackageAssumptions{
				AttendeeCount: guests,
				Estimated:     isEstimated,
			},
			LineItems:     lines,
			IsRecommended: t.recommended,
			SortOrder:     t.sortOrder,
		})
	}
	return packages
}

// ComposerEntryCodes lists every distinct item code any tier recipe can
// reference, for catalog-coverage checks.
func ComposerEntryCodes() []string {
	return []string{
		CodeProfServiceFee, CodeTransfer25Km, CodeMortuaryPerDay,
		CodeCremationFee, CodeBurialFee, CodeCoffinBasic, CodeUrnStandard,
		CodeDeathCertProcessing, CodeChapelPerHour, CodeCelebrant,
		CodeOrderServicePer50, CodeHearse, CodeCoffinStandard,
		CodeFlowersBasic, CodeCateringPerGuest, CodeFamilyCar,
		CodeFlowersPremium, CodeCoffinPremium, CodeUrnPremium,
	}
}
