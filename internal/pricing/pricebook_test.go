package pricing

import (
	"testing"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

func TestComputeLineTotal(t *testing.T) {
	t.Run("flat multiplies by qty", func(t *testing.T) {
		item, ok := Lookup(CodeChapelPerHour)
		if !ok {
			t.Fatalf("expected chapel item in price book")
		}
		if got := ComputeLineTotal(item, 4, 0); got != 48000 {
			t.Fatalf("expected 48000, got %d", got)
		}
	})

	t.Run("per_km uses extra km not qty", func(t *testing.T) {
		item, _ := Lookup(CodeTransferPerKm)
		if got := ComputeLineTotal(item, 99, 10); got != 3500 {
			t.Fatalf("expected 3500, got %d", got)
		}
		if got := ComputeLineTotal(item, 99, 0); got != 0 {
			t.Fatalf("expected 0 for zero extra km, got %d", got)
		}
	})

	t.Run("per_50 bills whole blocks", func(t *testing.T) {
		item, _ := Lookup(CodeOrderServicePer50)
		cases := []struct {
			qty  int
			want int64
		}{
			{1, 4500},
			{50, 4500},
			{51, 9000},
			{100, 9000},
			{120, 13500},
		}
		for _, tc := range cases {
			if got := ComputeLineTotal(item, tc.qty, 0); got != tc.want {
				t.Fatalf("qty %d: expected %d, got %d", tc.qty, tc.want, got)
			}
		}
	})

	t.Run("clamps to min and max when set", func(t *testing.T) {
		item := PriceBookItem{Unit: UnitPerGuest, BasePriceCents: 1000, MinCents: 5000, MaxCents: 20000}
		if got := ComputeLineTotal(item, 1, 0); got != 5000 {
			t.Fatalf("expected min clamp 5000, got %d", got)
		}
		if got := ComputeLineTotal(item, 100, 0); got != 20000 {
			t.Fatalf("expected max clamp 20000, got %d", got)
		}
		if got := ComputeLineTotal(item, 10, 0); got != 10000 {
			t.Fatalf("expected 10000 inside clamp range, got %d", got)
		}
	})
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("NOT_A_CODE"); ok {
		t.Fatalf("expected unknown code to miss")
	}
	item, ok := Lookup(CodeProfServiceFee)
	if !ok {
		t.Fatalf("expected professional service fee in price book")
	}
	if item.BasePriceCents != 295000 {
		t.Fatalf("expected 295000, got %d", item.BasePriceCents)
	}
	if item.Category != entities.CategoryService {
		t.Fatalf("expected service category, got %s", item.Category)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	items := Items()
	if len(items) != 20 {
		t.Fatalf("expected 20 catalog items, got %d", len(items))
	}
	items[0].BasePriceCents = 1
	fresh := Items()
	if fresh[0].BasePriceCents == 1 {
		t.Fatalf("mutating the returned slice must not affect the catalog")
	}
}

func TestFormatAUD(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{295000, "$2,950"},
		{1850, "$18.50"},
		{9000, "$90"},
		{148000, "$1,480"},
		{123456789, "$1,234,567.89"},
		{0, "$0"},
		{-1850, "-$18.50"},
	}
	for _, tc := range cases {
		if got := FormatAUD(tc.cents); got != tc.want {
			t.Fatalf("FormatAUD(%d): expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestPriceBookCoversComposerCodes(t *testing.T) {
	for _, code := range ComposerEntryCodes() {
		if _, ok := Lookup(code); !ok {
			t.Fatalf("composer references %s but the price book does not carry it", code)
		}
	}
}
