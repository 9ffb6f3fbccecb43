package engine

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProjectKnownValues(t *testing.T) {
	amount := decimal.NewFromInt(100)

	if got := Project(amount, 1).StringFixed(2); got != "108.00" {
		t.Fatalf("1 year: expected 108.00, got %s", got)
	}
	if got := Project(amount, 5).StringFixed(2); got != "146.93" {
		t.Fatalf("5 years: expected 146.93, got %s", got)
	}
}

func TestProjectZeroYears(t *testing.T) {
	amount := decimal.RequireFromString("49.99")
	if got := Project(amount, 0).StringFixed(2); got != "49.99" {
		t.Fatalf("expected identity at 0 years, got %s", got)
	}
}

func TestProjectMonotonic(t *testing.T) {
	amount := decimal.NewFromInt(250)
	previous := Project(amount, 0)
	for years := 1; years <= 10; years++ {
		current := Project(amount, years)
		if !current.GreaterThan(previous) {
			t.Fatalf("projection not monotonic at year %d: %s then %s", years, previous, current)
		}
		previous = current
	}
}

func TestProjectDeterministic(t *testing.T) {
	amount := decimal.RequireFromString("73.50")
	first := Project(amount, 5)
	second := Project(amount, 5)
	if !first.Equal(second) {
		t.Fatalf("expected identical projections, got %s and %s", first, second)
	}
}
