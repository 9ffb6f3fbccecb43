package handlers

import (
	"testing"

	"github.com/shopspring/decimal"

	"example.com/mindfulwealth/backend/internal/repository"
)

func TestSavingsRate(t *testing.T) {
	summary := repository.DashboardSummary{
		TotalSaved: decimal.NewFromInt(50),
		TotalSpent: decimal.NewFromInt(150),
	}

	if got := savingsRate(summary).StringFixed(2); got != "25.00" {
		t.Fatalf("expected 25.00, got %s", got)
	}
}

func TestSavingsRateNoActivity(t *testing.T) {
	if got := savingsRate(repository.DashboardSummary{}); !got.IsZero() {
		t.Fatalf("expected zero rate with no activity, got %s", got)
	}
}

func TestMonthPattern(t *testing.T) {
	valid := []string{"2025-01", "2025-12"}
	invalid := []string{"2025-13", "2025-1", "202501", "jan-2025", "2025-00"}

	for _, month := range valid {
		if !monthPattern.MatchString(month) {
			t.Fatalf("expected %q to be valid", month)
		}
	}
	for _, month := range invalid {
		if monthPattern.MatchString(month) {
			t.Fatalf("expected %q to be invalid", month)
		}
	}
}
