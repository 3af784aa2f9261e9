package calculation

import (
	"errors"
	"math"
	"testing"

	"loanflow/internal/domain/errs"
	"loanflow/internal/domain/loan"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		rate    float64
		term    int
		want    float64
		wantErr error
	}{
		{name: "zero rate divides evenly", amount: 1200, rate: 0, term: 12, want: 100.00},
		{name: "standard annuity", amount: 1000, rate: 12, term: 12, want: 88.85},
		{name: "single month", amount: 500, rate: 0, term: 1, want: 500.00},
		{name: "rounding is half-up", amount: 1000, rate: 5, term: 36, want: 29.97},
		{name: "zero term rejected", amount: 1000, rate: 12, term: 0, wantErr: errs.ErrInvalidTerm},
		{name: "negative term rejected", amount: 1000, rate: 12, term: -3, wantErr: errs.ErrInvalidTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthlyPayment(tt.amount, tt.rate, tt.term)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err=%v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Fatalf("payment=%v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthlyPaymentForRow_MissingRate(t *testing.T) {
	row := loan.JoinedRow{Amount: 1000, TermMonths: 12}
	_, err := MonthlyPaymentForRow(row)
	if !errors.Is(err, errs.ErrLoanDataIncomplete) {
		t.Fatalf("want ErrLoanDataIncomplete, got %v", err)
	}
}

func TestMonthlyPaymentForRow(t *testing.T) {
	rate := 12.0
	row := loan.JoinedRow{Amount: 1000, TermMonths: 12, InterestRate: &rate}
	got, err := MonthlyPaymentForRow(row)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !almostEqual(got, 88.85) {
		t.Fatalf("payment=%v, want 88.85", got)
	}
}

func TestIsApprovedRow(t *testing.T) {
	if !IsApprovedRow(loan.JoinedRow{StatusName: "Approved"}) {
		t.Fatal("Approved row should be approved")
	}
	if IsApprovedRow(loan.JoinedRow{StatusName: "Pending review"}) {
		t.Fatal("Pending row must not be approved")
	}
}
