package messaging

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeInbound_AutomaticVerdict(t *testing.T) {
	body := []byte(`{
		"idLoan": "a1b2c3",
		"userId": "u-1",
		"email": "ana@example.com",
		"status": "Approved",
		"calculationDetails": {"monthlyPayment": 88.85},
		"automaticValidation": true
	}`)

	in, err := DecodeInbound(body)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ev, ok := in.(StatusUpdateEvent)
	if !ok {
		t.Fatalf("want StatusUpdateEvent, got %T", in)
	}
	if ev.LoanID != "a1b2c3" || ev.Status != "Approved" || !ev.AutomaticValidation {
		t.Errorf("unexpected event: %+v", ev)
	}
	if len(ev.CalculationDetails) == 0 {
		t.Errorf("calculationDetails must be carried through raw")
	}
}

func TestDecodeInbound_ManualDecision(t *testing.T) {
	body := []byte(`{"idLoan": "a1b2c3", "status": "Rejected", "automaticValidation": false}`)

	in, err := DecodeInbound(body)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	d, ok := in.(ManualDecision)
	if !ok {
		t.Fatalf("want ManualDecision, got %T", in)
	}
	if d.LoanID != "a1b2c3" || d.Status != "Rejected" {
		t.Errorf("unexpected decision: %+v", d)
	}
}

func TestDecodeInbound_MissingDiscriminator(t *testing.T) {
	body := []byte(`{"idLoan": "a1b2c3", "status": "Approved"}`)

	_, err := DecodeInbound(body)
	if !errors.Is(err, ErrMissingDiscriminator) {
		t.Fatalf("want ErrMissingDiscriminator, got %v", err)
	}
}

func TestDecodeInbound_NotJSON(t *testing.T) {
	if _, err := DecodeInbound([]byte("not json")); err == nil {
		t.Fatal("want decode error for garbage input")
	}
}

func TestCreditAnalysis_WireShape(t *testing.T) {
	msg := CreditAnalysis{
		LoanID: "a1b2",
		UserID: "u-1",
		Email:  "ana@example.com",
		NewLoanDetails: NewLoanDetails{
			Amount: 5000, LoanTerm: 12, InterestRate: 12,
		},
		Status:              "Pending review",
		AutomaticValidation: true,
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"loanId", "userId", "newLoanDetails", "financialProfile", "automaticValidation"} {
		if _, ok := got[key]; !ok {
			t.Errorf("missing wire field %q in %s", key, raw)
		}
	}
}

func TestApprovedEvent_WireShape(t *testing.T) {
	raw, err := json.Marshal(ApprovedEvent{
		LoanID: "a1b2", Status: "Approved", AmountApproved: 15000, ApprovedAt: "2025-03-10T15:04:05Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got["idLoan"] != "a1b2" || got["amountApproved"] != 15000.0 {
		t.Errorf("unexpected wire shape: %s", raw)
	}
}
