package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	domain "loanflow/internal/domain/notify"
)

func TestLogNotifier_WritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := n.Notify(context.Background(), domain.Event{
		ID: "e1", Type: domain.TypeLoanDisbursed, LoanID: 9, CustomerID: 2, ActorID: 4,
		Amount: decimal.RequireFromString("250000"),
	})
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log line not JSON: %v (%s)", err, buf.String())
	}
	if rec["type"] != string(domain.TypeLoanDisbursed) || rec["loan_id"] != float64(9) || rec["amount"] != "250000.00" {
		t.Fatalf("record: %v", rec)
	}
}
