package core

const (
	StatusBalanced    ReconcileStatus = "Balanced"
	StatusNotBalanced ReconcileStatus = "Not Balanced"
)

type (
	// ReconcileStatus is the verdict of comparing counted cash against
	// the expectation derived from recorded giving.
	ReconcileStatus string

	// Reconciliation is a snapshot verdict. It carries the signed
	// discrepancy so callers can show over/short, not just a boolean.
	Reconciliation struct {
		ExpectedCash float64
		ActualCash   float64
		Discrepancy  float64
		Status       ReconcileStatus
	}
)

// Balanced reports whether counted cash matched expectation exactly.
func (r Reconciliation) Balanced() bool {
	return r.Status == StatusBalanced
}

// Reconcile derives the expected physical cash from the recorded grand
// total minus electronic payments and compares it to the denomination
// count. Expected cash floors at zero when electronic payments exceed
// recorded giving. The computation is stateless and is re-derived on
// every change rather than incrementally updated.
func Reconcile(grandTotal, electronic float64, counts CashCount) Reconciliation {
	expected := grandTotal - electronic
	if expected < 0 {
		expected = 0
	}
	actual := float64(counts.Total())
	r := Reconciliation{
		ExpectedCash: expected,
		ActualCash:   actual,
		Discrepancy:  actual - expected,
		Status:       StatusNotBalanced,
	}
	if r.Discrepancy == 0 {
		r.Status = StatusBalanced
	}
	return r
}
