package core

// Totals is the aggregation of a transaction set: per-fund sums in the
// fixed fund order, the grand total across funds, and the electronic
// (GCash) sum kept separate from both.
type Totals struct {
	PerFund    map[Fund]float64
	Total      float64
	Electronic float64
}

// Aggregate sums a set of transactions into fund totals. It is pure and
// order independent: a permuted input yields identical totals. Every fund
// is present in PerFund even when its sum is zero.
func Aggregate(txs []Transaction) Totals {
	t := Totals{PerFund: make(map[Fund]float64, len(Funds))}
	for _, f := range Funds {
		t.PerFund[f] = 0
	}
	for _, tx := range txs {
		for _, f := range Funds {
			v := tx.Amount(f)
			t.PerFund[f] += v
			t.Total += v
		}
		t.Electronic += tx.GCash
	}
	return t
}

// AggregateByType partitions by panel before aggregating, for the
// per-panel subtotal lines of the reconciliation breakdown.
func AggregateByType(txs []Transaction) map[PayerType]Totals {
	byType := map[PayerType][]Transaction{}
	for _, tx := range txs {
		byType[tx.Type] = append(byType[tx.Type], tx)
	}
	out := make(map[PayerType]Totals, len(byType))
	for panel, rows := range byType {
		out[panel] = Aggregate(rows)
	}
	return out
}
