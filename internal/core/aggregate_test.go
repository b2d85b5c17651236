package core

import (
	"math/rand"
	"testing"
)

func sampleTransactions() []Transaction {
	return []Transaction{
		{ID: "a", Type: PayerMember, MemberID: "m1", Funds: map[Fund]float64{FundTithes: 500, FundOffering: 120.50}},
		{ID: "b", Type: PayerMember, MemberID: "m2", Funds: map[Fund]float64{FundMission: 300}, GCash: 200},
		{ID: "c", Type: PayerNonMember, MemberID: "n1", Funds: map[Fund]float64{FundTithes: 75, FundBuilding: 1000}},
		{ID: "d", Type: PayerGuest, GuestName: "Visitor", Funds: map[Fund]float64{FundOthers: 50}, GCash: 50},
	}
}

func TestAggregateTotals(t *testing.T) {
	got := Aggregate(sampleTransactions())

	if got.Total != 2045.50 {
		t.Fatalf("total = %v, want 2045.50", got.Total)
	}
	if got.Electronic != 250 {
		t.Fatalf("electronic = %v, want 250", got.Electronic)
	}
	if got.PerFund[FundTithes] != 575 {
		t.Fatalf("tithes = %v, want 575", got.PerFund[FundTithes])
	}
	if got.PerFund[FundCCM] != 0 {
		t.Fatalf("ccm = %v, want 0", got.PerFund[FundCCM])
	}
	// every fund present even when zero
	for _, f := range Funds {
		if _, ok := got.PerFund[f]; !ok {
			t.Fatalf("fund %s missing from totals", f)
		}
	}
}

func TestAggregatePermutationInvariant(t *testing.T) {
	base := sampleTransactions()
	want := Aggregate(base)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]Transaction(nil), base...)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := Aggregate(shuffled)
		if got.Total != want.Total || got.Electronic != want.Electronic {
			t.Fatalf("permutation %d changed totals: got %+v, want %+v", i, got, want)
		}
		for _, f := range Funds {
			if got.PerFund[f] != want.PerFund[f] {
				t.Fatalf("permutation %d changed %s: got %v, want %v", i, f, got.PerFund[f], want.PerFund[f])
			}
		}
	}
}

func TestAggregateDecomposition(t *testing.T) {
	got := Aggregate(sampleTransactions())
	sum := 0.0
	for _, f := range Funds {
		sum += got.PerFund[f]
	}
	if sum != got.Total {
		t.Fatalf("per-fund sum %v != total %v", sum, got.Total)
	}
}

func TestAggregateExcludesElectronicFromFunds(t *testing.T) {
	txs := []Transaction{{ID: "x", Type: PayerMember, GCash: 900}}
	got := Aggregate(txs)
	if got.Total != 0 {
		t.Fatalf("GCASH leaked into fund total: %v", got.Total)
	}
	if got.Electronic != 900 {
		t.Fatalf("electronic = %v, want 900", got.Electronic)
	}
}

func TestAggregateByType(t *testing.T) {
	got := AggregateByType(sampleTransactions())
	if got[PayerMember].Total != 920.50 {
		t.Fatalf("member total = %v, want 920.50", got[PayerMember].Total)
	}
	if got[PayerNonMember].Total != 1075 {
		t.Fatalf("non-member total = %v, want 1075", got[PayerNonMember].Total)
	}
	if got[PayerGuest].Total != 50 {
		t.Fatalf("guest total = %v, want 50", got[PayerGuest].Total)
	}
}
