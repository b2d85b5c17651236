package core

import (
	"encoding/json"
	"testing"
)

func TestTransactionDecodeLegacyRow(t *testing.T) {
	// rows written by older versions keep typed-in strings and stray keys
	raw := `{"id":"t1","type":"Member","memberId":"m9","tagId":"x","Tithes":"500","Offering":120.5,"Mission":"","CCM":"abc","GCASH":"200"}`

	var tx Transaction
	if err := json.Unmarshal([]byte(raw), &tx); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tx.ID != "t1" || tx.Type != PayerMember || tx.MemberID != "m9" {
		t.Fatalf("identity fields wrong: %+v", tx)
	}
	if tx.Funds[FundTithes] != 500 {
		t.Fatalf("tithes = %v, want 500", tx.Funds[FundTithes])
	}
	if tx.Funds[FundOffering] != 120.5 {
		t.Fatalf("offering = %v, want 120.5", tx.Funds[FundOffering])
	}
	if tx.Funds[FundMission] != 0 || tx.Funds[FundCCM] != 0 {
		t.Fatalf("blank/invalid amounts must decode to zero: %+v", tx.Funds)
	}
	if tx.GCash != 200 {
		t.Fatalf("gcash = %v, want 200", tx.GCash)
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	in := Transaction{
		ID:       "t2",
		Type:     PayerNonMember,
		MemberID: "n4",
		Funds:    map[Fund]float64{FundBuilding: 1000, FundOthers: 25},
		GCash:    300,
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Transaction
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ID != in.ID || out.Type != in.Type || out.MemberID != in.MemberID {
		t.Fatalf("identity changed: %+v", out)
	}
	if out.Funds[FundBuilding] != 1000 || out.Funds[FundOthers] != 25 || out.GCash != 300 {
		t.Fatalf("amounts changed: %+v", out)
	}
}

func TestTransactionGuestRow(t *testing.T) {
	in := Transaction{ID: "g1", Type: PayerGuest, GuestName: "Visitor", Funds: map[Fund]float64{FundOffering: 40}}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var row map[string]any
	if err := json.Unmarshal(data, &row); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if row["guestName"] != "Visitor" {
		t.Fatalf("guestName missing: %v", row)
	}
	if _, ok := row["memberId"]; ok {
		t.Fatalf("guest row must not carry memberId: %v", row)
	}
}

func TestCashCountDecodeStrings(t *testing.T) {
	raw := `{"1000":"2","500":1,"20":"","x":"3"}`
	var c CashCount
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c[1000] != 2 || c[500] != 1 {
		t.Fatalf("counts wrong: %+v", c)
	}
	if c[20] != 0 {
		t.Fatalf("blank count must be zero: %+v", c)
	}
	if c.Total() != 2500 {
		t.Fatalf("total = %d, want 2500", c.Total())
	}
}

func TestFormatName(t *testing.T) {
	cases := []struct {
		last, first, mi string
		want            string
	}{
		{"Doe", "John", "A", "Doe, John A."},
		{"Doe", "John", "", "Doe, John"},
		{" Cruz ", " Maria ", " B ", "Cruz, Maria B."},
	}
	for _, tc := range cases {
		if got := FormatName(tc.last, tc.first, tc.mi); got != tc.want {
			t.Fatalf("FormatName(%q,%q,%q) = %q, want %q", tc.last, tc.first, tc.mi, got, tc.want)
		}
	}
}
