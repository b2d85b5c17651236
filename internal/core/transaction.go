package core

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	FundTithes   Fund = "Tithes"
	FundOffering Fund = "Offering"
	FundMission  Fund = "Mission"
	FundBuilding Fund = "Building"
	FundCCM      Fund = "CCM"
	FundOthers   Fund = "Others"
)

// Fund is one of the six named giving categories.
type Fund string

// Funds is the fixed column order. Aggregation and reporting iterate this
// slice so totals come out deterministic.
var Funds = []Fund{FundTithes, FundOffering, FundMission, FundBuilding, FundCCM, FundOthers}

// Transaction is one giving entry in a service session. Member and
// Non-Member rows reference a registry member; Guest rows carry a free
// text name instead. GCash is an electronic payment and never counts
// toward fund totals.
type Transaction struct {
	ID        string
	Type      PayerType
	MemberID  string
	GuestName string
	Funds     map[Fund]float64
	GCash     float64
}

// Amount returns the fund value for f, zero when absent.
func (t Transaction) Amount(f Fund) float64 {
	return t.Funds[f]
}

// rowMetaFields are persisted keys that are never fund amounts, even if a
// fund were ever renamed to collide with one of them.
var rowMetaFields = map[string]bool{
	"id":        true,
	"memberId":  true,
	"tagId":     true,
	"guestName": true,
	"type":      true,
	"GCASH":     true,
}

// MarshalJSON writes the flat row shape used by persisted records: fund
// amounts sit at the top level next to the identity fields.
func (t Transaction) MarshalJSON() ([]byte, error) {
	row := make(map[string]any, len(t.Funds)+5)
	row["id"] = t.ID
	row["type"] = t.Type
	if t.Type == PayerGuest {
		row["guestName"] = t.GuestName
	} else {
		row["memberId"] = t.MemberID
	}
	for _, f := range Funds {
		if v, ok := t.Funds[f]; ok && v != 0 {
			row[string(f)] = v
		}
	}
	if t.GCash != 0 {
		row["GCASH"] = t.GCash
	}
	return json.Marshal(row)
}

// UnmarshalJSON accepts both current records and rows written by earlier
// versions of the tool, where amounts may be numeric strings and stray
// keys (tagId and the like) can appear. Blank or unparseable amounts
// decode to zero; keys outside the fund set are dropped.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var row map[string]any
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	t.ID = asString(row["id"])
	t.Type = PayerType(asString(row["type"]))
	t.MemberID = asString(row["memberId"])
	t.GuestName = asString(row["guestName"])
	t.GCash = asNumber(row["GCASH"])
	t.Funds = make(map[Fund]float64, len(Funds))
	for _, f := range Funds {
		if rowMetaFields[string(f)] {
			continue
		}
		if raw, ok := row[string(f)]; ok {
			if v := asNumber(raw); v != 0 {
				t.Funds[f] = v
			}
		}
	}
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
