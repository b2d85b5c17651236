// Package session covers one giving-collection event: the editable
// ledger of transactions, the denomination count, and persistence of the
// whole record under its (date, service type) key.
package session

import (
	"encoding/json"
	"fmt"
	"strings"

	"offertory/internal/core"
)

// ServiceTypes in the order the schedule lists them.
var ServiceTypes = []string{
	"Sunday Morning",
	"Sunday Afternoon",
	"Prayer Meeting (Wed)",
}

// Record is one persisted giving session.
type Record struct {
	Date         string
	ServiceType  string
	Transactions []core.Transaction
	CashCounts   core.CashCount
}

// payload is the stored value shape. Date and service type live in the
// key, not the value.
type payload struct {
	Transactions []core.Transaction `json:"transactions"`
	CashCounts   core.CashCount     `json:"cashCounts"`
}

// decodePayload normalizes every stored shape at the boundary so nothing
// downstream sees a legacy record. Early versions persisted a bare
// transaction array with no cash counts; that loads as
// {transactions: arr, cashCounts: {}}. Missing fields default to empty.
func decodePayload(raw string) (payload, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var txs []core.Transaction
		if err := json.Unmarshal([]byte(trimmed), &txs); err != nil {
			return payload{}, fmt.Errorf("decode legacy record: %w", err)
		}
		return payload{Transactions: txs, CashCounts: core.CashCount{}}, nil
	}

	var p payload
	if err := json.Unmarshal([]byte(trimmed), &p); err != nil {
		return payload{}, fmt.Errorf("decode record: %w", err)
	}
	if p.Transactions == nil {
		p.Transactions = []core.Transaction{}
	}
	if p.CashCounts == nil {
		p.CashCounts = core.CashCount{}
	}
	return p, nil
}
