package session

import (
	"fmt"

	"github.com/google/uuid"

	"offertory/internal/core"
)

// Editor owns the one mutable session record being edited. Presentation
// reads snapshots and pushes field-level intents; derived totals are
// re-computed on demand, never kept as running state.
type Editor struct {
	record Record
}

func NewEditor() *Editor {
	return &Editor{record: Record{
		ServiceType:  ServiceTypes[0],
		Transactions: []core.Transaction{},
		CashCounts:   core.CashCount{},
	}}
}

// Record returns a copy of the current session state.
func (e *Editor) Record() Record {
	out := e.record
	out.Transactions = append([]core.Transaction(nil), e.record.Transactions...)
	counts := make(core.CashCount, len(e.record.CashCounts))
	for d, n := range e.record.CashCounts {
		counts[d] = n
	}
	out.CashCounts = counts
	return out
}

// Reset replaces the session wholesale, the load path.
func (e *Editor) Reset(r Record) {
	if r.Transactions == nil {
		r.Transactions = []core.Transaction{}
	}
	if r.CashCounts == nil {
		r.CashCounts = core.CashCount{}
	}
	e.record = r
}

// Clear empties transactions and counts but keeps date and service type,
// for when a load finds no record.
func (e *Editor) Clear() {
	e.record.Transactions = []core.Transaction{}
	e.record.CashCounts = core.CashCount{}
}

// SetServiceType switches the service and clears the date, since the
// allowed dates differ per service.
func (e *Editor) SetServiceType(serviceType string) {
	e.record.ServiceType = serviceType
	e.record.Date = ""
}

func (e *Editor) SetDate(date string) {
	e.record.Date = date
}

// AddEntry prepends a blank row to the given panel and returns it.
func (e *Editor) AddEntry(panel core.PayerType) core.Transaction {
	tx := core.Transaction{
		ID:    uuid.NewString(),
		Type:  panel,
		Funds: map[core.Fund]float64{},
	}
	e.record.Transactions = append([]core.Transaction{tx}, e.record.Transactions...)
	return tx
}

// SetFund updates one fund amount on one row. The fund must be one of
// the six fixed categories; negative or NaN-ish input drops to zero.
func (e *Editor) SetFund(id string, fund core.Fund, value float64) error {
	valid := false
	for _, f := range core.Funds {
		if f == fund {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown fund %q", fund)
	}
	tx, err := e.find(id)
	if err != nil {
		return err
	}
	if value < 0 || value != value {
		value = 0
	}
	if tx.Funds == nil {
		tx.Funds = map[core.Fund]float64{}
	}
	tx.Funds[fund] = value
	return nil
}

func (e *Editor) SetGCash(id string, value float64) error {
	tx, err := e.find(id)
	if err != nil {
		return err
	}
	if value < 0 {
		value = 0
	}
	tx.GCash = value
	return nil
}

func (e *Editor) SetMember(id, memberID string) error {
	tx, err := e.find(id)
	if err != nil {
		return err
	}
	tx.MemberID = memberID
	return nil
}

func (e *Editor) SetGuestName(id, name string) error {
	tx, err := e.find(id)
	if err != nil {
		return err
	}
	tx.GuestName = name
	return nil
}

// Remove drops one row by id.
func (e *Editor) Remove(id string) error {
	for i, tx := range e.record.Transactions {
		if tx.ID == id {
			e.record.Transactions = append(e.record.Transactions[:i], e.record.Transactions[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}

// SetCount records how many pieces of one denomination were counted.
func (e *Editor) SetCount(d core.Denomination, n int) error {
	known := false
	for _, dd := range core.Denominations {
		if dd == d {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown denomination %d", d)
	}
	if n < 0 {
		n = 0
	}
	e.record.CashCounts[d] = n
	return nil
}

// ByType returns the rows of one panel in session order.
func (e *Editor) ByType(panel core.PayerType) []core.Transaction {
	var out []core.Transaction
	for _, tx := range e.record.Transactions {
		if tx.Type == panel {
			out = append(out, tx)
		}
	}
	return out
}

// Totals re-derives the aggregation and the reconciliation verdict from
// the current state.
func (e *Editor) Totals() (core.Totals, core.Reconciliation) {
	totals := core.Aggregate(e.record.Transactions)
	return totals, core.Reconcile(totals.Total, totals.Electronic, e.record.CashCounts)
}

// AvailableMembers filters the pick list for a row: members of the
// panel's type not already used by another row. This is a convenience
// for presentation, not a hard constraint — a member appearing twice is
// tolerated if it gets past the filter.
func (e *Editor) AvailableMembers(members []core.Member, panel core.PayerType, rowID string) []core.Member {
	current := ""
	used := map[string]bool{}
	for _, tx := range e.record.Transactions {
		if tx.MemberID == "" {
			continue
		}
		if tx.ID == rowID {
			current = tx.MemberID
			continue
		}
		used[tx.MemberID] = true
	}

	var out []core.Member
	for _, m := range members {
		if string(m.Type) != string(panel) {
			continue
		}
		if used[m.ID] && m.ID != current {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (e *Editor) find(id string) (*core.Transaction, error) {
	for i := range e.record.Transactions {
		if e.record.Transactions[i].ID == id {
			return &e.record.Transactions[i], nil
		}
	}
	return nil, core.ErrNotFound
}
