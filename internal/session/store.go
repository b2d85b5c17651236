package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"offertory/internal/core"
	"offertory/internal/storage"
)

// Store persists session records through an injected key/value store.
type Store struct {
	kv storage.Store
}

func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// Save writes the record under its composite key, overwriting any prior
// record there. An empty date fails with core.ErrMissingDate before
// anything is written. The returned reconciliation is recomputed here
// purely so the caller can report balanced or not — an unbalanced
// session is still saved.
func (s *Store) Save(serviceType, date string, txs []core.Transaction, counts core.CashCount) (core.Reconciliation, error) {
	if strings.TrimSpace(date) == "" {
		return core.Reconciliation{}, core.ErrMissingDate
	}

	totals := core.Aggregate(txs)
	verdict := core.Reconcile(totals.Total, totals.Electronic, counts)

	if txs == nil {
		txs = []core.Transaction{}
	}
	if counts == nil {
		counts = core.CashCount{}
	}
	data, err := json.Marshal(payload{Transactions: txs, CashCounts: counts})
	if err != nil {
		return core.Reconciliation{}, fmt.Errorf("encode record: %w", err)
	}
	if err := s.kv.Set(storage.ServiceKey(date, serviceType), string(data)); err != nil {
		return core.Reconciliation{}, fmt.Errorf("save record: %w", err)
	}

	slog.Info("Session saved",
		"date", date,
		"service_type", serviceType,
		"entries", len(txs),
		"status", verdict.Status,
		"discrepancy", verdict.Discrepancy)
	return verdict, nil
}

// Load reads one record. An empty date fails with core.ErrMissingDate; a
// miss yields core.ErrNotFound, on which the caller must reset its
// session to empty rather than keep stale data.
func (s *Store) Load(serviceType, date string) (Record, error) {
	if strings.TrimSpace(date) == "" {
		return Record{}, core.ErrMissingDate
	}
	raw, ok, err := s.kv.Get(storage.ServiceKey(date, serviceType))
	if err != nil {
		return Record{}, fmt.Errorf("load record: %w", err)
	}
	if !ok {
		return Record{}, core.ErrNotFound
	}
	p, err := decodePayload(raw)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Date:         date,
		ServiceType:  serviceType,
		Transactions: p.Transactions,
		CashCounts:   p.CashCounts,
	}, nil
}

// ListAll returns every persisted session, newest date first. A corrupt
// entry is skipped with a warning instead of failing the whole listing.
func (s *Store) ListAll() ([]Record, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	records := make([]Record, 0, len(keys))
	for _, key := range keys {
		if !strings.HasPrefix(key, storage.ServicePrefix) {
			continue
		}
		date, serviceType, ok := storage.ParseServiceKey(key)
		if !ok {
			slog.Warn("Skipping malformed session key", "key", key)
			continue
		}
		raw, found, err := s.kv.Get(key)
		if err != nil || !found {
			slog.Warn("Skipping unreadable session record", "key", key, "error", err)
			continue
		}
		p, err := decodePayload(raw)
		if err != nil {
			slog.Warn("Skipping corrupt session record", "key", key, "error", err)
			continue
		}
		records = append(records, Record{
			Date:         date,
			ServiceType:  serviceType,
			Transactions: p.Transactions,
			CashCounts:   p.CashCounts,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records, nil
}
