// Package services wires the registry, session store and import adapter
// together for the command surface.
package services

import (
	"fmt"
	"log/slog"

	"offertory/internal/core"
	"offertory/internal/importer"
	"offertory/internal/registry"
	"offertory/internal/session"
)

// RecordService orchestrates operations that touch more than one
// component, so commands stay thin.
type RecordService struct {
	Registry *registry.Registry
	Sessions *session.Store
	importer *importer.Importer
}

func New(reg *registry.Registry, sessions *session.Store) *RecordService {
	return &RecordService{
		Registry: reg,
		Sessions: sessions,
		importer: importer.New(),
	}
}

// ImportMembers replaces the whole registry with the workbook's member
// list. The existing registry is not touched until the full imported
// set is ready: any adapter failure aborts with nothing changed.
func (s *RecordService) ImportMembers(path string) (int, error) {
	members, err := s.importer.FromFile(path)
	if err != nil {
		return 0, err
	}
	if err := s.Registry.ReplaceAll(members); err != nil {
		return 0, fmt.Errorf("replace registry: %w", err)
	}
	slog.Info("Members imported", "path", path, "count", len(members))
	return len(members), nil
}

// ReconcileStored loads a saved session and re-derives its verdict and
// per-panel breakdown from the stored transactions and counts.
func (s *RecordService) ReconcileStored(serviceType, date string) (session.Record, core.Totals, core.Reconciliation, error) {
	rec, err := s.Sessions.Load(serviceType, date)
	if err != nil {
		return session.Record{}, core.Totals{}, core.Reconciliation{}, err
	}
	totals := core.Aggregate(rec.Transactions)
	verdict := core.Reconcile(totals.Total, totals.Electronic, rec.CashCounts)
	return rec, totals, verdict, nil
}
