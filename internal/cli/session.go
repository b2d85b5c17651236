package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"offertory/internal/core"
	"offertory/internal/report"
	"offertory/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect saved giving sessions",
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := current.svc.Sessions.ListAll()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No sessions saved.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tSERVICE\tENTRIES\tTOTAL")
		for _, rec := range records {
			totals := core.Aggregate(rec.Transactions)
			fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\n", rec.Date, rec.ServiceType, len(rec.Transactions), totals.Total)
		}
		return w.Flush()
	},
}

var (
	recordDate    string
	recordService string
	recordEntries []string
	recordCounts  []string
)

var sessionRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a giving session and save it",
	Long: `Record a session from entry and count flags, then save it under
its date and service type. Entries are comma separated key=value pairs:
a member row names its code, a guest row names the guest.

  --entry "code=M0001,Tithes=500,GCASH=200"
  --entry "guest=Jane Doe,Offering=100"
  --count "1000=3,500=2"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		members, err := current.svc.Registry.All()
		if err != nil {
			return err
		}

		ed := session.NewEditor()
		ed.SetServiceType(recordService)
		ed.SetDate(recordDate)

		for _, raw := range recordEntries {
			if err := applyEntry(ed, members, raw); err != nil {
				return err
			}
		}
		for _, raw := range recordCounts {
			if err := applyCounts(ed, raw); err != nil {
				return err
			}
		}

		rec := ed.Record()
		verdict, err := current.svc.Sessions.Save(rec.ServiceType, rec.Date, rec.Transactions, rec.CashCounts)
		if err != nil {
			return err
		}

		totals, _ := ed.Totals()
		fmt.Printf("Saved %s %s: %d entries, total %.2f\n", rec.Date, rec.ServiceType, len(rec.Transactions), totals.Total)
		fmt.Printf("Expected cash %.2f, counted %.2f, discrepancy %.2f: %s\n",
			verdict.ExpectedCash, verdict.ActualCash, verdict.Discrepancy, verdict.Status)
		return nil
	},
}

// applyEntry parses one --entry value and appends it as a row. The first
// pair decides the panel: code= resolves a registered member or
// non-member, guest= opens a guest row.
func applyEntry(ed *session.Editor, members []core.Member, raw string) error {
	pairs := strings.Split(raw, ",")
	if len(pairs) == 0 {
		return fmt.Errorf("empty entry %q", raw)
	}

	key, value, ok := strings.Cut(strings.TrimSpace(pairs[0]), "=")
	if !ok {
		return fmt.Errorf("entry %q: first pair must be code= or guest=", raw)
	}

	var tx core.Transaction
	switch strings.ToLower(key) {
	case "code":
		member, found := memberByCode(members, strings.TrimSpace(value))
		if !found {
			return fmt.Errorf("entry %q: no member with code %q", raw, value)
		}
		tx = ed.AddEntry(core.PayerType(member.Type))
		if err := ed.SetMember(tx.ID, member.ID); err != nil {
			return err
		}
	case "guest":
		tx = ed.AddEntry(core.PayerGuest)
		if err := ed.SetGuestName(tx.ID, strings.TrimSpace(value)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("entry %q: first pair must be code= or guest=", raw)
	}

	for _, pair := range pairs[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return fmt.Errorf("entry %q: malformed pair %q", raw, pair)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("entry %q: amount %q is not a number", raw, value)
		}
		if strings.EqualFold(key, "GCASH") {
			if err := ed.SetGCash(tx.ID, amount); err != nil {
				return err
			}
			continue
		}
		fund, found := fundByName(key)
		if !found {
			return fmt.Errorf("entry %q: unknown fund %q", raw, key)
		}
		if err := ed.SetFund(tx.ID, fund, amount); err != nil {
			return err
		}
	}
	return nil
}

// applyCounts parses one --count value of denomination=pieces pairs.
func applyCounts(ed *session.Editor, raw string) error {
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return fmt.Errorf("count %q: malformed pair %q", raw, pair)
		}
		denom, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return fmt.Errorf("count %q: denomination %q is not a number", raw, key)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("count %q: pieces %q is not a number", raw, value)
		}
		if err := ed.SetCount(core.Denomination(denom), n); err != nil {
			return err
		}
	}
	return nil
}

func memberByCode(members []core.Member, code string) (core.Member, bool) {
	for _, m := range members {
		if m.Code == code {
			return m, true
		}
	}
	return core.Member{}, false
}

func fundByName(name string) (core.Fund, bool) {
	for _, f := range core.Funds {
		if strings.EqualFold(string(f), strings.TrimSpace(name)) {
			return f, true
		}
	}
	return "", false
}

var (
	reconcileDate    string
	reconcileService string
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a saved session's cash count",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, totals, verdict, err := current.svc.ReconcileStored(reconcileService, reconcileDate)
		if err != nil {
			return err
		}

		fmt.Printf("%s  %s\n\n", rec.Date, rec.ServiceType)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, f := range core.Funds {
			fmt.Fprintf(w, "%s\t%.2f\n", f, totals.PerFund[f])
		}
		fmt.Fprintf(w, "GCASH\t%.2f\n", totals.Electronic)
		fmt.Fprintf(w, "Grand Total\t%.2f\n", totals.Total)
		w.Flush()

		fmt.Printf("\nExpected Cash\t%.2f\n", verdict.ExpectedCash)
		fmt.Printf("Actual Cash\t%.2f\n", verdict.ActualCash)
		fmt.Printf("Discrepancy\t%.2f\n", verdict.Discrepancy)
		fmt.Printf("Status\t%s\n", verdict.Status)
		return nil
	},
}

var summaryMonth string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly giving summary or overall overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := current.svc.Sessions.ListAll()
		if err != nil {
			return err
		}

		if summaryMonth == "" {
			overview := report.Summarize(records)
			fmt.Printf("Total giving: %.2f\n", overview.TotalGiving)
			fmt.Printf("Services recorded: %d\n", overview.ServicesRecorded)
			for svc, avg := range overview.AveragePerService {
				fmt.Printf("Average per %s: %.2f\n", svc, avg)
			}
			return nil
		}

		summary := report.Monthly(records, summaryMonth)
		if len(summary.Days) == 0 {
			fmt.Printf("No sessions recorded in %s.\n", summaryMonth)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		header := "DATE\tSERVICE"
		for _, f := range core.Funds {
			header += "\t" + string(f)
		}
		fmt.Fprintln(w, header+"\tGCASH\tTOTAL")
		for _, day := range summary.Days {
			for _, line := range day.Services {
				row := fmt.Sprintf("%s\t%s", day.Date, line.ServiceType)
				for _, f := range core.Funds {
					row += fmt.Sprintf("\t%.2f", line.PerFund[f])
				}
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\n", row, line.GCash, line.Total)
			}
		}
		footer := fmt.Sprintf("%s\t", summary.Month)
		for _, f := range core.Funds {
			footer += fmt.Sprintf("\t%.2f", summary.PerFund[f])
		}
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\n", footer, summary.GCash, summary.Total)
		return w.Flush()
	},
}

func init() {
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionRecordCmd)

	sessionRecordCmd.Flags().StringVar(&recordDate, "date", "", "session date, YYYY-MM-DD")
	sessionRecordCmd.Flags().StringVar(&recordService, "service", session.ServiceTypes[0], "service type")
	sessionRecordCmd.Flags().StringArrayVar(&recordEntries, "entry", nil, "one giving row, repeatable")
	sessionRecordCmd.Flags().StringArrayVar(&recordCounts, "count", nil, "denomination=pieces pairs, repeatable")

	reconcileCmd.Flags().StringVar(&reconcileDate, "date", "", "session date, YYYY-MM-DD")
	reconcileCmd.Flags().StringVar(&reconcileService, "service", "Sunday Morning", "service type")

	summaryCmd.Flags().StringVar(&summaryMonth, "month", "", "month to summarize, YYYY-MM")
}
