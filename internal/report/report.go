// Package report derives the monthly giving summary and the dashboard
// figures from persisted session records. Everything here is a pure
// function over loaded records.
package report

import (
	"sort"
	"strings"

	"offertory/internal/core"
	"offertory/internal/session"
)

type (
	// ServiceLine is one service's totals within a day: per-fund sums in
	// the fixed fund order, the electronic sum, and the fund grand total.
	ServiceLine struct {
		ServiceType string
		PerFund     map[core.Fund]float64
		GCash       float64
		Total       float64
	}

	// DayGroup collects the services held on one date.
	DayGroup struct {
		Date     string
		Services []ServiceLine
	}

	// MonthSummary is the printable month breakdown plus its grand totals.
	MonthSummary struct {
		Month   string // YYYY-MM
		Days    []DayGroup
		PerFund map[core.Fund]float64
		GCash   float64
		Total   float64
	}

	// Overview carries the dashboard headline numbers.
	Overview struct {
		TotalGiving       float64
		ServicesRecorded  int
		AveragePerService map[string]float64
	}
)

// Monthly filters records to one YYYY-MM month and groups them by date,
// dates ascending, services in encounter order.
func Monthly(records []session.Record, month string) MonthSummary {
	out := MonthSummary{Month: month, PerFund: zeroFunds()}

	byDate := map[string][]ServiceLine{}
	for _, rec := range records {
		if !strings.HasPrefix(rec.Date, month) {
			continue
		}
		totals := core.Aggregate(rec.Transactions)
		line := ServiceLine{
			ServiceType: rec.ServiceType,
			PerFund:     totals.PerFund,
			GCash:       totals.Electronic,
			Total:       totals.Total,
		}
		byDate[rec.Date] = append(byDate[rec.Date], line)

		for _, f := range core.Funds {
			out.PerFund[f] += totals.PerFund[f]
		}
		out.GCash += totals.Electronic
		out.Total += totals.Total
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		out.Days = append(out.Days, DayGroup{Date: d, Services: byDate[d]})
	}
	return out
}

// Summarize computes the headline dashboard numbers across all records:
// total giving, how many services were recorded, and the average total
// per service type.
func Summarize(records []session.Record) Overview {
	out := Overview{AveragePerService: map[string]float64{}}

	sums := map[string]float64{}
	counts := map[string]int{}
	for _, rec := range records {
		totals := core.Aggregate(rec.Transactions)
		out.TotalGiving += totals.Total
		out.ServicesRecorded++
		sums[rec.ServiceType] += totals.Total
		counts[rec.ServiceType]++
	}
	for svc, sum := range sums {
		out.AveragePerService[svc] = sum / float64(counts[svc])
	}
	return out
}

func zeroFunds() map[core.Fund]float64 {
	m := make(map[core.Fund]float64, len(core.Funds))
	for _, f := range core.Funds {
		m[f] = 0
	}
	return m
}
