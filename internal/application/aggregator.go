package application

import (
	"github.com/bnema/scdc-smart-cli/internal/domain"
)

// PrimaryColorPolicy decides which record's color highlights a day that has
// more than one session.
type PrimaryColorPolicy int

const (
	// PrimaryColorLastWins uses the color of the last record processed for the date.
	PrimaryColorLastWins PrimaryColorPolicy = iota
	// PrimaryColorFirstWins keeps the color of the first record seen for the date.
	PrimaryColorFirstWins
)

// Diagnostic is a record that was left out of the marking.
type Diagnostic struct {
	Index  int
	Record domain.SessionRecord
	Err    error
}

type AggregateResult struct {
	Marking     domain.Marking
	Diagnostics []Diagnostic
}

type AggregatorOption func(*Aggregator)

func WithPrimaryColorPolicy(policy PrimaryColorPolicy) AggregatorOption {
	return func(a *Aggregator) {
		a.policy = policy
	}
}

// WithDiagnosticHandler registers fn to be called for each diagnostic, in input order.
func WithDiagnosticHandler(fn func(Diagnostic)) AggregatorOption {
	return func(a *Aggregator) {
		a.onDiagnostic = fn
	}
}

// Aggregator folds session records into a per-date marking. It holds no mutable
// state and may be shared between goroutines.
type Aggregator struct {
	legend       domain.Legend
	policy       PrimaryColorPolicy
	onDiagnostic func(Diagnostic)
}

func NewAggregator(legend domain.Legend, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{legend: legend, policy: PrimaryColorLastWins}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

func (a *Aggregator) Legend() domain.Legend {
	return a.legend
}

func (a *Aggregator) Aggregate(records []domain.SessionRecord) AggregateResult {
	result := AggregateResult{Marking: make(domain.Marking)}

	for i, record := range records {
		color, err := a.legend.ColorOf(record.SessionType)
		if err != nil {
			a.report(&result, Diagnostic{Index: i, Record: record, Err: err})
			continue
		}

		_, date, err := domain.ParseDate(record.Date)
		if err != nil {
			a.report(&result, Diagnostic{Index: i, Record: record, Err: err})
			continue
		}

		day, seen := result.Marking[date]
		if !seen {
			day = domain.DayMarking{Date: date, Dots: []domain.Dot{}}
		}

		if !day.HasType(record.SessionType) {
			day.Dots = append(day.Dots, domain.Dot{Key: record.SessionType, Color: color})
		}

		if !seen || a.policy == PrimaryColorLastWins {
			day.PrimaryColor = color
		}

		result.Marking[date] = day
	}

	return result
}

func (a *Aggregator) report(result *AggregateResult, diagnostic Diagnostic) {
	result.Diagnostics = append(result.Diagnostics, diagnostic)
	if a.onDiagnostic != nil {
		a.onDiagnostic(diagnostic)
	}
}
