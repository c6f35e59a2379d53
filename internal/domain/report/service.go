package report

import "context"

// ReportService gathers the records of the selected work days and aggregates them.
type ReportService interface {
	Aggregate(ctx context.Context, req AggregateRequest) (Report, error)
}
