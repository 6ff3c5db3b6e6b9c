package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"arborgold/internal/domain/entities"
)

// ReportRepository is the read-only aggregation surface behind the reporting
// use case. Nothing here mutates.
type ReportRepository interface {
	SumPaymentsInRange(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	ListUnpaidInvoices(ctx context.Context) ([]entities.Invoice, error)
	CountEstimatesInRange(ctx context.Context, start, end time.Time) (int64, error)
	CountApprovedEstimatesInRange(ctx context.Context, start, end time.Time) (int64, error)

	CountJobsScheduledBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountJobsScheduledAfter(ctx context.Context, t time.Time) (int64, error)
	CountEstimatesByStatus(ctx context.Context, statuses ...entities.EstimateStatus) (int64, error)
	CountInvoicesByStatus(ctx context.Context, statuses ...entities.InvoiceStatus) (int64, error)
	SumPaymentsSince(ctx context.Context, t time.Time) (decimal.Decimal, error)
	CountJobsCompletedSince(ctx context.Context, t time.Time) (int64, error)
	AvgJobTotalCompletedSince(ctx context.Context, t time.Time) (decimal.Decimal, error)
}
