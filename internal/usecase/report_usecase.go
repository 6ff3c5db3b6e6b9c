package usecase

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

type RevenueReport struct {
	Start        time.Time
	End          time.Time
	TotalRevenue decimal.Decimal
}

// OutstandingInvoice is one unpaid or partially paid invoice with its open
// balance, max(total - paid, 0).
type OutstandingInvoice struct {
	InvoiceID  snowflake.ID
	CustomerID snowflake.ID
	Total      decimal.Decimal
	Balance    decimal.Decimal
	Status     entities.InvoiceStatus
}

type EstimateConversionReport struct {
	Start             time.Time
	End               time.Time
	TotalEstimates    int64
	ApprovedEstimates int64
	ConversionRate    float64
}

type DashboardCounters struct {
	TodaysJobs     int64
	UpcomingJobs   int64
	OpenEstimates  int64
	UnpaidInvoices int64
	MonthRevenue   decimal.Decimal
	JobsCompleted  int64
	AvgJobValue    decimal.Decimal
}

type IReportUseCase interface {
	RevenueInRange(ctx context.Context, start, end time.Time) (RevenueReport, error)
	OutstandingInvoices(ctx context.Context) ([]OutstandingInvoice, error)
	EstimateConversion(ctx context.Context, start, end time.Time) (EstimateConversionReport, error)
	Dashboard(ctx context.Context) (DashboardCounters, error)
}

// ReportUseCase serves the read-only reporting surface. Nothing here
// mutates lifecycle state.
type ReportUseCase struct {
	uow interfaces.UnitOfWork
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(uow interfaces.UnitOfWork) *ReportUseCase {
	return &ReportUseCase{uow: uow}
}

func (u *ReportUseCase) RevenueInRange(ctx context.Context, start, end time.Time) (RevenueReport, error) {
	total, err := u.uow.Reports().SumPaymentsInRange(ctx, start, end)
	if err != nil {
		return RevenueReport{}, err
	}
	return RevenueReport{Start: start, End: end, TotalRevenue: total}, nil
}

func (u *ReportUseCase) OutstandingInvoices(ctx context.Context) ([]OutstandingInvoice, error) {
	invoices, err := u.uow.Reports().ListUnpaidInvoices(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]OutstandingInvoice, 0, len(invoices))
	for _, inv := range invoices {
		paid := decimal.Zero
		for _, p := range inv.Payments {
			paid = paid.Add(p.Amount)
		}
		balance := inv.Total.Sub(paid)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		out = append(out, OutstandingInvoice{
			InvoiceID:  inv.ID,
			CustomerID: inv.CustomerID,
			Total:      inv.Total,
			Balance:    balance,
			Status:     inv.Status,
		})
	}
	return out, nil
}

func (u *ReportUseCase) EstimateConversion(ctx context.Context, start, end time.Time) (EstimateConversionReport, error) {
	total, err := u.uow.Reports().CountEstimatesInRange(ctx, start, end)
	if err != nil {
		return EstimateConversionReport{}, err
	}
	approved, err := u.uow.Reports().CountApprovedEstimatesInRange(ctx, start, end)
	if err != nil {
		return EstimateConversionReport{}, err
	}

	rate := 0.0
	if total > 0 {
		rate = float64(approved) / float64(total)
	}
	return EstimateConversionReport{
		Start:             start,
		End:               end,
		TotalEstimates:    total,
		ApprovedEstimates: approved,
		ConversionRate:    rate,
	}, nil
}

func (u *ReportUseCase) Dashboard(ctx context.Context) (DashboardCounters, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	reports := u.uow.Reports()
	var (
		d   DashboardCounters
		err error
	)
	if d.TodaysJobs, err = reports.CountJobsScheduledBetween(ctx, today, tomorrow); err != nil {
		return DashboardCounters{}, err
	}
	if d.UpcomingJobs, err = reports.CountJobsScheduledAfter(ctx, tomorrow); err != nil {
		return DashboardCounters{}, err
	}
	if d.OpenEstimates, err = reports.CountEstimatesByStatus(ctx, entities.EstimateStatusDraft, entities.EstimateStatusSent); err != nil {
		return DashboardCounters{}, err
	}
	if d.UnpaidInvoices, err = reports.CountInvoicesByStatus(ctx, entities.InvoiceStatusUnpaid, entities.InvoiceStatusPartial); err != nil {
		return DashboardCounters{}, err
	}
	if d.MonthRevenue, err = reports.SumPaymentsSince(ctx, monthStart); err != nil {
		return DashboardCounters{}, err
	}
	if d.JobsCompleted, err = reports.CountJobsCompletedSince(ctx, monthStart); err != nil {
		return DashboardCounters{}, err
	}
	if d.AvgJobValue, err = reports.AvgJobTotalCompletedSince(ctx, monthStart); err != nil {
		return DashboardCounters{}, err
	}
	return d, nil
}
