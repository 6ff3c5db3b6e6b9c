package response

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"arborgold/internal/usecase"
)

type RevenueReportResponse struct {
	Start        time.Time       `json:"start"`
	End          time.Time       `json:"end"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

func FromRevenueReport(r usecase.RevenueReport) RevenueReportResponse {
	return RevenueReportResponse{Start: r.Start, End: r.End, TotalRevenue: r.TotalRevenue}
}

type OutstandingInvoiceResponse struct {
	InvoiceID  snowflake.ID    `json:"invoice_id"`
	CustomerID snowflake.ID    `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	Balance    decimal.Decimal `json:"balance"`
	Status     string          `json:"status"`
}

func FromOutstandingInvoices(items []usecase.OutstandingInvoice) []OutstandingInvoiceResponse {
	out := make([]OutstandingInvoiceResponse, 0, len(items))
	for _, it := range items {
		out = append(out, OutstandingInvoiceResponse{
			InvoiceID:  it.InvoiceID,
			CustomerID: it.CustomerID,
			Total:      it.Total,
			Balance:    it.Balance,
			Status:     string(it.Status),
		})
	}
	return out
}

type EstimateConversionResponse struct {
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	TotalEstimates    int64     `json:"total_estimates"`
	ApprovedEstimates int64     `json:"approved_estimates"`
	ConversionRate    float64   `json:"conversion_rate"`
}

func FromEstimateConversion(r usecase.EstimateConversionReport) EstimateConversionResponse {
	return EstimateConversionResponse{
		Start:             r.Start,
		End:               r.End,
		TotalEstimates:    r.TotalEstimates,
		ApprovedEstimates: r.ApprovedEstimates,
		ConversionRate:    r.ConversionRate,
	}
}

type DashboardResponse struct {
	TodaysJobs     int64           `json:"todays_jobs"`
	UpcomingJobs   int64           `json:"upcoming_jobs"`
	OpenEstimates  int64           `json:"open_estimates"`
	UnpaidInvoices int64           `json:"unpaid_invoices"`
	MonthRevenue   decimal.Decimal `json:"month_revenue"`
	JobsCompleted  int64           `json:"jobs_completed"`
	AvgJobValue    decimal.Decimal `json:"avg_job_value"`
}

func FromDashboard(d usecase.DashboardCounters) DashboardResponse {
	return DashboardResponse{
		TodaysJobs:     d.TodaysJobs,
		UpcomingJobs:   d.UpcomingJobs,
		OpenEstimates:  d.OpenEstimates,
		UnpaidInvoices: d.UnpaidInvoices,
		MonthRevenue:   d.MonthRevenue,
		JobsCompleted:  d.JobsCompleted,
		AvgJobValue:    d.AvgJobValue,
	}
}
