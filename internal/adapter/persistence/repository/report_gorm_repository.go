package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

// ReportGormRepository serves the read-only aggregations behind dashboards
// and reports. Sums are computed over exact decimal values in Go to keep
// the arithmetic engine-independent.

type ReportGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ReportRepository = (*ReportGormRepository)(nil)

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) sumPayments(ctx context.Context, cond string, args ...any) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&entities.Payment{}).
		Where(cond, args...).
		Pluck("amount", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	return sum, nil
}

func (r *ReportGormRepository) SumPaymentsInRange(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	return r.sumPayments(ctx, "paid_at >= ? AND paid_at <= ?", start, end)
}

func (r *ReportGormRepository) SumPaymentsSince(ctx context.Context, t time.Time) (decimal.Decimal, error) {
	return r.sumPayments(ctx, "paid_at >= ?", t)
}

func (r *ReportGormRepository) ListUnpaidInvoices(ctx context.Context) ([]entities.Invoice, error) {
	var invoices []entities.Invoice
	err := r.db.WithContext(ctx).
		Preload("Payments").
		Where("status <> ?", entities.InvoiceStatusPaid).
		Order(invoiceOrder).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *ReportGormRepository) CountEstimatesInRange(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entities.Estimate{}).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Count(&n).Error
	return n, err
}

func (r *ReportGormRepository) CountApprovedEstimatesInRange(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entities.Estimate{}).
		Where("created_at >= ? AND created_at <= ? AND status = ?", start, end, entities.EstimateStatusApproved).
		Count(&n).Error
	return n, err
}

func (r *ReportGormRepository) CountJobsScheduledBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entities.Job{}).
		Where("scheduled_start >= ? AND scheduled_start < ?", start, end).
		Count(&n).Error
	return n, err
}

func (r *ReportGormRepository) CountJobsScheduledAfter(ctx context.Context, t time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entities.Job{}).
		Where("scheduled_start >= ?", t).
		Count(&n).Error
	return n, err
}

func (r *ReportGormRepository) CountEstimatesByStatus(ctx context.Context, statuses ...entities.EstimateStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entities.Estimate{}).
		Where("status IN ?", statuses).
		Count(&n).Error
	return n, err
}

func (r *ReportGormRepository) CountInvoicesByStatus(ctx context.Context, statuses ...entities.InvoiceStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entities.Invoice{}).
		Where("status IN ?", statuses).
		Count(&n).Error
	return n, err
}

func (r *ReportGormRepository) CountJobsCompletedSince(ctx context.Context, t time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entities.Job{}).
		Where("status = ? AND completed_at >= ?", entities.JobStatusCompleted, t).
		Count(&n).Error
	return n, err
}

func (r *ReportGormRepository) AvgJobTotalCompletedSince(ctx context.Context, t time.Time) (decimal.Decimal, error) {
	var totals []decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&entities.Job{}).
		Where("status = ? AND completed_at >= ?", entities.JobStatusCompleted, t).
		Pluck("total", &totals).Error
	if err != nil {
		return decimal.Zero, err
	}
	if len(totals) == 0 {
		return decimal.Zero, nil
	}
	sum := decimal.Zero
	for _, v := range totals {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(totals)))), nil
}
