package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

// InvoiceGormRepository persists invoices and their payments. The unique
// index on job_id is what serializes concurrent ensure-or-return callers:
// a second insert for the same job surfaces gorm.ErrDuplicatedKey.

type InvoiceGormRepository struct {
	db *gorm.DB
}

var _ interfaces.InvoiceRepository = (*InvoiceGormRepository)(nil)

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{db: db}
}

func (r *InvoiceGormRepository) preload() *gorm.DB {
	return r.db.Preload("Payments", func(db *gorm.DB) *gorm.DB {
		return db.Order("paid_at DESC, id DESC")
	})
}

func (r *InvoiceGormRepository) Create(ctx context.Context, inv *entities.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvoiceGormRepository) GetByID(ctx context.Context, id snowflake.ID) (entities.Invoice, error) {
	var inv entities.Invoice
	err := r.preload().WithContext(ctx).First(&inv, "id = ?", id).Error
	if err != nil {
		return entities.Invoice{}, ignoreNotFound(err)
	}
	return inv, nil
}

func (r *InvoiceGormRepository) GetByJobID(ctx context.Context, jobID snowflake.ID) (entities.Invoice, error) {
	var inv entities.Invoice
	err := r.preload().WithContext(ctx).First(&inv, "job_id = ?", jobID).Error
	if err != nil {
		return entities.Invoice{}, ignoreNotFound(err)
	}
	return inv, nil
}

func (r *InvoiceGormRepository) Update(ctx context.Context, inv *entities.Invoice) error {
	return r.db.WithContext(ctx).Omit("Payments").Save(inv).Error
}

func (r *InvoiceGormRepository) List(ctx context.Context, f interfaces.InvoiceFilter) ([]entities.Invoice, error) {
	q := r.preload().WithContext(ctx).Model(&entities.Invoice{})
	if f.Status != "" {
		q = q.Where("invoices.status = ?", f.Status)
	}
	if f.CustomerID != 0 {
		q = q.Where("invoices.customer_id = ?", f.CustomerID)
	}
	if f.JobID != 0 {
		q = q.Where("invoices.job_id = ?", f.JobID)
	}
	if f.Q != "" {
		like := likePattern(f.Q)
		q = q.Joins("JOIN customers ON customers.id = invoices.customer_id").
			Where("LOWER(customers.name) LIKE ? OR LOWER(customers.company_name) LIKE ?", like, like)
	}

	var invoices []entities.Invoice
	if err := q.Order(invoiceOrder).Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *InvoiceGormRepository) Delete(ctx context.Context, id snowflake.ID) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Delete(&entities.Payment{}, "invoice_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&entities.Invoice{}, "id = ?", id).Error
}

func (r *InvoiceGormRepository) DeleteByCustomerID(ctx context.Context, customerID snowflake.ID) error {
	tx := r.db.WithContext(ctx)
	invoiceIDs := tx.Model(&entities.Invoice{}).Select("id").Where("customer_id = ?", customerID)
	if err := tx.Where("invoice_id IN (?)", invoiceIDs).Delete(&entities.Payment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entities.Invoice{}, "customer_id = ?", customerID).Error
}

func (r *InvoiceGormRepository) DeleteByJobID(ctx context.Context, jobID snowflake.ID) error {
	tx := r.db.WithContext(ctx)
	invoiceIDs := tx.Model(&entities.Invoice{}).Select("id").Where("job_id = ?", jobID)
	if err := tx.Where("invoice_id IN (?)", invoiceIDs).Delete(&entities.Payment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entities.Invoice{}, "job_id = ?", jobID).Error
}

func (r *InvoiceGormRepository) AddPayment(ctx context.Context, p *entities.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// SumPayments recomputes the cumulative amount from all rows rather than
// keeping a running counter, so out-of-band edits cannot drift the status.
func (r *InvoiceGormRepository) SumPayments(ctx context.Context, invoiceID snowflake.ID) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&entities.Payment{}).
		Where("invoice_id = ?", invoiceID).
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
