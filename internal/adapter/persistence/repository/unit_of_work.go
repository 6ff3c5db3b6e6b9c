package repository

import (
	"context"

	"gorm.io/gorm"

	"arborgold/internal/usecase/interfaces"
)

// GormUnitOfWork hands out repositories bound to a shared *gorm.DB and runs
// lifecycle operations inside a single transaction via Do.

type GormUnitOfWork struct {
	db *gorm.DB
}

var _ interfaces.UnitOfWork = (*GormUnitOfWork)(nil)

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) Do(ctx context.Context, fn func(tx interfaces.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormUnitOfWork{db: tx})
	})
}

func (u *GormUnitOfWork) Customers() interfaces.CustomerRepository {
	return NewCustomerGormRepository(u.db)
}

func (u *GormUnitOfWork) Leads() interfaces.LeadRepository {
	return NewLeadGormRepository(u.db)
}

func (u *GormUnitOfWork) Estimates() interfaces.EstimateRepository {
	return NewEstimateGormRepository(u.db)
}

func (u *GormUnitOfWork) Jobs() interfaces.JobRepository {
	return NewJobGormRepository(u.db)
}

func (u *GormUnitOfWork) Crews() interfaces.CrewRepository {
	return NewCrewGormRepository(u.db)
}

func (u *GormUnitOfWork) Equipment() interfaces.EquipmentRepository {
	return NewEquipmentGormRepository(u.db)
}

func (u *GormUnitOfWork) Invoices() interfaces.InvoiceRepository {
	return NewInvoiceGormRepository(u.db)
}

func (u *GormUnitOfWork) Settings() interfaces.SettingsRepository {
	return NewSettingsGormRepository(u.db)
}

func (u *GormUnitOfWork) Reports() interfaces.ReportRepository {
	return NewReportGormRepository(u.db)
}
