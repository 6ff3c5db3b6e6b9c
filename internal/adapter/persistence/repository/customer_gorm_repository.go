package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

var _ interfaces.CustomerRepository = (*CustomerGormRepository)(nil)

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) Create(ctx context.Context, c *entities.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerGormRepository) GetByID(ctx context.Context, id snowflake.ID) (entities.Customer, error) {
	var c entities.Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return entities.Customer{}, ignoreNotFound(err)
	}
	return c, nil
}

func (r *CustomerGormRepository) Update(ctx context.Context, c *entities.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerGormRepository) List(ctx context.Context, f interfaces.CustomerFilter) ([]entities.Customer, error) {
	q := r.db.WithContext(ctx).Model(&entities.Customer{})
	if f.Q != "" {
		like := likePattern(f.Q)
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}
	if f.Tag != "" {
		q = q.Where(datatypes.JSONArrayQuery("tags").Contains(f.Tag))
	}

	var customers []entities.Customer
	if err := q.Order("id DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerGormRepository) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).Delete(&entities.Customer{}, "id = ?", id).Error
}
