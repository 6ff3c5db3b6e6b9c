package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"arborgold/internal/adapter/persistence/repository"
	"arborgold/internal/domain/entities"
	"arborgold/internal/infrastructure/database"
	"arborgold/internal/usecase/interfaces"
)

var testDBSeq atomic.Int64

// newTestUoW opens a private in-memory sqlite store with the real schema and
// the real gorm unit of work, so lifecycle tests exercise the same constraint
// translation the service runs with.
func newTestUoW(t *testing.T) (interfaces.UnitOfWork, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:usecase_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	return repository.NewGormUnitOfWork(db), node
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedCustomer(t *testing.T, uow interfaces.UnitOfWork, node *snowflake.Node) entities.Customer {
	t.Helper()
	c := entities.Customer{ID: node.Generate(), Name: "Harper Residence"}
	if err := uow.Customers().Create(context.Background(), &c); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func seedLead(t *testing.T, uow interfaces.UnitOfWork, node *snowflake.Node, customerID snowflake.ID) entities.Lead {
	t.Helper()
	l := entities.Lead{ID: node.Generate(), CustomerID: customerID, Status: entities.LeadStatusNew}
	if err := uow.Leads().Create(context.Background(), &l); err != nil {
		t.Fatalf("seed lead: %v", err)
	}
	return l
}
