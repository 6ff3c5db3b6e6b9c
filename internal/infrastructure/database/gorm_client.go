package database

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"arborgold/internal/domain/entities"
)

// Connect opens the relational store. DATABASE_URL selects postgres; when it
// is empty a local sqlite file is used so the service runs with zero infra.
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey on every driver — the ensure-or-return invoice flow
// depends on that.
func Connect() (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(getenvDefault("SQLITE_PATH", "arborgold.db"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	zap.L().Info("database connected")
	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Customer{},
		&entities.Lead{},
		&entities.Estimate{},
		&entities.EstimateLineItem{},
		&entities.Crew{},
		&entities.CrewMember{},
		&entities.Job{},
		&entities.JobTask{},
		&entities.Equipment{},
		&entities.JobEquipment{},
		&entities.Invoice{},
		&entities.Payment{},
		&entities.Settings{},
	)
}

// NewIDNode builds the snowflake generator. SNOWFLAKE_NODE distinguishes
// instances; single-instance deployments can leave it at the default.
func NewIDNode() (*snowflake.Node, error) {
	n, err := strconv.ParseInt(getenvDefault("SNOWFLAKE_NODE", "1"), 10, 64)
	if err != nil {
		return nil, err
	}
	return snowflake.NewNode(n)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
