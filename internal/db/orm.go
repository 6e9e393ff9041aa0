package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	models "office-experiment/dutyboard/internal/models/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM connection used by the mutation repositories
// and keeps the schema in sync for the two tables this service owns.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(&models.Member{}, &models.DutyAssignment{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	PgDB = db
	return db, nil
}
