package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"favoritos/internal/models/db_models"
	"favoritos/pkg/config"
)

// InitPostgresql opens the process-lifetime connection pool. TranslateError
// lets repositories match unique-constraint violations via gorm.ErrDuplicatedKey
// instead of driver-specific error codes.
func InitPostgresql(cfg *config.Config) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(&db_models.Cliente{}, &db_models.Favorito{}); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
