package db

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres

	"github.com/radhian/loan-reconciliation-mcp/infra/db/model"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Name     string
	Password string
}

// Open connects to postgres and ensures the loan_records table exists.
func Open(cfg Config) (*gorm.DB, error) {
	uri := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Name, cfg.Password)

	conn, err := gorm.Open("postgres", uri)
	if err != nil {
		return nil, fmt.Errorf("connect to database %s: %w", cfg.Name, err)
	}

	conn.AutoMigrate(&model.LoanRecordRow{}) //database migration
	return conn, nil
}
