package infrastructure_test

import (
	"testing"

	"github.com/PRagan/gleaner/internal/config"
	"github.com/PRagan/gleaner/internal/infrastructure"
	"github.com/PRagan/gleaner/pkg/database"
)

func validConfig() *config.Config {
	return &config.Config{
		Database: database.Config{
			Host:            "localhost",
			Port:            5432,
			Name:            "gleaner",
			User:            "gleaner",
			Password:        "gleaner",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: "15m",
			ConnTimeout:     "5s",
		},
		Version: "0.1.0",
	}
}

func TestNew(t *testing.T) {
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if infra.Lifecycle == nil {
		t.Error("Lifecycle is nil")
	}
	if infra.Logger == nil {
		t.Error("Logger is nil")
	}
	if infra.Database == nil {
		t.Error("Database is nil")
	}
}

func TestNewDatabaseConnection(t *testing.T) {
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	conn := infra.Database.Connection()
	if conn == nil {
		t.Fatal("Database.Connection() returned nil")
	}
	conn.Close()
}
