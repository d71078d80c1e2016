package db

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vinibarber/agenda-api/internal/models"
)

// OpenTest abre um banco sqlite em memória com o mesmo schema da API.
// Cada chamada usa um nome único para isolar os testes; cache=shared mantém
// o banco vivo entre as conexões do pool do gorm.
func OpenTest(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// Uma conexão só: serializa o acesso e evita lock do sqlite entre o
	// teste e o worker de auditoria.
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := gdb.AutoMigrate(
		&models.Provider{},
		&models.Slot{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb
}
