package repo

import (
	"Catalogue/internal/model"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// MemoryDSN — значение DATABASE_URI, при котором используется хранилище в памяти.
const MemoryDSN = "memory"

// DefaultSQLitePath — файл БД по умолчанию, если DATABASE_URI не задан.
const DefaultSQLitePath = "catalogue.db"

// InitDB открывает соединение через gorm и создаёт схему.
// Postgres выбирается по DSN, во всех остальных случаях используется SQLite (modernc, без CGO).
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&model.Item{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// IsPostgresDSN определяет, относится ли строка подключения к PostgreSQL.
func IsPostgresDSN(dsn string) bool {
	d := strings.TrimSpace(dsn)
	return strings.HasPrefix(d, "postgres://") ||
		strings.HasPrefix(d, "postgresql://") ||
		strings.Contains(d, "host=")
}

// IsMemoryDSN проверяет DATABASE_URI=memory.
func IsMemoryDSN(dsn string) bool {
	return strings.EqualFold(strings.TrimSpace(dsn), MemoryDSN)
}

func dialectorFor(dsn string) gorm.Dialector {
	if IsPostgresDSN(dsn) {
		return postgres.Open(dsn)
	}
	if strings.TrimSpace(dsn) == "" {
		dsn = DefaultSQLitePath
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
}

// Close закрывает пул соединений gorm.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
