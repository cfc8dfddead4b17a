package storage

import (
	"errors"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// collectionRow is the single table backing the postgres substrate: one row
// per entity name holding that collection's serialized payload.
type collectionRow struct {
	Key       string    `gorm:"primaryKey;type:varchar(100)"`
	Payload   string    `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (collectionRow) TableName() string {
	return "collections"
}

// Postgres keeps each collection payload in a keyed row. The whole-collection
// rewrite shape of the store means a simple upsert per mutation is all that
// is needed here.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Disables implicit prepared statements for pooled connections
	}), &gorm.Config{
		Logger:      newLogger,
		PrepareStmt: false,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(key string) (string, bool, error) {
	var row collectionRow
	err := p.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Payload, true, nil
}

func (p *Postgres) Set(key, value string) error {
	row := collectionRow{Key: key, Payload: value}
	return p.db.Save(&row).Error
}
