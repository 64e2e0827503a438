package store

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// stateRecord is one persisted collection document in the kitchen_state table.
type stateRecord struct {
	Key  string `gorm:"column:state_key;primary_key"`
	Data string `gorm:"column:data;type:text"`
}

// TableName sets the gorm table name for state records
func (stateRecord) TableName() string {
	return "kitchen_state"
}

// DatabaseBackend persists collection documents in a relational key/value
// table, using SQLite for single-node setups or PostgreSQL when shared.
type DatabaseBackend struct {
	db *gorm.DB
}

// OpenDatabase initializes the database connection and migrates the state
// table. dialect is "sqlite3" or "postgres" with a matching DSN.
func OpenDatabase(dialect, dsn string) (*DatabaseBackend, error) {
	db, err := gorm.Open(dialect, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&stateRecord{}).Error; err != nil {
		db.Close()
		return nil, err
	}
	return &DatabaseBackend{db: db}, nil
}

// Load reads the document stored under key, or (nil, nil) if none exists.
func (b *DatabaseBackend) Load(key string) ([]byte, error) {
	var rec stateRecord
	err := b.db.Where("state_key = ?", key).First(&rec).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(rec.Data), nil
}

// Save writes the document under key, replacing any previous version.
func (b *DatabaseBackend) Save(key string, data []byte) error {
	rec := stateRecord{Key: key, Data: string(data)}
	update := b.db.Model(&stateRecord{}).Where("state_key = ?", key).Update("data", rec.Data)
	if update.Error != nil {
		return update.Error
	}
	if update.RowsAffected == 0 {
		return b.db.Create(&rec).Error
	}
	return nil
}

// Close closes the database connection
func (b *DatabaseBackend) Close() error {
	return b.db.Close()
}
