package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tgproxy/internal/app/infrastructure/config"
)

type taskRecord struct {
	K         string `gorm:"column:k;primaryKey;size:191"`
	V         []byte `gorm:"column:v;not null"`
	ExpiresAt int64  `gorm:"column:expires_at;not null;index"`
}

func (taskRecord) TableName() string {
	return "deletion_tasks"
}

// MySQLStore backs the task store with a shared database so several proxy
// replicas can feed one sweeper.
type MySQLStore struct {
	db *gorm.DB
}

func NewMySQLStore(cfg config.MySQL) (*MySQLStore, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.Charset)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&taskRecord{}); err != nil {
		return nil, fmt.Errorf("migrate deletion_tasks: %w", err)
	}

	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Put(ctx context.Context, key string, value []byte, expiresAt time.Time) error {
	rec := taskRecord{K: key, V: value, ExpiresAt: expiresAt.UnixMilli()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
}

func (s *MySQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec taskRecord
	err := s.db.WithContext(ctx).Where("k = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get task: %w", err)
	}

	if rec.ExpiresAt <= time.Now().UnixMilli() {
		_ = s.Delete(ctx, key)
		return nil, false, nil
	}
	return rec.V, true, nil
}

func (s *MySQLStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("k = ?", key).Delete(&taskRecord{}).Error
}

func (s *MySQLStore) List(ctx context.Context, prefix string) ([]string, error) {
	now := time.Now().UnixMilli()
	_ = s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&taskRecord{}).Error

	var keys []string
	err := s.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("SUBSTRING(k, 1, ?) = ?", len(prefix), prefix).
		Order("k").
		Pluck("k", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return keys, nil
}

func (s *MySQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
