package config

import (
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-track-service.com/task-track-service/internal/models"
)

func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("db open failed", zap.Error(err))
	}

	if err := db.AutoMigrate(&model.Task{}); err != nil {
		zap.L().Fatal("migration failed", zap.Error(err))
	}

	return db
}
