package repo

import (
	"github.com/KNICEX/amplitude-scanner/internal/entity"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Symbol{})
}
