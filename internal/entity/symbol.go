package entity

import (
	"time"
)

// Symbol 本地维护的交易对标记
type Symbol struct {
	Id        int64  `gorm:"primaryKey"`
	Base      string `gorm:"uniqueIndex:symbol_idx"`
	Quote     string `gorm:"uniqueIndex:symbol_idx"`
	Mark      string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	MarkNone   = ""
	MarkIgnore = "ignore" // 扫描时跳过
)
