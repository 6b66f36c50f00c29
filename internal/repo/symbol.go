package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KNICEX/amplitude-scanner/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSymbolNotFound 交易对从未被标记过
var ErrSymbolNotFound = errors.New("symbol not found")

type SymbolRepo interface {
	FindByMark(ctx context.Context, mark string) ([]entity.Symbol, error)
	// FindByBaseAndQuote 没有记录时返回 ErrSymbolNotFound
	FindByBaseAndQuote(ctx context.Context, base, quote string) (entity.Symbol, error)
	// SetMark 不存在时插入
	SetMark(ctx context.Context, base, quote, mark string) error
}

type symbolRepo struct {
	db *gorm.DB
}

func NewSymbolRepo(db *gorm.DB) SymbolRepo {
	return &symbolRepo{
		db: db,
	}
}

func (repo *symbolRepo) FindByMark(ctx context.Context, mark string) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	err := repo.db.WithContext(ctx).Where("mark = ?", mark).Find(&symbols).Error
	if err != nil {
		return nil, err
	}
	return symbols, nil
}

func (repo *symbolRepo) FindByBaseAndQuote(ctx context.Context, base, quote string) (entity.Symbol, error) {
	var symbols []entity.Symbol
	err := repo.db.WithContext(ctx).
		Where(&entity.Symbol{Base: base, Quote: quote}).
		Limit(1).
		Find(&symbols).Error
	if err != nil {
		return entity.Symbol{}, err
	}
	if len(symbols) == 0 {
		return entity.Symbol{}, fmt.Errorf("%s%s: %w", base, quote, ErrSymbolNotFound)
	}
	return symbols[0], nil
}

func (repo *symbolRepo) SetMark(ctx context.Context, base, quote, mark string) error {
	now := time.Now()
	symbol := entity.Symbol{
		Base:      base,
		Quote:     quote,
		Mark:      mark,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "base"}, {Name: "quote"}},
		DoUpdates: clause.AssignmentColumns([]string{"mark", "updated_at"}),
	}).Create(&symbol).Error
}
