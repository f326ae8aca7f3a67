package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

// GormSettingsRepository implements game.SettingsRepository using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

var _ game.SettingsRepository = (*GormSettingsRepository)(nil)

// NewGormSettingsRepository creates a new GORM settings repository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// GetBool returns the stored flag. A missing key reads as false.
func (r *GormSettingsRepository) GetBool(ctx context.Context, key string) (bool, error) {
	var model SettingModel
	result := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, shared.NewPersistenceUnavailableError("read setting", result.Error)
	}

	value, err := strconv.ParseBool(model.Value)
	if err != nil {
		return false, fmt.Errorf("setting %s holds non-boolean value %q", key, model.Value)
	}
	return value, nil
}

// SetBool stores the flag
func (r *GormSettingsRepository) SetBool(ctx context.Context, key string, value bool) error {
	model := &SettingModel{
		Key:   key,
		Value: strconv.FormatBool(value),
	}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return shared.NewPersistenceUnavailableError("write setting", err)
	}
	return nil
}
