package persistence

import (
	"time"

	"gorm.io/datatypes"
)

// SaveSlotModel represents the save_slots table. One row per named slot.
type SaveSlotModel struct {
	Slot      string         `gorm:"column:slot;primaryKey;not null"`
	GameID    string         `gorm:"column:game_id"`
	TeamID    string         `gorm:"column:team_id;not null"`
	Round     int            `gorm:"column:round;not null"`
	State     datatypes.JSON `gorm:"column:state;not null"` // serialized game.GameState
	SavedAt   time.Time      `gorm:"column:saved_at;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (SaveSlotModel) TableName() string {
	return "save_slots"
}

// SettingModel represents the settings table
type SettingModel struct {
	Key       string    `gorm:"column:setting_key;primaryKey;not null"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (SettingModel) TableName() string {
	return "settings"
}

// AllModels lists every model the schema needs, in migration order
func AllModels() []interface{} {
	return []interface{}{
		&SaveSlotModel{},
		&SettingModel{},
	}
}
