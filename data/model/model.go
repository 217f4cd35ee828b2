// Package model holds the gorm models of the three databases.
package model

import "time"

// Base is embedded by every model.
type Base struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CursorValue returns the value of the sort field used to build page
// boundaries. Only id is sortable.
func (b Base) CursorValue(field string) any {
	if field == "id" {
		return int64(b.ID)
	}
	return nil
}

// MainModels are migrated into the main database.
func MainModels() []any {
	return []any{&Item{}, &User{}}
}

// AnalyticsModels are migrated into the analytics database.
func AnalyticsModels() []any {
	return []any{&UserActivity{}, &ItemView{}}
}

// LogModels are migrated into the logs database.
func LogModels() []any {
	return []any{&ApplicationLog{}, &APILog{}}
}
