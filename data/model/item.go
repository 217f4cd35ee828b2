package model

// Item is a catalog entry. The title column is exposed as "name".
type Item struct {
	Base
	Title       string  `gorm:"size:255;not null;index" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	IsActive    bool    `gorm:"not null" json:"is_active"`
}

func (Item) TableName() string { return "items" }
