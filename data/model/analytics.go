package model

import "time"

// UserActivity records one user action on a page.
type UserActivity struct {
	Base
	UserID          uint    `gorm:"not null;index" json:"user_id"`
	Action          string  `gorm:"size:100;not null" json:"action"`
	PageURL         *string `gorm:"size:500" json:"page_url"`
	SessionDuration *int    `json:"session_duration"`
	IPAddress       *string `gorm:"size:45" json:"ip_address"`
}

func (UserActivity) TableName() string { return "user_activities" }

// ItemView aggregates the views of one item by one user. Anonymous views
// share the row with a NULL user.
type ItemView struct {
	Base
	ItemID       uint      `gorm:"not null;index" json:"item_id"`
	UserID       *uint     `gorm:"index" json:"user_id"`
	ViewCount    int       `gorm:"not null" json:"view_count"`
	LastViewedAt time.Time `json:"last_viewed_at"`
}

func (ItemView) TableName() string { return "item_views" }

// PopularItem is one row of the popular items report.
type PopularItem struct {
	ItemID      uint  `json:"item_id"`
	TotalViews  int64 `json:"total_views"`
	UniqueViews int64 `json:"unique_views"`
}

// AnalyticsSummary is the analytics overview.
type AnalyticsSummary struct {
	TotalUserActivities int64         `json:"total_user_activities"`
	TotalItemViews      int64         `json:"total_item_views"`
	TopPopularItems     []PopularItem `json:"top_popular_items"`
}
