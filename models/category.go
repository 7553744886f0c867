package models

// Category groups players of similar skill who challenge one another.
type Category struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"` // label, e.g. "A"
	DisplayName string `json:"display_name,omitempty"`
	Slug        string `gorm:"index" json:"slug,omitempty"`
	Description string `json:"description,omitempty"`

	// Ordered ranking-event definitions for the category
	Events []CategoryEvent `json:"events,omitempty" gorm:"foreignKey:CategoryID"`

	// Roster of member players
	Players []Player `json:"players,omitempty" gorm:"many2many:category_players"`

	Timestamps
}

// CategoryEvent is one scoring rule of a category (e.g. victory: +30).
type CategoryEvent struct {
	ID         string `gorm:"primaryKey;type:uuid" json:"id"`
	CategoryID string `gorm:"not null;index" json:"category_id"`
	Name       string `gorm:"not null" json:"name"`
	Operation  string `gorm:"type:varchar(1)" json:"operation"` // "+" or "-"
	Value      int    `json:"value"`
	SortOrder  int    `json:"sort_order" gorm:"column:sort_order;default:0"`
}
