package store

import (
	"time"

	"github.com/craftkit/stencil/pkg/template"
)

// Template is a persisted template record, either a private draft or a
// published marketplace listing.
type Template struct {
	ID           string            `gorm:"primaryKey" json:"id"`
	UserID       string            `gorm:"index" json:"user_id"`
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	Category     template.Category `gorm:"index" json:"category"`
	TemplateType string            `json:"template_type"`
	Content      string            `json:"content"`
	Variables    string            `json:"variables"` // JSON-encoded []template.Variable
	IsPublished  bool              `gorm:"index" json:"is_published"`
	Price        float64           `json:"price"`
	SalesCount   int               `json:"sales_count"`
	Rating       float64           `json:"rating"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Purchase records one completed (simulated) payment.
type Purchase struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"index" json:"user_id"`
	TemplateID string    `gorm:"index" json:"template_id"`
	Amount     float64   `json:"amount"`
	CardLast4  string    `json:"card_last4,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserTemplate grants a user access to a template, either through purchase
// or a free claim.
type UserTemplate struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"index" json:"user_id"`
	TemplateID string    `gorm:"index" json:"template_id"`
	CreatedAt  time.Time `json:"created_at"`
}
