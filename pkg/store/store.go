// Package store persists template, purchase, and user-template records in
// a local sqlite database.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/craftkit/stencil/pkg/template"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Store wraps the sqlite-backed record store.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an ephemeral store.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&Template{}, &Purchase{}, &UserTemplate{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// ListFilter narrows template listings.
type ListFilter struct {
	UserID        string
	Category      template.Category
	PublishedOnly bool
}

// ListTemplates returns templates matching the filter, newest first.
func (s *Store) ListTemplates(ctx context.Context, f ListFilter) ([]Template, error) {
	q := s.db.WithContext(ctx).Model(&Template{}).Order("created_at DESC")
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}

	var out []Template
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return out, nil
}

// GetTemplate returns one template by ID.
func (s *Store) GetTemplate(ctx context.Context, id string) (*Template, error) {
	var t Template
	err := s.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &t, nil
}

// CreateTemplate persists a new template record, assigning an ID when
// absent.
func (s *Store) CreateTemplate(ctx context.Context, t *Template) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	s.log.Info("template created",
		zap.String("id", t.ID),
		zap.String("category", string(t.Category)))
	return nil
}

// UpdateTemplate applies the given column updates to a template.
func (s *Store) UpdateTemplate(ctx context.Context, id string, updates map[string]any) error {
	res := s.db.WithContext(ctx).Model(&Template{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update template: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteTemplate removes a template record.
func (s *Store) DeleteTemplate(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&Template{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete template: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	return nil
}

// Publish marks a template as listed with the given price.
func (s *Store) Publish(ctx context.Context, id string, price float64) error {
	return s.UpdateTemplate(ctx, id, map[string]any{
		"is_published": true,
		"price":        price,
	})
}

// Unpublish delists a template.
func (s *Store) Unpublish(ctx context.Context, id string) error {
	return s.UpdateTemplate(ctx, id, map[string]any{"is_published": false})
}

// ListUserTemplates returns the templates a user has access to.
func (s *Store) ListUserTemplates(ctx context.Context, userID string) ([]UserTemplate, error) {
	var out []UserTemplate
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user templates: %w", err)
	}
	return out, nil
}

// ListPurchases returns a user's purchase history, newest first.
func (s *Store) ListPurchases(ctx context.Context, userID string) ([]Purchase, error) {
	var out []Purchase
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return out, nil
}
