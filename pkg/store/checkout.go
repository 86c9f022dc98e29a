package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Card carries the captured payment form. Only the last four digits are
// ever stored; there is no real processor behind this.
type Card struct {
	HolderName string
	Number     string
	Expiry     string
	CVC        string
}

func (c Card) validate() error {
	if strings.TrimSpace(c.HolderName) == "" {
		return errors.New("cardholder name is required")
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, c.Number)
	if len(digits) < 13 || len(digits) > 19 {
		return errors.New("card number must have 13 to 19 digits")
	}
	if len(c.CVC) < 3 || len(c.CVC) > 4 {
		return errors.New("CVC must have 3 or 4 digits")
	}
	return nil
}

func (c Card) last4() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, c.Number)
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// Checkout records a simulated purchase: it validates the card, writes a
// Purchase with the masked number, bumps the template's sales counter, and
// grants the buyer a UserTemplate. Free templates skip card validation.
func (s *Store) Checkout(ctx context.Context, userID, templateID string, card Card) (*Purchase, error) {
	t, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	var p *Purchase
	if t.Price > 0 {
		if err := card.validate(); err != nil {
			return nil, fmt.Errorf("payment rejected: %w", err)
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p = &Purchase{
			ID:         uuid.NewString(),
			UserID:     userID,
			TemplateID: templateID,
			Amount:     t.Price,
		}
		if t.Price > 0 {
			p.CardLast4 = card.last4()
		}
		if err := tx.Create(p).Error; err != nil {
			return fmt.Errorf("failed to record purchase: %w", err)
		}

		if err := tx.Model(&Template{}).Where("id = ?", templateID).
			Update("sales_count", gorm.Expr("sales_count + 1")).Error; err != nil {
			return fmt.Errorf("failed to update sales count: %w", err)
		}

		grant := &UserTemplate{
			ID:         uuid.NewString(),
			UserID:     userID,
			TemplateID: templateID,
		}
		if err := tx.Create(grant).Error; err != nil {
			return fmt.Errorf("failed to grant template access: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("checkout complete",
		zap.String("user_id", userID),
		zap.String("template_id", templateID),
		zap.Float64("amount", t.Price))
	return p, nil
}
