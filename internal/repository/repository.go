package repository

import (
	"context"

	"ubertool-rental-billing/internal/domain"
)

// ToolRepository is the tool catalog. GetByCode returns domain.ErrToolNotFound on a miss.
type ToolRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Tool, error)
	List(ctx context.Context) ([]domain.Tool, error)
}
