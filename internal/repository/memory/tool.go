package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"ubertool-rental-billing/internal/domain"
	"ubertool-rental-billing/internal/repository"
)

// DefaultTools is the catalog used when no seed list is configured.
var DefaultTools = []domain.Tool{
	{Code: "CHNS", Type: "Chainsaw", Brand: "Stihl", Policy: domain.ChargePolicy{
		DailyCharge: decimal.RequireFromString("1.49"), WeekdayBillable: true, HolidayBillable: true}},
	{Code: "LADW", Type: "Ladder", Brand: "Werner", Policy: domain.ChargePolicy{
		DailyCharge: decimal.RequireFromString("1.99"), WeekdayBillable: true, WeekendBillable: true}},
	{Code: "JAKD", Type: "Jackhammer", Brand: "DeWalt", Policy: domain.ChargePolicy{
		DailyCharge: decimal.RequireFromString("2.99"), WeekdayBillable: true}},
	{Code: "JAKR", Type: "Jackhammer", Brand: "Ridgid", Policy: domain.ChargePolicy{
		DailyCharge: decimal.RequireFromString("2.99"), WeekdayBillable: true}},
}

// toolRepository is a read-only catalog. The map is never written after construction.
type toolRepository struct {
	tools map[string]domain.Tool
}

func NewToolRepository(tools []domain.Tool) repository.ToolRepository {
	m := make(map[string]domain.Tool, len(tools))
	for _, t := range tools {
		m[t.Code] = t
	}
	return &toolRepository{tools: m}
}

func (r *toolRepository) GetByCode(ctx context.Context, code string) (*domain.Tool, error) {
	t, ok := r.tools[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrToolNotFound, code)
	}
	return &t, nil
}

func (r *toolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	tools := make([]domain.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		tools = append(tools, t)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Code < tools[j].Code })
	return tools, nil
}
