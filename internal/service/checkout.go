package service

import (
	"context"

	"ubertool-rental-billing/internal/billing"
	"ubertool-rental-billing/internal/domain"
	"ubertool-rental-billing/internal/logger"
	"ubertool-rental-billing/internal/repository"
	"ubertool-rental-billing/internal/utils"
)

type checkoutService struct {
	toolRepo repository.ToolRepository
	engine   *billing.Engine
}

func NewCheckoutService(toolRepo repository.ToolRepository, engine *billing.Engine) CheckoutService {
	return &checkoutService{
		toolRepo: toolRepo,
		engine:   engine,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, in CheckoutInput) (*domain.Checkout, error) {
	logger.EnterMethod("checkoutService.Checkout", "tool_code", in.ToolCode, "rental_days", in.RentalDays, "checkout_date", in.CheckoutDate)

	checkoutDate, err := utils.ParseCheckoutDate(in.CheckoutDate)
	if err != nil {
		logger.ExitMethodWithError("checkoutService.Checkout", err)
		return nil, err
	}

	tool, err := s.toolRepo.GetByCode(ctx, in.ToolCode)
	if err != nil {
		logger.ExitMethodWithError("checkoutService.Checkout", err, "tool_code", in.ToolCode)
		return nil, err
	}

	agreement, err := s.engine.Compute(tool.Policy, domain.RentalRequest{
		CheckoutDate:    checkoutDate,
		RentalDayCount:  in.RentalDays,
		DiscountPercent: in.DiscountPercent,
	})
	if err != nil {
		logger.ExitMethodWithError("checkoutService.Checkout", err, "tool_code", in.ToolCode)
		return nil, err
	}

	logger.InfoContext(ctx, "Checkout completed",
		"tool_code", tool.Code,
		"charge_days", agreement.ChargeDays,
		"final_charge", agreement.FinalCharge.StringFixed(2),
	)
	logger.ExitMethod("checkoutService.Checkout")
	return &domain.Checkout{Tool: *tool, Agreement: agreement}, nil
}

func (s *checkoutService) ListTools(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.List(ctx)
}
