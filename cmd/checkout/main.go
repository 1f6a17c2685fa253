package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"ubertool-rental-billing/internal/billing"
	"ubertool-rental-billing/internal/config"
	"ubertool-rental-billing/internal/logger"
	"ubertool-rental-billing/internal/repository/memory"
	"ubertool-rental-billing/internal/service"
	"ubertool-rental-billing/internal/utils"
)

func main() {
	configPath := flag.String("config", "", "Optional path to configuration file")
	toolCode := flag.String("tool", "", "Tool code, e.g. LADW")
	days := flag.Int("days", 1, "Rental day count")
	discount := flag.String("discount", "0", "Discount percent (0-100)")
	date := flag.String("date", "", "Checkout date as MM/DD/YY")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	pct, err := decimal.NewFromString(*discount)
	if err != nil {
		log.Fatalf("Invalid discount %q: %v", *discount, err)
	}

	tools, err := cfg.Catalog.SeedTools()
	if err != nil {
		log.Fatalf("Invalid catalog seed: %v", err)
	}
	if len(tools) == 0 {
		tools = memory.DefaultTools
	}

	svc := service.NewCheckoutService(memory.NewToolRepository(tools), billing.NewEngine())
	res, err := svc.Checkout(context.Background(), service.CheckoutInput{
		ToolCode:        *toolCode,
		RentalDays:      *days,
		DiscountPercent: pct,
		CheckoutDate:    *date,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "checkout failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(utils.FormatAgreement(*res))
}
