package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"ubertool-rental-billing/internal/domain"
	"ubertool-rental-billing/internal/logger"
	"ubertool-rental-billing/internal/service"
	"ubertool-rental-billing/internal/utils"
)

// CheckoutHandler exposes the checkout service over HTTP
type CheckoutHandler struct {
	svc service.CheckoutService
}

func NewCheckoutHandler(svc service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

type checkoutRequest struct {
	ToolCode        string          `json:"tool_code"`
	RentalDays      int             `json:"rental_days"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	CheckoutDate    string          `json:"checkout_date"`
}

type agreementResponse struct {
	ToolCode          string `json:"tool_code"`
	ToolType          string `json:"tool_type"`
	ToolBrand         string `json:"tool_brand"`
	RentalDays        int    `json:"rental_days"`
	CheckoutDate      string `json:"checkout_date"`
	DueDate           string `json:"due_date"`
	DailyCharge       string `json:"daily_charge"`
	ChargeDays        int    `json:"charge_days"`
	PreDiscountCharge string `json:"pre_discount_charge"`
	DiscountPercent   string `json:"discount_percent"`
	DiscountAmount    string `json:"discount_amount"`
	FinalCharge       string `json:"final_charge"`
}

type toolResponse struct {
	Code          string `json:"code"`
	Type          string `json:"type"`
	Brand         string `json:"brand"`
	DailyCharge   string `json:"daily_charge"`
	WeekdayCharge bool   `json:"weekday_charge"`
	WeekendCharge bool   `json:"weekend_charge"`
	HolidayCharge bool   `json:"holiday_charge"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toAgreementResponse(c *domain.Checkout) agreementResponse {
	a := c.Agreement
	return agreementResponse{
		ToolCode:          c.Tool.Code,
		ToolType:          c.Tool.Type,
		ToolBrand:         c.Tool.Brand,
		RentalDays:        a.RentalDayCount,
		CheckoutDate:      a.CheckoutDate.Format("2006-01-02"),
		DueDate:           a.DueDate.Format("2006-01-02"),
		DailyCharge:       c.Tool.Policy.DailyCharge.StringFixed(2),
		ChargeDays:        a.ChargeDays,
		PreDiscountCharge: a.PreDiscountCharge.StringFixed(2),
		DiscountPercent:   a.DiscountPercent.String(),
		DiscountAmount:    a.DiscountAmount.StringFixed(2),
		FinalCharge:       a.FinalCharge.StringFixed(2),
	}
}

// HandleCheckout handles POST /api/v1/checkout
func (h *CheckoutHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.svc.Checkout(r.Context(), service.CheckoutInput{
		ToolCode:        req.ToolCode,
		RentalDays:      req.RentalDays,
		DiscountPercent: req.DiscountPercent,
		CheckoutDate:    req.CheckoutDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAgreementResponse(res))
}

// HandleAgreementText handles GET /api/v1/checkout/{code}/agreement and renders the printed agreement
func (h *CheckoutHandler) HandleAgreementText(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	days, err := strconv.Atoi(q.Get("days"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "days must be an integer"})
		return
	}
	discount := decimal.Zero
	if raw := q.Get("discount"); raw != "" {
		discount, err = decimal.NewFromString(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "discount must be a number"})
			return
		}
	}

	res, err := h.svc.Checkout(r.Context(), service.CheckoutInput{
		ToolCode:        mux.Vars(r)["code"],
		RentalDays:      days,
		DiscountPercent: discount,
		CheckoutDate:    q.Get("date"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(utils.FormatAgreement(*res)))
}

// HandleListTools handles GET /api/v1/tools
func (h *CheckoutHandler) HandleListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.svc.ListTools(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]toolResponse, 0, len(tools))
	for _, t := range tools {
		out = append(out, toolResponse{
			Code:          t.Code,
			Type:          t.Type,
			Brand:         t.Brand,
			DailyCharge:   t.Policy.DailyCharge.StringFixed(2),
			WeekdayCharge: t.Policy.WeekdayBillable,
			WeekendCharge: t.Policy.WeekendBillable,
			HolidayCharge: t.Policy.HolidayBillable,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrToolNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		logger.ErrorContext(r.Context(), "Checkout request failed", "error", err, "request_id", RequestIDFrom(r.Context()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// RegisterRoutes registers the checkout HTTP endpoints
func RegisterRoutes(router *mux.Router, svc service.CheckoutService) {
	handler := NewCheckoutHandler(svc)
	router.Use(RequestIDMiddleware, LoggingMiddleware)
	router.HandleFunc("/api/v1/checkout", handler.HandleCheckout).Methods("POST")
	router.HandleFunc("/api/v1/checkout/{code}/agreement", handler.HandleAgreementText).Methods("GET")
	router.HandleFunc("/api/v1/tools", handler.HandleListTools).Methods("GET")
}
