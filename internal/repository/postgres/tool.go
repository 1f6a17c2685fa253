package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ubertool-rental-billing/internal/domain"
	"ubertool-rental-billing/internal/logger"
	"ubertool-rental-billing/internal/repository"
)

const toolColumns = `code, tool_type, brand, daily_charge, weekday_charge, weekend_charge, holiday_charge`

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTool(row rowScanner) (*domain.Tool, error) {
	t := &domain.Tool{}
	err := row.Scan(&t.Code, &t.Type, &t.Brand, &t.Policy.DailyCharge,
		&t.Policy.WeekdayBillable, &t.Policy.WeekendBillable, &t.Policy.HolidayBillable)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *toolRepository) GetByCode(ctx context.Context, code string) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE code = $1`
	logger.DatabaseCall("GetByCode", query, "code", code)

	t, err := scanTool(r.db.QueryRowContext(ctx, query, code))
	if errors.Is(err, sql.ErrNoRows) {
		logger.DatabaseResult("GetByCode", 0, nil, "code", code)
		return nil, fmt.Errorf("%w: %s", domain.ErrToolNotFound, code)
	}
	if err != nil {
		logger.DatabaseResult("GetByCode", 0, err, "code", code)
		return nil, err
	}
	logger.DatabaseResult("GetByCode", 1, nil, "code", code)
	return t, nil
}

func (r *toolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools ORDER BY code`
	logger.DatabaseCall("List", query)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("List", 0, err)
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, *t)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("List", int64(len(tools)), err)
		return nil, err
	}
	logger.DatabaseResult("List", int64(len(tools)), nil)
	return tools, nil
}
