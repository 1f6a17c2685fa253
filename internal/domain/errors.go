package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrToolNotFound    = errors.New("tool not found")

	ErrInvalidRentalDuration  = fmt.Errorf("%w: rental day count must be at least 1", ErrInvalidArgument)
	ErrInvalidDiscountPercent = fmt.Errorf("%w: discount percent must be between 0 and 100 inclusive", ErrInvalidArgument)
	ErrInvalidCheckoutDate    = fmt.Errorf("%w: checkout date must be in MM/DD/YY format", ErrInvalidArgument)
)
