package service

import "errors"

var (
	ErrInvalidRequest             = errors.New("invalid request")
	ErrTaxCalculationNotFound     = errors.New("tax calculation not found")
	ErrTaxCalculationAlreadyFinal = errors.New("tax calculation is already final")
	ErrTaxRateNotAfterActive      = errors.New("effective_from must be after the active rate's effective_from")
)
