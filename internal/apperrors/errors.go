package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates a negative or otherwise unusable gross amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidInstallmentCount indicates an installment count below one.
var ErrInvalidInstallmentCount = errors.New("invalid installment count")

// ErrScheduleConflict indicates that a reconciliation would delete or
// corrupt an already paid installment.
var ErrScheduleConflict = errors.New("schedule conflicts with paid installments")

// ErrAlreadyPaid indicates an attempt to pay an installment twice.
var ErrAlreadyPaid = errors.New("installment already paid")

// ErrMethodNotFound indicates that the referenced payment method does not exist.
var ErrMethodNotFound = errors.New("payment method not found")

// ErrHasPaidInstallments indicates a destructive operation on a transaction
// that still owns paid installments.
var ErrHasPaidInstallments = errors.New("transaction has paid installments")
