package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks the role required for the action.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidPeriod indicates a report period selector outside daily/weekly/monthly.
var ErrInvalidPeriod = errors.New("invalid report period")

// ErrInvalidRange indicates a date range whose end precedes its start.
var ErrInvalidRange = errors.New("invalid date range")

// ErrOpenShiftExists indicates a clock-in attempt while a shift is already open.
var ErrOpenShiftExists = errors.New("shift already open")

// ErrNoOpenShift indicates a clock-out attempt with no open shift.
var ErrNoOpenShift = errors.New("no open shift")
