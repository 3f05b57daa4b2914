package errs

import "errors"

var ErrInvalidToken = errors.New("invalid token")
var ErrOrderNotFound = errors.New("order not found")
var ErrBookingUnavailable = errors.New("booking service unavailable")
