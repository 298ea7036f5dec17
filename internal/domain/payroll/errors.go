package payroll

import "errors"

var ErrInvalidPeriod = errors.New("pay period must be YYYY-MM")
