package services

import (
	"errors"
	"fmt"
)

// ErrProductUnavailable is returned when a sale is requested against a
// product that is unknown, not in stock, or already sold out. The operation
// performs no writes.
var ErrProductUnavailable = errors.New("product is not available for sale")

// ConsistencyFault reports a two-step mutation that partially applied: the
// second write failed and the compensating rollback of the first failed too.
// It names the surviving half so the operator can reconcile the ledgers.
type ConsistencyFault struct {
	Op       string
	Survivor string
	Err      error
}

func (e *ConsistencyFault) Error() string {
	return fmt.Sprintf("%s left inconsistent state (%s): %v", e.Op, e.Survivor, e.Err)
}

func (e *ConsistencyFault) Unwrap() error {
	return e.Err
}
