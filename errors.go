package slotmap

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned by Insert when every slot is either live or
// permanently retired and no free index remains. The table is left
// unchanged; the caller decides whether to free capacity and retry, grow a
// replacement table, or propagate.
var ErrOverflow = errors.New("slotmap: table at capacity")

// ErrInvalidCapacity indicates a construction capacity that is negative or
// does not fit the chosen index type.
type ErrInvalidCapacity struct {
	Capacity int
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("slotmap: invalid capacity: %d", e.Capacity)
}
