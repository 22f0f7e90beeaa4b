package booking

import "errors"

// ErrSlotTaken is returned when the requested interval collides with a busy
// window at booking time. The client picked from a stale availability list.
var ErrSlotTaken = errors.New("requested slot is no longer available")
