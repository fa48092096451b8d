package cartsync

import "errors"

// ErrItemNotFound is returned when a mutation references a line the mirror
// does not hold.
var ErrItemNotFound = errors.New("cart item not found")

// ErrMutationInFlight is returned when the referenced line already has a
// mutation awaiting confirmation. Conflicting mutations are rejected, not
// queued; the UI is expected to disable the controls meanwhile.
var ErrMutationInFlight = errors.New("mutation already in flight for this item")
