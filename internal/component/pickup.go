package component

import "go-space-marine/internal/defs"

// Pickup — падающий бонус.
type Pickup struct {
	Kind defs.PickupKind
}
