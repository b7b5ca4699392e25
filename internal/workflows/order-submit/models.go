package ordersubmit

import (
	"context"

	"laundry-king/internal/cart"
	"laundry-king/internal/common/logger"
	autolocate "laundry-king/internal/workflows/auto-locate"
)

// State is the submission workflow state.
type State string

const (
	StateComposing  State = "COMPOSING"
	StateSubmitting State = "SUBMITTING"
	StateConfirmed  State = "CONFIRMED"
)

// Item is one selected line of an order payload.
type Item struct {
	Name  string `json:"item"`
	Qty   int    `json:"qty"`
	Price int    `json:"price"`
}

// Payload is the submission-time order value. Items excludes every catalog
// entry with qty 0; Total covers the whole selection.
type Payload struct {
	Items    []Item `json:"items"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Total    int    `json:"total"`
}

// ItemCount sums the quantities of the payload, as shown on the
// confirmation view.
func (p Payload) ItemCount() int {
	n := 0
	for _, item := range p.Items {
		n += item.Qty
	}
	return n
}

// Submitter is the backend contract for order creation. The returned payload
// is the server's confirmation echo and is displayed unmodified.
type Submitter interface {
	SubmitOrder(ctx context.Context, payload Payload) (*Payload, error)
}

// Dependencies wires the workflow to its collaborators.
type Dependencies struct {
	Store     *cart.Store
	Location  *autolocate.Resolver
	Submitter Submitter
	Logger    logger.Logger

	// Notify surfaces a user-visible failure message. Optional.
	Notify func(message string)
}
