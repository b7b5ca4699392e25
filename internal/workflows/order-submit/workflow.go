// Package ordersubmit implements the order composition and submission
// workflow: COMPOSING -> SUBMITTING -> CONFIRMED, with failures returning to
// COMPOSING with every entered field intact.
package ordersubmit

import (
	"context"

	"laundry-king/internal/cart"
	stderrors "laundry-king/internal/common/errors"
	"laundry-king/internal/common/logger"
	"laundry-king/internal/common/metrics"
	autolocate "laundry-king/internal/workflows/auto-locate"
)

// Workflow owns the order phone field and reads the quantity store and
// location resolver at submit time. Not safe for concurrent use.
type Workflow struct {
	store     *cart.Store
	location  *autolocate.Resolver
	submitter Submitter
	logger    logger.Logger
	notify    func(string)

	state        State
	phone        string
	confirmation *Payload
}

func NewWorkflow(deps Dependencies) *Workflow {
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	notify := deps.Notify
	if notify == nil {
		notify = func(string) {}
	}

	return &Workflow{
		store:     deps.Store,
		location:  deps.Location,
		submitter: deps.Submitter,
		logger:    log.WithFields(map[string]interface{}{"workflow": "order-submit"}),
		notify:    notify,
		state:     StateComposing,
	}
}

func (w *Workflow) State() State {
	return w.state
}

// Submitting reports the in-flight guard; the UI disables the submit action
// while true.
func (w *Workflow) Submitting() bool {
	return w.state == StateSubmitting
}

func (w *Workflow) Phone() string {
	return w.phone
}

// SetPhone stores the order contact phone. Unlike the login flow there is no
// digit filtering or length check here; the two phone fields are independent
// and independently validated.
func (w *Workflow) SetPhone(phone string) {
	w.phone = phone
}

// Confirmation returns the server-returned payload after a successful
// submission, or nil.
func (w *Workflow) Confirmation() *Payload {
	return w.confirmation
}

// BuildPayload assembles the order from the current selection. Zero-qty
// items are excluded; the total comes from the store's single computation
// over the full catalog, which zero terms cannot change.
func (w *Workflow) BuildPayload() Payload {
	counts := w.store.Counts()
	items := []Item{}
	for _, ci := range w.store.Catalog().Items() {
		qty := counts[ci.ID]
		if qty == 0 {
			continue
		}
		items = append(items, Item{Name: ci.Name, Qty: qty, Price: ci.Price})
	}

	return Payload{
		Items:    items,
		Phone:    w.phone,
		Location: w.location.Address(),
		Total:    w.store.Total(),
	}
}

// Submit builds the payload and issues the order-creation request. A
// zero-item order is allowed. On failure the workflow returns to COMPOSING
// with quantities, phone and location untouched so the user can retry.
func (w *Workflow) Submit(ctx context.Context) error {
	if w.state != StateComposing {
		return nil
	}

	payload := w.BuildPayload()
	w.state = StateSubmitting

	confirmation, err := w.submitter.SubmitOrder(ctx, payload)
	if err != nil {
		w.state = StateComposing
		w.logger.Error("failed to submit order", map[string]interface{}{
			"items": len(payload.Items),
			"total": payload.Total,
			"error": err.Error(),
		})
		metrics.OrdersSubmitted.WithLabelValues(metrics.StatusFailed).Inc()
		stdErr := stderrors.NewOrderSubmitFailedError(err)
		w.notify(stdErr.Message)
		return stdErr
	}

	w.confirmation = confirmation
	w.clearOrderFields()
	w.state = StateConfirmed
	metrics.OrdersSubmitted.WithLabelValues(metrics.StatusOK).Inc()
	w.logger.Info("order submitted", map[string]interface{}{
		"items": confirmation.ItemCount(),
		"total": confirmation.Total,
	})
	return nil
}

// StartNewOrder returns from CONFIRMED to a fresh COMPOSING state. The
// fields were already cleared on success; clearing again keeps both reset
// paths identical.
func (w *Workflow) StartNewOrder() {
	if w.state != StateConfirmed {
		return
	}
	w.clearOrderFields()
	w.confirmation = nil
	w.state = StateComposing
}

func (w *Workflow) clearOrderFields() {
	w.store.Reset()
	w.phone = ""
	w.location.Reset()
}
