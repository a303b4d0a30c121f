package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"Isfahan/internal/catalog"
	"Isfahan/internal/kvstore"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

type LineItem struct {
	Book     catalog.Book `json:"book"`
	Quantity int          `json:"quantity"`
}

// Notifier receives the storefront's "added to cart" style events. The
// web app showed these as toasts; here the observer decides.
type Notifier interface {
	Notify(title, message string)
}

type LogNotifier struct {
	Log *zap.Logger
}

func (n LogNotifier) Notify(title, message string) {
	n.Log.Info("notification", zap.String("title", title), zap.String("message", message))
}

type NopNotifier struct{}

func (NopNotifier) Notify(string, string) {}

// Engine owns the cart: an ordered list of line items, at most one per
// book id. Every mutation writes the full snapshot to the durable slot.
// Stock counts are advisory only, Add never checks them.
type Engine struct {
	mu     sync.Mutex
	items  []LineItem
	slots  kvstore.Store
	notify Notifier
	log    *zap.Logger
}

func NewEngine(slots kvstore.Store, notify Notifier, log *zap.Logger) *Engine {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Engine{slots: slots, notify: notify, log: log}
}

// Hydrate loads the persisted snapshot. A missing or malformed snapshot
// leaves the cart empty; malformed data is logged, never returned as an
// error.
func (e *Engine) Hydrate(ctx context.Context) error {
	raw, ok, err := e.slots.Get(ctx, kvstore.CartSlot)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	items, err := decodeSnapshot(raw)
	if err != nil {
		if e.log != nil {
			e.log.Warn("discarding malformed cart snapshot", zap.Error(err))
		}
		return nil
	}

	e.mu.Lock()
	e.items = items
	e.mu.Unlock()
	return nil
}

// Add merges by book id: an existing line keeps its first-seen Book and
// gains quantity, a new book is appended at the end.
func (e *Engine) Add(ctx context.Context, b catalog.Book, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	e.mu.Lock()
	merged := false
	for i := range e.items {
		if e.items[i].Book.ID == b.ID {
			e.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		e.items = append(e.items, LineItem{Book: b, Quantity: quantity})
	}
	err := e.persistLocked(ctx)
	e.mu.Unlock()

	e.notify.Notify("Added to cart", b.Title+" has been added to your cart.")
	return err
}

// Remove drops the line for the given book id. Removing an absent id is
// a no-op, not an error.
func (e *Engine) Remove(ctx context.Context, bookID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].Book.ID == bookID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			break
		}
	}
	return e.persistLocked(ctx)
}

// UpdateQuantity sets the line's quantity outright. A quantity of zero or
// less removes the line; an absent id is silently ignored.
func (e *Engine) UpdateQuantity(ctx context.Context, bookID string, quantity int) error {
	if quantity <= 0 {
		return e.Remove(ctx, bookID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].Book.ID == bookID {
			e.items[i].Quantity = quantity
			break
		}
	}
	return e.persistLocked(ctx)
}

func (e *Engine) Clear(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = nil
	return e.persistLocked(ctx)
}

// Items returns a copy of the cart in insertion order.
func (e *Engine) Items() []LineItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]LineItem, len(e.items))
	copy(out, e.items)
	return out
}

// Total is recomputed from current state on every call.
func (e *Engine) Total() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := decimal.Zero
	for _, it := range e.items {
		total = total.Add(it.Book.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func (e *Engine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, it := range e.items {
		count += it.Quantity
	}
	return count
}

func (e *Engine) persistLocked(ctx context.Context) error {
	raw, err := encodeSnapshot(e.items)
	if err != nil {
		return err
	}
	return e.slots.Set(ctx, kvstore.CartSlot, raw)
}
