package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"Isfahan/internal/cart"
	"Isfahan/internal/mailer"
	"Isfahan/internal/money"
	"Isfahan/internal/session"
)

var ErrEmptyCart = errors.New("cart is empty")

// Service turns the current cart into an order. No payment happens and
// no inventory is reserved; the "receipt email" is simulated.
type Service struct {
	Orders Store
	Cart   *cart.Engine
	Mail   mailer.Mailer
	Log    *zap.Logger
}

type CheckoutResult struct {
	Order Order       `json:"order"`
	Slip  PaymentSlip `json:"slip"`

	// EmailSent is false when the simulated receipt mail failed; the
	// order stands regardless.
	EmailSent bool `json:"emailSent"`
}

func (s *Service) Checkout(ctx context.Context, who session.Identity) (CheckoutResult, error) {
	items := s.Cart.Items()
	if len(items) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}

	total := money.USD(s.Cart.Total())
	now := time.Now().UTC()

	o := Order{
		ID:        "o_" + uuid.NewString(),
		UserID:    who.ID,
		Items:     items,
		Total:     total,
		Status:    StatusCompleted,
		CreatedAt: now,
	}

	slip := PaymentSlip{
		ID:            "slip_" + uuid.NewString(),
		OrderID:       o.ID,
		ReceiptNumber: receiptNumber(),
		CustomerName:  who.Name,
		CustomerEmail: who.Email,
		Amount:        total,
		AmountBDT:     total.InBDT(),
		PaymentDate:   now,
		Items:         slipItems(items),
	}

	if err := s.Orders.Create(ctx, o, slip); err != nil {
		return CheckoutResult{}, err
	}

	if err := s.Cart.Clear(ctx); err != nil {
		return CheckoutResult{}, err
	}

	sent := true
	if err := s.sendReceipt(ctx, who, o, slip); err != nil {
		sent = false
		if s.Log != nil {
			s.Log.Warn("receipt email failed", zap.Error(err), zap.String("order_id", o.ID))
		}
	}

	return CheckoutResult{Order: o, Slip: slip, EmailSent: sent}, nil
}

func (s *Service) sendReceipt(ctx context.Context, who session.Identity, o Order, slip PaymentSlip) error {
	if s.Mail == nil {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your order, %s!\n\n", who.Name)
	fmt.Fprintf(&b, "Receipt %s for order %s\n", slip.ReceiptNumber, o.ID)
	for _, it := range slip.Items {
		fmt.Fprintf(&b, "  %dx %s @ USD %s\n", it.Quantity, it.Name, it.Price.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: %s (%s)\n", slip.Amount, slip.AmountBDT)

	return s.Mail.Send(ctx, who.Email, "Your Isfahan order receipt", b.String())
}

func slipItems(items []cart.LineItem) []SlipItem {
	out := make([]SlipItem, 0, len(items))
	for _, it := range items {
		out = append(out, SlipItem{
			Name:     it.Book.Title,
			Quantity: it.Quantity,
			Price:    it.Book.Price,
		})
	}
	return out
}

func receiptNumber() string {
	return "RCP-" + strings.ToUpper(uuid.NewString()[:8])
}
