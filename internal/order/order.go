package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"Isfahan/internal/cart"
	"Isfahan/internal/money"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Items     []cart.LineItem `json:"items"`
	Total     money.Money     `json:"total"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

type SlipItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// PaymentSlip is the printable receipt for an order. Amounts appear in
// USD and, per storefront convention, converted to BDT.
type PaymentSlip struct {
	ID            string      `json:"id"`
	OrderID       string      `json:"orderId"`
	ReceiptNumber string      `json:"receiptNumber"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Amount        money.Money `json:"amount"`
	AmountBDT     money.Money `json:"amountBdt"`
	PaymentDate   time.Time   `json:"paymentDate"`
	Items         []SlipItem  `json:"items"`
}

type Store interface {
	Create(ctx context.Context, o Order, slip PaymentSlip) error
	Get(ctx context.Context, id string) (Order, bool, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	SlipByOrder(ctx context.Context, orderID string) (PaymentSlip, bool, error)
}
