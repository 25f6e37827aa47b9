package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a receipt was paid.
type PaymentMethod string

const (
	MethodCash PaymentMethod = "cash"
	MethodCard PaymentMethod = "card"
)

// Valid reports whether the method is one of the supported payment methods.
func (m PaymentMethod) Valid() bool {
	return m == MethodCash || m == MethodCard
}

// Validation errors returned by Compute.
var (
	ErrInvalidQuantity      = errors.New("ledger: quantity must be greater than zero")
	ErrInvalidPrice         = errors.New("ledger: unit price must not be negative")
	ErrNegativeTendered     = errors.New("ledger: tendered amount must not be negative")
	ErrUnknownPaymentMethod = errors.New("ledger: unknown payment method")
)

// Line is one purchased product as submitted by the caller.
type Line struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
}

// ComputedLine is a Line with its derived total attached.
type ComputedLine struct {
	Line
	Total decimal.Decimal
}

// Computation holds the derived monetary values for one receipt.
//
// Rest is Tendered minus Total and goes negative when the payment does not
// cover the receipt. Underpayment is deliberately not an error here: the
// caller decides how to react to a negative rest.
type Computation struct {
	Lines    []ComputedLine
	Total    decimal.Decimal
	Method   PaymentMethod
	Tendered decimal.Decimal
	Rest     decimal.Decimal
}

// Compute derives per-line totals, the receipt total and the change due from
// the submitted lines and payment. It is pure: no I/O, no shared state, safe
// to call from any number of goroutines.
func Compute(lines []Line, method PaymentMethod, tendered decimal.Decimal) (*Computation, error) {
	if !method.Valid() {
		return nil, ErrUnknownPaymentMethod
	}
	if tendered.IsNegative() {
		return nil, ErrNegativeTendered
	}

	computed := make([]ComputedLine, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		if !line.Quantity.IsPositive() {
			return nil, ErrInvalidQuantity
		}
		if line.UnitPrice.IsNegative() {
			return nil, ErrInvalidPrice
		}

		lineTotal := line.UnitPrice.Mul(line.Quantity)
		total = total.Add(lineTotal)
		computed = append(computed, ComputedLine{Line: line, Total: lineTotal})
	}

	return &Computation{
		Lines:    computed,
		Total:    total,
		Method:   method,
		Tendered: tendered,
		Rest:     tendered.Sub(total),
	}, nil
}
