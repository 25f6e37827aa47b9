package enum

// PaymentType represents how a receipt was paid
type PaymentType string

const (
	PaymentTypeCash PaymentType = "cash"
	PaymentTypeCard PaymentType = "card"
)

// Valid reports whether the value is a known payment type
func (p PaymentType) Valid() bool {
	return p == PaymentTypeCash || p == PaymentTypeCard
}

func (p PaymentType) String() string {
	return string(p)
}
