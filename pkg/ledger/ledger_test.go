package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCompute_LineTotals(t *testing.T) {
	lines := []Line{
		{Name: "Apple", UnitPrice: dec("5"), Quantity: dec("10")},
		{Name: "Banana", UnitPrice: dec("13.5"), Quantity: dec("3")},
	}

	c, err := Compute(lines, MethodCash, dec("100"))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if got := c.Lines[0].Total.String(); got != "50" {
		t.Errorf("line 0 total = %s, want 50", got)
	}
	if got := c.Lines[1].Total.String(); got != "40.5" {
		t.Errorf("line 1 total = %s, want 40.5", got)
	}
	if got := c.Total.String(); got != "90.5" {
		t.Errorf("total = %s, want 90.5", got)
	}
	if got := c.Rest.String(); got != "9.5" {
		t.Errorf("rest = %s, want 9.5", got)
	}
}

func TestCompute_PreservesLineOrder(t *testing.T) {
	lines := []Line{
		{Name: "C", UnitPrice: dec("1"), Quantity: dec("1")},
		{Name: "A", UnitPrice: dec("2"), Quantity: dec("1")},
		{Name: "B", UnitPrice: dec("3"), Quantity: dec("1")},
	}

	c, err := Compute(lines, MethodCard, dec("10"))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	for i, want := range []string{"C", "A", "B"} {
		if c.Lines[i].Name != want {
			t.Errorf("line %d name = %s, want %s", i, c.Lines[i].Name, want)
		}
	}
}

func TestCompute_ExactDecimalArithmetic(t *testing.T) {
	// 0.1 * 3 must be exactly 0.3, not 0.30000000000000004.
	lines := []Line{{Name: "Gum", UnitPrice: dec("0.1"), Quantity: dec("3")}}

	c, err := Compute(lines, MethodCash, dec("1"))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if !c.Total.Equal(dec("0.3")) {
		t.Errorf("total = %s, want 0.3", c.Total)
	}
	if !c.Rest.Equal(dec("0.7")) {
		t.Errorf("rest = %s, want 0.7", c.Rest)
	}
}

func TestCompute_UnderpaymentIsNotAnError(t *testing.T) {
	lines := []Line{{Name: "TV", UnitPrice: dec("500"), Quantity: dec("1")}}

	c, err := Compute(lines, MethodCard, dec("100"))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := c.Rest.String(); got != "-400" {
		t.Errorf("rest = %s, want -400", got)
	}
}

func TestCompute_EmptyLines(t *testing.T) {
	c, err := Compute(nil, MethodCash, dec("0"))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if !c.Total.IsZero() {
		t.Errorf("total = %s, want 0", c.Total)
	}
	if !c.Rest.IsZero() {
		t.Errorf("rest = %s, want 0", c.Rest)
	}
}

func TestCompute_ValidationErrors(t *testing.T) {
	valid := Line{Name: "Apple", UnitPrice: dec("5"), Quantity: dec("1")}

	_, err := Compute([]Line{{Name: "Apple", UnitPrice: dec("5"), Quantity: dec("0")}}, MethodCash, dec("10"))
	if err != ErrInvalidQuantity {
		t.Errorf("zero quantity: error = %v, want ErrInvalidQuantity", err)
	}

	_, err = Compute([]Line{{Name: "Apple", UnitPrice: dec("5"), Quantity: dec("-2")}}, MethodCash, dec("10"))
	if err != ErrInvalidQuantity {
		t.Errorf("negative quantity: error = %v, want ErrInvalidQuantity", err)
	}

	_, err = Compute([]Line{{Name: "Apple", UnitPrice: dec("-5"), Quantity: dec("1")}}, MethodCash, dec("10"))
	if err != ErrInvalidPrice {
		t.Errorf("negative price: error = %v, want ErrInvalidPrice", err)
	}

	_, err = Compute([]Line{valid}, MethodCash, dec("-1"))
	if err != ErrNegativeTendered {
		t.Errorf("negative tendered: error = %v, want ErrNegativeTendered", err)
	}

	_, err = Compute([]Line{valid}, PaymentMethod("crypto"), dec("10"))
	if err != ErrUnknownPaymentMethod {
		t.Errorf("unknown method: error = %v, want ErrUnknownPaymentMethod", err)
	}
}

func TestPaymentMethod_Valid(t *testing.T) {
	if !MethodCash.Valid() || !MethodCard.Valid() {
		t.Error("cash and card must be valid methods")
	}
	if PaymentMethod("").Valid() || PaymentMethod("CASH").Valid() {
		t.Error("empty and upper-case methods must not be valid")
	}
}
