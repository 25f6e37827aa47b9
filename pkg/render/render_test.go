package render

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testConfig() Config {
	return Config{
		StoreName: "АТБ",
		RowWidth:  40,
		Language:  "en",
		Packs:     DefaultPacks(),
	}
}

func testReceipt() *Receipt {
	return &Receipt{
		BuyerName: "Taras Shevchenko",
		Items: []Item{
			{Name: "Apple", UnitPrice: dec("5"), Quantity: dec("10"), Total: dec("50")},
			{Name: "Banana", UnitPrice: dec("13.5"), Quantity: dec("3"), Total: dec("40.5")},
		},
		Payment:   Payment{Method: "cash", Amount: dec("100"), Rest: dec("9.5")},
		Total:     dec("90.5"),
		CreatedAt: time.Date(2024, time.March, 7, 14, 30, 0, 0, time.UTC),
	}
}

func TestAlignInWidth_SingleRow(t *testing.T) {
	d := &document{cfg: testConfig()}

	got := d.alignInWidth("Total:", "90.5")
	want := "Total:" + strings.Repeat(" ", 30) + "90.5"
	if got != want {
		t.Errorf("alignInWidth() = %q, want %q", got, want)
	}
	if utf8.RuneCountInString(got) != 40 {
		t.Errorf("row length = %d, want 40", utf8.RuneCountInString(got))
	}
}

func TestAlignInWidth_CountsRunesNotBytes(t *testing.T) {
	d := &document{cfg: testConfig()}

	got := d.alignInWidth("Сума", "90.5")
	if n := utf8.RuneCountInString(got); n != 40 {
		t.Errorf("row rune length = %d, want 40", n)
	}
}

func TestAlignInWidth_TwoRowFallback(t *testing.T) {
	d := &document{cfg: testConfig()}

	left := strings.Repeat("a", 30)
	right := strings.Repeat("9", 15)
	got := d.alignInWidth(left, right)

	rows := strings.Split(got, "\n")
	if len(rows) != 2 {
		t.Fatalf("expected two-row fallback, got %d rows: %q", len(rows), got)
	}
	if rows[0] != left {
		t.Errorf("first row = %q, want %q", rows[0], left)
	}
	if rows[1] != strings.Repeat(" ", 25)+right {
		t.Errorf("second row = %q, want right-justified %q", rows[1], right)
	}
	for i, row := range rows {
		if utf8.RuneCountInString(row) > 40 {
			t.Errorf("fallback row %d exceeds width: %d", i, utf8.RuneCountInString(row))
		}
	}
}

func TestAlignInWidth_RightTextWiderThanRow(t *testing.T) {
	d := &document{cfg: testConfig()}

	right := strings.Repeat("9", 50)
	got := d.alignInWidth("x", right)

	rows := strings.Split(got, "\n")
	if len(rows) != 2 {
		t.Fatalf("expected two-row fallback, got %q", got)
	}
	if rows[1] != strings.Repeat("9", 40) {
		t.Errorf("second row = %q, want right text cut to 40", rows[1])
	}
}

func TestCut(t *testing.T) {
	d := &document{cfg: testConfig()}

	if got := d.cut("short"); got != "short" {
		t.Errorf("cut(short) = %q", got)
	}

	long := strings.Repeat("x", 60)
	if got := d.cut(long); utf8.RuneCountInString(got) != 40 {
		t.Errorf("cut length = %d, want 40", utf8.RuneCountInString(got))
	}

	cyrillic := strings.Repeat("ї", 60)
	if got := d.cut(cyrillic); utf8.RuneCountInString(got) != 40 {
		t.Errorf("cut rune length = %d, want 40", utf8.RuneCountInString(got))
	}
}

func TestAlignInCenter(t *testing.T) {
	d := &document{cfg: testConfig()}

	// Even gap: (40-4)/2 = 18 spaces, no right padding.
	if got := d.alignInCenter("abcd"); got != strings.Repeat(" ", 18)+"abcd" {
		t.Errorf("alignInCenter(abcd) = %q", got)
	}

	// Odd gap floors: (40-5)/2 = 17.
	if got := d.alignInCenter("abcde"); got != strings.Repeat(" ", 17)+"abcde" {
		t.Errorf("alignInCenter(abcde) = %q", got)
	}

	// An empty value still gets the full left padding, half the row width
	if got := d.alignInCenter(""); got != strings.Repeat(" ", 20) {
		t.Errorf("alignInCenter(empty) = %q, want 20 spaces", got)
	}

	long := strings.Repeat("x", 50)
	if got := d.alignInCenter(long); utf8.RuneCountInString(got) != 40 {
		t.Errorf("overlong center length = %d, want 40", utf8.RuneCountInString(got))
	}
}

func TestRender_RowWidthMustBePositive(t *testing.T) {
	for _, width := range []int{0, -1, -40} {
		cfg := testConfig()
		cfg.RowWidth = width
		out, err := Render(testReceipt(), cfg)
		if err != ErrInvalidRowWidth {
			t.Errorf("RowWidth=%d: error = %v, want ErrInvalidRowWidth", width, err)
		}
		if out != "" {
			t.Errorf("RowWidth=%d: partial output %q", width, out)
		}
	}
}

func TestRender_Document(t *testing.T) {
	out, err := Render(testReceipt(), testConfig())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := strings.Join([]string{
		"========================================",
		"Shop:                                АТБ",
		"----------------------------------------",
		"Buyer:                  Taras Shevchenko",
		"========================================",
		"10 x 5",
		"Apple                                 50",
		"--------------------",
		"3 x 13.5",
		"Banana                              40.5",
		"========================================",
		"Total                               90.5",
		"Cash                                 100",
		"Change                               9.5",
		"========================================",
		"           03.07.2024, 14:30",
		"      Thank you for your purchase!",
	}, "\n")

	if out != want {
		t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestRender_LineCountIsDeterministic(t *testing.T) {
	r := testReceipt()
	cfg := testConfig()

	for items := 1; items <= 5; items++ {
		r.Items = r.Items[:0]
		for i := 0; i < items; i++ {
			r.Items = append(r.Items, Item{
				Name: "Item", UnitPrice: dec("1"), Quantity: dec("1"), Total: dec("1"),
			})
		}

		out, err := Render(r, cfg)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}

		// 5 header rows, 2 rows per item plus a separator between items,
		// 5 totals rows, 2 footer rows.
		want := 5 + (3*items - 1) + 5 + 2
		if got := len(strings.Split(out, "\n")); got != want {
			t.Errorf("%d items: %d lines, want %d", items, got, want)
		}
	}
}

func TestRender_HalfWidthItemSeparator(t *testing.T) {
	out, err := Render(testReceipt(), testConfig())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "\n"+strings.Repeat("-", 20)+"\n") {
		t.Error("expected a 20-character separator between items")
	}
}

func TestRender_MissingLanguageUsesEmptyLabels(t *testing.T) {
	cfg := testConfig()
	cfg.Language = "fr"

	out, err := Render(testReceipt(), cfg)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	rows := strings.Split(out, "\n")
	// Store row still renders, label collapses to ":".
	if rows[1] != ":"+strings.Repeat(" ", 36)+"АТБ" {
		t.Errorf("store row with missing labels = %q", rows[1])
	}
}

func TestRender_UnknownPaymentMethodRendersEmptyLabel(t *testing.T) {
	r := testReceipt()
	r.Payment.Method = "cheque"

	out, err := Render(r, testConfig())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, strings.Repeat(" ", 37)+"100") {
		t.Error("payment row should render the amount against an empty label")
	}
}

func TestRender_OverlongNamesDegradeToTwoRows(t *testing.T) {
	r := testReceipt()
	r.Items = []Item{{
		Name:      strings.Repeat("Very Long Product Name ", 4),
		UnitPrice: dec("5"),
		Quantity:  dec("1"),
		Total:     dec("5"),
	}}

	out, err := Render(r, testConfig())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, row := range strings.Split(out, "\n") {
		if utf8.RuneCountInString(row) > 40 {
			t.Errorf("row exceeds width: %q", row)
		}
	}
}
