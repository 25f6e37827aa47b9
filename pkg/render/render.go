package render

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ErrInvalidRowWidth is returned when the configured row width is not positive.
var ErrInvalidRowWidth = errors.New("render: row width must be positive")

// Config holds the static formatting configuration for receipts.
type Config struct {
	StoreName string
	RowWidth  int
	Language  string
	Packs     map[string]LanguagePack
}

// Item is one product line on a rendered receipt.
type Item struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
	Total     decimal.Decimal
}

// Payment is the payment section of a rendered receipt.
type Payment struct {
	Method string
	Amount decimal.Decimal
	Rest   decimal.Decimal
}

// Receipt is the read-only input to Render. The renderer never mutates it.
type Receipt struct {
	BuyerName string
	Items     []Item
	Payment   Payment
	Total     decimal.Decimal
	CreatedAt time.Time
}

// Render formats a receipt as a fixed-width plain-text document.
//
// Every formatting edge case degrades gracefully: overlong text is hard-cut,
// a name/value pair that cannot share one row falls back to two rows. The
// only failure is a non-positive row width.
func Render(r *Receipt, cfg Config) (string, error) {
	if cfg.RowWidth <= 0 {
		return "", ErrInvalidRowWidth
	}

	d := &document{cfg: cfg}
	blocks := []string{d.header(r), d.products(r), d.footer(r)}
	return strings.Join(blocks, "\n"), nil
}

// document renders one receipt with a fixed configuration. Widths are
// measured in runes so Cyrillic labels line up with ASCII amounts.
type document struct {
	cfg Config
}

func (d *document) text(key string) string {
	return d.cfg.Packs[d.cfg.Language][key]
}

func (d *document) separator(sep rune, length int) string {
	return strings.Repeat(string(sep), length)
}

// cut hard-truncates text to the row width. No ellipsis, no word boundaries.
func (d *document) cut(text string) string {
	if utf8.RuneCountInString(text) > d.cfg.RowWidth {
		return string([]rune(text)[:d.cfg.RowWidth])
	}
	return text
}

// alignInWidth lays out left-justified first text against right-justified
// second text on one row of exactly RowWidth runes. When the second text
// leaves no room, or the pair cannot fit on one row, it degrades to two rows:
// first text cut to width, then second text cut and right-justified.
func (d *document) alignInWidth(first, second string) string {
	width := d.cfg.RowWidth - utf8.RuneCountInString(second)
	if width >= 0 {
		row := padRight(first, width) + second
		if utf8.RuneCountInString(row) <= d.cfg.RowWidth {
			return row
		}
	}
	return d.cut(first) + "\n" + padLeft(d.cut(second), d.cfg.RowWidth)
}

// alignInCenter centers text by left padding only. The row is not padded out
// to the full width on the right.
func (d *document) alignInCenter(text string) string {
	length := utf8.RuneCountInString(text)
	if length > d.cfg.RowWidth {
		return d.cut(text)
	}
	return strings.Repeat(" ", (d.cfg.RowWidth-length)/2) + text
}

func (d *document) storeNameRow() string {
	return d.alignInWidth(d.text("shop")+":", d.cfg.StoreName)
}

func (d *document) buyerNameRow(r *Receipt) string {
	return d.alignInWidth(d.text("buyer")+":", r.BuyerName)
}

// paymentLabel resolves the localized label for a payment method. Unknown
// methods resolve to an empty label rather than failing: stored receipts are
// rendered as-is even if the method no longer parses.
func (d *document) paymentLabel(method string) string {
	switch method {
	case "cash":
		return d.text("cash")
	case "card":
		return d.text("card")
	}
	return ""
}

func (d *document) itemRows(item Item) string {
	quantityRow := item.Quantity.String() + " x " + item.UnitPrice.String()
	nameRow := d.alignInWidth(item.Name, item.Total.String())
	return quantityRow + "\n" + nameRow
}

func (d *document) header(r *Receipt) string {
	rows := []string{
		d.separator('=', d.cfg.RowWidth),
		d.storeNameRow(),
		d.separator('-', d.cfg.RowWidth),
		d.buyerNameRow(r),
		d.separator('=', d.cfg.RowWidth),
	}
	return strings.Join(rows, "\n")
}

func (d *document) products(r *Receipt) string {
	var rows []string
	for i, item := range r.Items {
		rows = append(rows, d.itemRows(item))
		if i < len(r.Items)-1 {
			rows = append(rows, d.separator('-', d.cfg.RowWidth/2))
		}
	}

	rows = append(rows, d.separator('=', d.cfg.RowWidth))
	rows = append(rows, d.alignInWidth(d.text("amount"), r.Total.String()))
	rows = append(rows, d.alignInWidth(d.paymentLabel(r.Payment.Method), r.Payment.Amount.String()))
	rows = append(rows, d.alignInWidth(d.text("rest"), r.Payment.Rest.String()))
	rows = append(rows, d.separator('=', d.cfg.RowWidth))
	return strings.Join(rows, "\n")
}

func (d *document) footer(r *Receipt) string {
	rows := []string{
		d.alignInCenter(r.CreatedAt.Format("01.02.2006, 15:04")),
		d.alignInCenter(d.text("thanks")),
	}
	return strings.Join(rows, "\n")
}

func padRight(text string, width int) string {
	if gap := width - utf8.RuneCountInString(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}

func padLeft(text string, width int) string {
	if gap := width - utf8.RuneCountInString(text); gap > 0 {
		return strings.Repeat(" ", gap) + text
	}
	return text
}
