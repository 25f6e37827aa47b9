package render

// LanguagePack maps receipt label keys to localized text. The keys a pack is
// expected to resolve are shop, buyer, cash, card, amount, rest and thanks;
// a missing key renders as an empty label.
type LanguagePack map[string]string

// DefaultLanguage is the language used when none is configured.
const DefaultLanguage = "uk"

// DefaultPacks returns the built-in language packs.
func DefaultPacks() map[string]LanguagePack {
	return map[string]LanguagePack{
		"uk": {
			"shop":   "Магазин",
			"buyer":  "Покупець",
			"cash":   "Готівка",
			"card":   "Картка",
			"amount": "Сума",
			"rest":   "Решта",
			"thanks": "Дякуємо за покупку!",
		},
		"en": {
			"shop":   "Shop",
			"buyer":  "Buyer",
			"cash":   "Cash",
			"card":   "Card",
			"amount": "Total",
			"rest":   "Change",
			"thanks": "Thank you for your purchase!",
		},
	}
}
