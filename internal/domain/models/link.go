package models

// Link directory categories. The listing page renders one column per
// category; uncategorized rows land in promotion.
const (
	CategoryPromotion = "promotion"
	CategoryInquiry   = "inquiry"
	CategoryActivity  = "activity"
	CategorySponsor   = "sponsor"
	CategoryPrivate   = "private"
)

type Link struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// Normalize fills the category default.
func (l *Link) Normalize() {
	if l.Category == "" {
		l.Category = CategoryPromotion
	}
}

func ValidCategory(category string) bool {
	switch category {
	case CategoryPromotion, CategoryInquiry, CategoryActivity, CategorySponsor, CategoryPrivate:
		return true
	}
	return false
}
