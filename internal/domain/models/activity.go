package models

// Activity is one archived club outing. The id doubles as the display
// sort key and the route segment of the detail page, so it never changes
// after insert.
type Activity struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Date       string   `json:"date"`
	CoverImage string   `json:"coverImage"`
	Images     []string `json:"images"`
}

// Normalize enforces the cover invariant: the cover must be one of the
// stored images, otherwise the first image takes its place.
func (a *Activity) Normalize() {
	if len(a.Images) == 0 {
		return
	}
	for _, img := range a.Images {
		if img == a.CoverImage {
			return
		}
	}
	a.CoverImage = a.Images[0]
}

// CoverAt resolves the primary image of an upload batch. An out-of-range
// main index resolves to the first image rather than an empty cover.
func CoverAt(images []string, mainIndex int) string {
	if len(images) == 0 {
		return ""
	}
	if mainIndex < 0 || mainIndex >= len(images) {
		mainIndex = 0
	}
	return images[mainIndex]
}
