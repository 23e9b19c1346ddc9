package models

// Exhibition is a show entry. Image always equals one of Images; the
// main index picked at upload time is resolved before the write and not
// persisted on its own.
type Exhibition struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
}
