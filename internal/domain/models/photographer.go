package models

import "unicode"

// Membership tiers. Full members precede associate members everywhere
// the roster is shown.
const (
	RoleFull      = "정회원"
	RoleAssociate = "준회원"
)

// Member is one photographer row. The JSON field names follow the shape
// the site renders: role is exposed as "type", the primary photo as
// "mainPhoto".
type Member struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"type"`
	Image      string   `json:"mainPhoto"`
	Instagram  string   `json:"instagram"`
	Generation string   `json:"generation"`
	Works      []string `json:"works"`
}

// PhotographerGroup is a cohort of members sharing a generation label.
// Groups are derived on every read, never stored.
type PhotographerGroup struct {
	Generation string   `json:"generation"`
	Members    []Member `json:"members"`
}

// GenerationNumber extracts the numeric part of a cohort label such as
// "60기". Labels without digits parse as 0 and sort after everything else.
func GenerationNumber(label string) int {
	n := 0
	for _, r := range label {
		if unicode.IsDigit(r) {
			n = n*10 + int(r-'0')
		}
	}
	return n
}
