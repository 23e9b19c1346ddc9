package dto

// PhotographerPayload mirrors the member shape the admin UI edits:
// role travels as "type", the primary photo as "mainPhoto".
type PhotographerPayload struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	MainPhoto  string   `json:"mainPhoto"`
	Instagram  string   `json:"instagram"`
	Generation string   `json:"generation"`
	Works      []string `json:"works"`
}

type PhotographerMutationRequest struct {
	Action        string              `json:"action" validate:"required,oneof=add edit delete"`
	Photographer  PhotographerPayload `json:"photographer"`
	ID            int64               `json:"id"`
	OldName       string              `json:"oldName"`
	OldGeneration string              `json:"oldGeneration"`
}

type LinkPayload struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// LinkMutationRequest addresses edits and deletes by ID when the client
// already knows it, else by Name.
type LinkMutationRequest struct {
	Action string      `json:"action" validate:"required,oneof=add edit delete"`
	Link   LinkPayload `json:"link"`
	ID     int64       `json:"id"`
	Name   string      `json:"name"`
}

// UpdateTitleRequest renames an activity. Title is a pointer so an
// explicit empty string passes while a missing field fails validation.
type UpdateTitleRequest struct {
	ID    int64   `json:"id" validate:"required"`
	Title *string `json:"title" validate:"required"`
}

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}
