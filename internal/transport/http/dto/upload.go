package dto

import "mime/multipart"

// Content kinds accepted by the upload endpoint. Gallery is the default
// and produces an activity record.
const (
	UploadKindGallery      = "gallery"
	UploadKindExhibition   = "exhibition"
	UploadKindPhotographer = "photographer"
	UploadKindHero         = "hero"
)

// UploadInput is the parsed multipart form of one upload request.
type UploadInput struct {
	Kind           string
	Title          string
	Date           string
	Location       string
	MainIndex      int
	ID             int64
	ExistingImages []string
	Files          []*multipart.FileHeader
}
