package api

import "github.com/mrozco/galleria/gallery/domain"

type LoginRequest struct {
	Password string `json:"password"`
}

type SessionResponse struct {
	Authorized bool   `json:"authorized"`
	Warning    string `json:"warning,omitempty"`
}

type GalleryResponse struct {
	Images  []domain.ImageRecord `json:"images"`
	Hero    *domain.ImageRecord  `json:"hero,omitempty"`
	Columns int                  `json:"columns"`
}

// AdminCollectionResponse carries the raw collection for the administration
// table. Views is null while the counter total is unknown.
type AdminCollectionResponse struct {
	Images []domain.ImageRecord `json:"images"`
	Views  *int64               `json:"views"`
}

// PasteItem is one clipboard image, base64-encoded by the presentation
// layer.
type PasteItem struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        string `json:"data"`
}

type PasteRequest struct {
	Items []PasteItem `json:"items"`
}

type IngestResponse struct {
	Added   int    `json:"added"`
	Dropped int    `json:"dropped"`
	Warning string `json:"warning,omitempty"`
}

type MoveRequest struct {
	Direction string `json:"direction"`
}

// UpdateImageRequest is a partial patch; absent fields are left untouched.
type UpdateImageRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
	Caption     *string `json:"caption,omitempty"`
	Featured    *bool   `json:"featured,omitempty"`
}
