// internal/models/poster.go
package models

// Poster is a promotional category tile or home-page slide.
type Poster struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
	Img  string `json:"img"`
	SrNo int    `json:"srNo"`
	Path string `json:"path"`
}

// Posters is the body returned by GET /api/getPosters.
type Posters struct {
	Categories []Poster `json:"categories"`
	Slides     []Poster `json:"slides"`
}

// PosterPayload is what the category and slide endpoints accept.
type PosterPayload struct {
	Name string `json:"name"`
	SrNo int    `json:"srNo"`
	Path string `json:"path"`
	Img  string `json:"img"`
}
