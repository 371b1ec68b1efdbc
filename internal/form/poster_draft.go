// internal/form/poster_draft.go
package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/javajoker/dukan-admin/internal/models"
)

// PosterDraft backs both the category and the slide form.
type PosterDraft struct {
	PosterID    string `json:"_id,omitempty"`
	Name        string `json:"name" validate:"required"`
	SrNo        string `json:"srNo" validate:"omitempty,number"`
	Path        string `json:"path"`
	Img         string `json:"img" validate:"required_without=ExistingImg"`
	ExistingImg string `json:"existingImg,omitempty"`
}

func NewPosterDraft() *PosterDraft {
	return &PosterDraft{}
}

func PosterDraftFrom(p models.Poster) *PosterDraft {
	return &PosterDraft{
		PosterID:    p.ID,
		Name:        p.Name,
		SrNo:        strconv.Itoa(p.SrNo),
		Path:        p.Path,
		ExistingImg: p.Img,
	}
}

func (d *PosterDraft) ID() string {
	return d.PosterID
}

func (d *PosterDraft) Set(key string, value interface{}) error {
	var err error
	switch key {
	case "name":
		d.Name, err = toString(value)
	case "path":
		d.Path, err = toString(value)
	case "img":
		d.Img, err = toString(value)
	case "srNo":
		var s string
		s, err = toString(value)
		d.SrNo = strings.TrimSpace(s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func (d *PosterDraft) SetImage(url string) {
	d.Img = url
}

func (d *PosterDraft) Validate() error {
	return validateDraft(d)
}

func (d *PosterDraft) Clone() *PosterDraft {
	c := *d
	return &c
}

// Payload converts the draft into the body of the category and slide
// endpoints. A blank serial number is sent as 0.
func (d *PosterDraft) Payload() (models.PosterPayload, error) {
	srNo := 0
	if d.SrNo != "" {
		n, err := strconv.Atoi(d.SrNo)
		if err != nil {
			return models.PosterPayload{}, fmt.Errorf("srNo: %w", err)
		}
		srNo = n
	}

	img := d.Img
	if img == "" {
		img = d.ExistingImg
	}

	return models.PosterPayload{
		Name: d.Name,
		SrNo: srNo,
		Path: d.Path,
		Img:  img,
	}, nil
}
