// internal/form/poster_draft_test.go
package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/dukan-admin/internal/models"
)

func TestPosterDraftPayload(t *testing.T) {
	d := NewPosterDraft()
	require.NoError(t, d.Set("name", "Winter"))
	require.NoError(t, d.Set("srNo", 3.0))
	require.NoError(t, d.Set("path", "/winter"))
	d.SetImage("data:image/png;base64,AA==")

	require.NoError(t, d.Validate())
	payload, err := d.Payload()
	require.NoError(t, err)
	assert.Equal(t, models.PosterPayload{Name: "Winter", SrNo: 3, Path: "/winter", Img: "data:image/png;base64,AA=="}, payload)
}

func TestPosterDraftValidation(t *testing.T) {
	d := NewPosterDraft()
	require.NoError(t, d.Set("srNo", "first"))

	var verr *ValidationError
	require.ErrorAs(t, d.Validate(), &verr)
	fields := []string{}
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "srNo", "img"}, fields)
}

func TestPosterDraftEditKeepsImage(t *testing.T) {
	d := PosterDraftFrom(models.Poster{ID: "s1", Name: "Sale", Img: "https://cdn/s1.png", SrNo: 2, Path: "/sale"})
	assert.Equal(t, "s1", d.ID())
	require.NoError(t, d.Validate())

	payload, err := d.Payload()
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/s1.png", payload.Img)
	assert.Equal(t, 2, payload.SrNo)

	assert.ErrorIs(t, d.Set("colour", "red"), ErrUnknownField)
}
