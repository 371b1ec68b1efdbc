// internal/handlers/poster.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/dukan-admin/internal/form"
	"github.com/javajoker/dukan-admin/internal/i18n"
	"github.com/javajoker/dukan-admin/internal/models"
	"github.com/javajoker/dukan-admin/internal/services"
	"github.com/javajoker/dukan-admin/internal/utils"
)

type PosterHandler struct {
	posterService *services.PosterService
}

func NewPosterHandler(posterService *services.PosterService) *PosterHandler {
	return &PosterHandler{
		posterService: posterService,
	}
}

func posterKind(c *gin.Context) models.PosterKind {
	return models.PosterKind(c.Param("kind"))
}

func posterFormView(c *form.Controller[*form.PosterDraft]) formView {
	view := formView{State: c.State().String()}
	if d, ok := c.Draft(); ok {
		view.Draft = d
	}
	return view
}

// respondPosterForm writes the caller's current form for the kind in the path.
func (h *PosterHandler) respondPosterForm(c *gin.Context) {
	ctrl, err := h.posterService.Form(utils.GetSessionFromContext(c), posterKind(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, posterFormView(ctrl))
}

// GET /posters?q=&refresh=1
func (h *PosterHandler) GetPosters(c *gin.Context) {
	if err := h.posterService.Sync(c.Request.Context(), refreshRequested(c)); err != nil {
		respondError(c, err)
		return
	}

	query := c.Query("q")

	categories, _ := h.posterService.Search(models.PosterKindCategory, query)
	slides, _ := h.posterService.Search(models.PosterKindSlide, query)

	utils.SuccessResponseWithMeta(c, models.Posters{
		Categories: categories,
		Slides:     slides,
	}, gin.H{"query": query})
}

// GET /posters/:kind?q=&refresh=1
func (h *PosterHandler) GetPostersOfKind(c *gin.Context) {
	if err := h.posterService.Sync(c.Request.Context(), refreshRequested(c)); err != nil {
		respondError(c, err)
		return
	}

	query := c.Query("q")

	posters, err := h.posterService.Search(posterKind(c), query)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, posters, gin.H{"query": query, "total": len(posters)})
}

// GET /posters/:kind/form
func (h *PosterHandler) GetForm(c *gin.Context) {
	h.respondPosterForm(c)
}

// POST /posters/:kind/form
func (h *PosterHandler) StartCreate(c *gin.Context) {
	if _, err := h.posterService.StartCreate(utils.GetSessionFromContext(c), posterKind(c)); err != nil {
		respondError(c, err)
		return
	}
	h.respondPosterForm(c)
}

// POST /posters/:kind/:id/form
func (h *PosterHandler) StartEdit(c *gin.Context) {
	if _, err := h.posterService.StartEdit(utils.GetSessionFromContext(c), posterKind(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	h.respondPosterForm(c)
}

// PATCH /posters/:kind/form
func (h *PosterHandler) UpdateForm(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if _, err := h.posterService.SetFields(utils.GetSessionFromContext(c), posterKind(c), fields); err != nil {
		respondFieldError(c, err)
		return
	}
	h.respondPosterForm(c)
}

// POST /posters/:kind/form/image
func (h *PosterHandler) UploadImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	fileHeader, err := c.FormFile("img")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileRequired), nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileRequired), err.Error())
		return
	}
	defer file.Close()

	sess := utils.GetSessionFromContext(c)
	if _, err := h.posterService.SetImage(c.Request.Context(), sess, posterKind(c), fileHeader.Filename, file); err != nil {
		respondError(c, err)
		return
	}
	h.respondPosterForm(c)
}

// POST /posters/:kind/form/submit
func (h *PosterHandler) SubmitForm(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := utils.GetSessionFromContext(c)
	kind := posterKind(c)

	editing := false
	if ctrl, err := h.posterService.Form(sess, kind); err == nil {
		editing = ctrl.State() == form.StateEditing
	}

	poster, err := h.posterService.Submit(c.Request.Context(), sess, kind)
	if err != nil {
		respondError(c, err)
		return
	}

	if editing {
		utils.SuccessResponse(c, gin.H{
			"message": i18n.T(lang, i18n.KeyPosterUpdated),
			"poster":  poster,
		})
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPosterCreated),
		"poster":  poster,
	})
}

// DELETE /posters/:kind/form
func (h *PosterHandler) CancelForm(c *gin.Context) {
	if err := h.posterService.Cancel(utils.GetSessionFromContext(c), posterKind(c)); err != nil {
		respondError(c, err)
		return
	}
	h.respondPosterForm(c)
}

// DELETE /posters/:kind/:id
func (h *PosterHandler) DeletePoster(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := utils.GetSessionFromContext(c)

	if err := h.posterService.Delete(c.Request.Context(), sess, posterKind(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPosterDeleted),
	})
}
