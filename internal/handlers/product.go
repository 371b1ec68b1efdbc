// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/dukan-admin/internal/form"
	"github.com/javajoker/dukan-admin/internal/i18n"
	"github.com/javajoker/dukan-admin/internal/services"
	"github.com/javajoker/dukan-admin/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

type formView struct {
	State string      `json:"state"`
	Draft interface{} `json:"draft,omitempty"`
}

func productFormView(c *form.Controller[*form.ProductDraft]) formView {
	view := formView{State: c.State().String()}
	if d, ok := c.Draft(); ok {
		view.Draft = d
	}
	return view
}

// GET /products?q=&refresh=1
func (h *ProductHandler) GetProducts(c *gin.Context) {
	if err := h.productService.Sync(c.Request.Context(), refreshRequested(c)); err != nil {
		respondError(c, err)
		return
	}

	query := c.Query("q")
	products := h.productService.Search(query)

	utils.SuccessResponseWithMeta(c, products, gin.H{
		"query": query,
		"total": len(products),
	})
}

// GET /products/form
func (h *ProductHandler) GetForm(c *gin.Context) {
	sess := utils.GetSessionFromContext(c)
	utils.SuccessResponse(c, productFormView(h.productService.Form(sess)))
}

// POST /products/form
func (h *ProductHandler) StartCreate(c *gin.Context) {
	sess := utils.GetSessionFromContext(c)

	if _, err := h.productService.StartCreate(sess); err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"form":       productFormView(h.productService.Form(sess)),
		"categories": form.CategoryOptions,
	})
}

// POST /products/:id/form
func (h *ProductHandler) StartEdit(c *gin.Context) {
	sess := utils.GetSessionFromContext(c)

	if _, err := h.productService.StartEdit(sess, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"form":       productFormView(h.productService.Form(sess)),
		"categories": form.CategoryOptions,
	})
}

// PATCH /products/form
func (h *ProductHandler) UpdateForm(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := utils.GetSessionFromContext(c)

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if _, err := h.productService.SetFields(sess, fields); err != nil {
		respondFieldError(c, err)
		return
	}

	utils.SuccessResponse(c, productFormView(h.productService.Form(sess)))
}

// POST /products/form/image
func (h *ProductHandler) UploadImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := utils.GetSessionFromContext(c)

	fileHeader, err := c.FormFile("image")
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

	if _, err := h.productService.SetImage(c.Request.Context(), sess, fileHeader.Filename, file); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, productFormView(h.productService.Form(sess)))
}

// POST /products/form/submit
func (h *ProductHandler) SubmitForm(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := utils.GetSessionFromContext(c)

	product, err := h.productService.Submit(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	if product.ID == "" {
		utils.CreatedResponse(c, gin.H{
			"message": i18n.T(lang, i18n.KeyProductCreated),
			"product": product,
		})
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// DELETE /products/form
func (h *ProductHandler) CancelForm(c *gin.Context) {
	sess := utils.GetSessionFromContext(c)

	if err := h.productService.Cancel(sess); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, productFormView(h.productService.Form(sess)))
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}
