// internal/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/dukan-admin/internal/api"
	"github.com/javajoker/dukan-admin/internal/drawer"
	"github.com/javajoker/dukan-admin/internal/form"
	"github.com/javajoker/dukan-admin/internal/i18n"
	"github.com/javajoker/dukan-admin/internal/services"
	"github.com/javajoker/dukan-admin/internal/utils"
)

// respondError turns a service error into the matching response. Unauthorized
// answers from the shop API keep the server's own message; any other shop API
// failure is reported as a generic "try again later".
func respondError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)
	c.Error(err)

	var validationErr *form.ValidationError
	if errors.As(err, &validationErr) {
		utils.ValidationErrorResponse(c, validationErr.Fields)
		return
	}

	if apiErr, ok := api.AsError(err); ok {
		if apiErr.IsUnauthorized() {
			utils.UnauthorizedResponse(c, apiErr.Message)
			return
		}
		logrus.WithError(err).Warn("Shop API request failed")
		utils.UpstreamErrorResponse(c)
		return
	}

	switch {
	case errors.Is(err, api.ErrNetwork):
		logrus.WithError(err).Error("Shop API unreachable")
		utils.UpstreamErrorResponse(c)

	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, "product")
	case errors.Is(err, services.ErrOrderNotFound):
		utils.NotFoundResponse(c, "order")
	case errors.Is(err, drawer.ErrItemNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", i18n.T(lang, i18n.KeyOrderItemNotFound), nil)
	case errors.Is(err, services.ErrPosterNotFound):
		utils.NotFoundResponse(c, "poster")
	case errors.Is(err, services.ErrUnknownKind):
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", i18n.T(lang, i18n.KeyPosterUnknownKind), nil)

	case errors.Is(err, form.ErrNoDraft):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyFormNoDraft))
	case errors.Is(err, form.ErrBusy):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyFormBusy))
	case errors.Is(err, form.ErrNoIdentity):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFormNoIdentity), nil)
	case errors.Is(err, form.ErrUnknownField):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFormUnknownField), err.Error())

	case errors.Is(err, form.ErrImageTooLarge):
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", i18n.T(lang, i18n.KeyFileTooLarge), nil)
	case errors.Is(err, form.ErrNotAnImage):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileInvalidType), nil)
	case errors.Is(err, form.ErrEmptyImage):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileEmpty), nil)

	case errors.Is(err, drawer.ErrTerminal):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyOrderTerminal))
	case errors.Is(err, drawer.ErrConfirmRequired):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyOrderConfirmRequired))
	case errors.Is(err, drawer.ErrNoPendingCancel):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyOrderNoPendingCancel))
	case errors.Is(err, drawer.ErrInvalidStatus):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderInvalidStatus), nil)

	default:
		logrus.WithError(err).Error("Unhandled request error")
		utils.InternalErrorResponse(c, "")
	}
}

// respondFieldError handles errors from setting draft fields, where anything
// that is not a form state error is a rejected value.
func respondFieldError(c *gin.Context, err error) {
	if errors.Is(err, form.ErrNoDraft) || errors.Is(err, form.ErrBusy) || errors.Is(err, form.ErrUnknownField) {
		respondError(c, err)
		return
	}
	utils.BadRequestResponse(c, err.Error(), nil)
}

// refreshRequested reports whether the caller asked for ?refresh=1.
func refreshRequested(c *gin.Context) bool {
	force, _ := strconv.ParseBool(c.Query("refresh"))
	return force
}
