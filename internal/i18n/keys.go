// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Errors
	KeyErrorTryAgainLater = "error.try_again_later"
	KeyErrorInternal      = "error.internal"
	KeyErrorRateLimited   = "error.rate_limited"

	// Session
	KeyAuthRequired     = "auth.required"
	KeyAuthTokenExpired = "auth.token_expired"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"

	// Orders
	KeyOrderNotFound        = "order.not_found"
	KeyOrderItemNotFound    = "order.item_not_found"
	KeyOrderStatusUpdated   = "order.status_updated"
	KeyOrderCancelled       = "order.cancelled"
	KeyOrderTerminal        = "order.terminal"
	KeyOrderConfirmRequired = "order.confirm_required"
	KeyOrderNoPendingCancel = "order.no_pending_cancel"
	KeyOrderInvalidStatus   = "order.invalid_status"

	// Posters
	KeyPosterCreated     = "poster.created"
	KeyPosterUpdated     = "poster.updated"
	KeyPosterDeleted     = "poster.deleted"
	KeyPosterNotFound    = "poster.not_found"
	KeyPosterUnknownKind = "poster.unknown_kind"

	// Forms
	KeyFormNoDraft      = "form.no_draft"
	KeyFormBusy         = "form.busy"
	KeyFormNoIdentity   = "form.no_identity"
	KeyFormUnknownField = "form.unknown_field"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileRequired    = "file.required"
	KeyFileInvalidType = "file.invalid_type"
	KeyFileTooLarge    = "file.too_large"
	KeyFileEmpty       = "file.empty"
)
