package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Message sends a bare message body
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Error sends an error response. Errors keep their specific kind so the
// UI can tell "not logged in" from "wrong role" from "bad input".
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// fromSentinel maps bare domain sentinels (as returned by repositories)
// to their HTTP shape. Anything unrecognized is an internal error.
func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.InvalidCredentials("Invalid credentials")
	case errors.Is(err, domainerrors.ErrUnauthenticated):
		return domainerrors.Unauthenticated("Not authenticated")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("Access denied")
	case errors.Is(err, domainerrors.ErrValidation):
		return domainerrors.Validation(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidTransition):
		return domainerrors.InvalidTransition(err.Error())
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest(err.Error())
	default:
		return domainerrors.InternalError(err)
	}
}
