package handler

import (
	"errors"
	"net/http"
	"strconv"

	"orghub/internal/config"
	"orghub/internal/model"
	"orghub/internal/repository"
	"orghub/internal/service"

	"github.com/gin-gonic/gin"
)

// statusFor maps the error taxonomy to HTTP status codes, one-to-one.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidID),
		errors.Is(err, model.ErrInvalidAccessLevel),
		errors.Is(err, service.ErrNotAuthorized),
		errors.Is(err, service.ErrCannotRemoveCreator),
		errors.Is(err, repository.ErrAlreadyMember),
		errors.Is(err, repository.ErrDuplicateUser),
		errors.Is(err, repository.ErrDuplicateOrganization):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrOrganizationNotFound),
		errors.Is(err, repository.ErrMemberNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, model.NewErrorResponse("internal server error", err.Error()))
		return
	}
	c.JSON(status, model.NewErrorResponse(err.Error(), ""))
}

// pageParams reads limit/offset query parameters, falling back to the defaults
// on anything unparseable or out of range.
func pageParams(c *gin.Context) (limit, offset int64) {
	limit = config.DefaultPageSize
	if v, err := strconv.ParseInt(c.DefaultQuery("limit", ""), 10, 64); err == nil && v > 0 {
		limit = v
	}
	if limit > config.MaxPageSize {
		limit = config.MaxPageSize
	}
	if v, err := strconv.ParseInt(c.DefaultQuery("offset", ""), 10, 64); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
