package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lostblog/blog-backend/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var validate = validator.New()

func isRequestValid(m any) (bool, error) {
	if err := validate.Struct(m); err != nil {
		return false, err
	}
	return true, nil
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultPageSize = 20
	PageSizeMin     = 1
	PageSizeMax     = 100
)

// ContextUserIDKey is where the auth middleware stores the authenticated
// user's ID.
const ContextUserIDKey = "user_id"

// currentUserID returns the authenticated caller, or false when the
// request carries no identity.
func currentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	uid, ok := v.(int64)
	return uid, ok
}

// viewerID resolves the viewer for read endpoints: the authenticated user
// when a valid token was presented, the anonymous viewer otherwise.
func viewerID(c *gin.Context) int64 {
	uid, ok := currentUserID(c)
	if !ok {
		return domain.AnonymousUserID
	}
	return uid
}

func pageParams(c *gin.Context) (page, pageSize int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize < PageSizeMin || pageSize > PageSizeMax {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

func pathID(c *gin.Context, name string) (int64, bool) {
	idP, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return int64(idP), true
}

// getStatusCode maps a domain error to its stable status category.
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrNestingTooDeep):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
