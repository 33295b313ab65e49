package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/ctabares06/where-my-cash-goes/internal/models"
	"github.com/ctabares06/where-my-cash-goes/internal/service"
	"github.com/ctabares06/where-my-cash-goes/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user set by AuthMiddleware. On
// failure it writes the 401 envelope and returns false.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return nil, false
	}
	return user, true
}

// abortWith maps a service error onto the response envelope.
func abortWith(c *gin.Context, serr *service.Error) {
	switch serr.Kind {
	case service.KindBadRequest:
		if len(serr.Violations) > 0 {
			util.ErrorDetails(c, http.StatusBadRequest, util.CodeInvalidParam, serr.Message, serr.Violations)
			return
		}
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, serr.Message)
	case service.KindNotFound:
		util.Error(c, http.StatusNotFound, util.CodeNotFound, serr.Message)
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, serr.Message)
	}
}

// readBody drains the request body for the validation layer.
func readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return nil, false
	}
	return body, true
}

// pageParams parses ?page= and ?limit=. Each is returned only when it is a
// positive integer; the service applies them only when both are present.
func pageParams(c *gin.Context) (page, limit *int) {
	if s := c.Query("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			page = &n
		}
	}
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = &n
		}
	}
	return page, limit
}
