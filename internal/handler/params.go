// Package handler exposes the application services over HTTP.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shareit-hub/service-shareit/internal/platform/httpx"
)

const (
	defaultFrom = "0"
	defaultSize = "10"
)

// parsePaging reads the from and size query parameters. Range checks are
// left to the services. It writes a 400 and returns ok=false on malformed input.
func parsePaging(c *gin.Context) (from, size int, ok bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", defaultFrom))
	if err != nil {
		httpx.BadRequest(c, "from must be an integer")
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", defaultSize))
	if err != nil {
		httpx.BadRequest(c, "size must be an integer")
		return 0, 0, false
	}
	return from, size, true
}

// parseID reads a numeric path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		httpx.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// sharerID returns the acting user. SharerIDMiddleware guarantees it on
// every route that calls this.
func sharerID(c *gin.Context) (int64, bool) {
	id, ok := httpx.GetSharerID(c)
	if !ok {
		httpx.BadRequest(c, "missing "+httpx.SharerIDHeader+" header")
	}
	return id, ok
}

// bindJSON decodes the body into req, writing a 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpx.BadRequest(c, httpx.ValidationMessage(err))
		return false
	}
	return true
}
