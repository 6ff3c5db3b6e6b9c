package handlers

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	"arborgold/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// parseIDParam reads a snowflake id path parameter. On failure it writes the
// 400 response itself and reports false.
func parseIDParam(c *gin.Context, name string) (snowflake.ID, bool) {
	id, err := snowflake.ParseString(c.Param(name))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ID", "Invalid "+name+" path parameter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return id, true
}

// parseIDQuery reads an optional snowflake id query parameter; empty means
// zero (no filter).
func parseIDQuery(c *gin.Context, name string) (snowflake.ID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := snowflake.ParseString(raw)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ID", "Invalid "+name+" query parameter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return id, true
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
