package api

import (
	"net/http"

	"property-rental/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID parses the :id segment and aborts with 404 when it is not a UUID,
// since no stored object can carry such a key.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found.", nil)
		return uuid.Nil, false
	}
	return id, true
}
