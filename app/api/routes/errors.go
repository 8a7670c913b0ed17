package routes

import (
	"net/http"

	"github.com/qastore/pkg/apperr"
	"github.com/qastore/pkg/constant"
	"github.com/gin-gonic/gin"
)

// handleError translates service errors into the response contract. Typed
// errors carry their status; anything else is a generic 500.
func handleError(c *gin.Context, err error) {
	if ae, ok := apperr.From(err); ok {
		c.JSON(ae.Status, gin.H{"message": ae.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": constant.SOMETHING_WENT_WRONG})
}
