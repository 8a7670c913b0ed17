package routes

import (
	"net/http"
	"strconv"

	"github.com/qastore/pkg/constant"
	"github.com/qastore/pkg/domains/orders"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(r *gin.RouterGroup, s orders.Service) {
	r.GET("", listOrders(s))
}

func listOrders(s orders.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Query("userId"), 10, 64)
		if err != nil || userID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": constant.USER_ID_REQUIRED})
			return
		}

		// page is optional; without it the full history is returned
		page, _ := strconv.Atoi(c.Query("page"))

		result, err := s.ListByUser(c, uint(userID), page)
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": result})
	}
}
