package routes

import (
	"net/http"

	"github.com/qastore/pkg/constant"
	"github.com/qastore/pkg/domains/simulator"
	"github.com/qastore/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// SimulatorRoutes is the operator/test-harness control surface for the
// fault-injection gateway. It stays outside the Simulate middleware so the
// gateway remains controllable while failures are being injected.
func SimulatorRoutes(r *gin.RouterGroup, sim *simulator.Simulator, adminKey string) {
	adminGroup := r.Group("", middleware.Admin(adminKey))
	{
		adminGroup.GET("/config", getSimulatorConfig(sim))
		adminGroup.PUT("/config", updateSimulatorConfig(sim))
	}
}

func getSimulatorConfig(sim *simulator.Simulator) func(c *gin.Context) {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sim.Config())
	}
}

func updateSimulatorConfig(sim *simulator.Simulator) func(c *gin.Context) {
	return func(c *gin.Context) {
		var patch simulator.Override
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": constant.INVALID_REQUEST})
			return
		}

		c.JSON(http.StatusOK, sim.Update(patch))
	}
}
