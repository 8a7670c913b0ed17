package middleware

import (
	"errors"
	"net/http"

	"github.com/qastore/pkg/domains/simulator"
	"github.com/qastore/pkg/state"
	"github.com/gin-gonic/gin"
)

func ClaimIp() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(state.CurrentUserIP, c.ClientIP())
		c.Next()
	}
}

func Admin(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" || c.GetHeader("admin_key") != adminKey {
			c.JSON(400, gin.H{"message": "Unauthorized access"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Simulate runs the downstream handlers through the fault-injection gateway.
// A synthetic NOT_FOUND or SERVER_ERROR short-circuits the request with a
// generic body; NETWORK_ERROR drops the connection without writing a
// response, like a failed network call.
func Simulate(sim *simulator.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := sim.Simulate(c.Request.Context(), func() error {
			c.Next()
			return nil
		}, nil)
		if err == nil {
			return
		}

		var synth *simulator.SyntheticError
		if !errors.As(err, &synth) {
			// ctx canceled during the synthetic delay; 499 is the nginx
			// "client closed request" status
			c.AbortWithStatus(499)
			return
		}

		switch synth.Kind {
		case simulator.NotFound:
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		case simulator.ServerError:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		default:
			dropConnection(c)
		}
	}
}

func dropConnection(c *gin.Context) {
	c.Abort()
	hijacker, ok := c.Writer.(http.Hijacker)
	if !ok {
		// Recorders and HTTP/2 can't hijack; an empty 500 is the closest
		// stand-in for a dropped connection there.
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	conn, _, err := hijacker.Hijack()
	if err != nil {
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	conn.Close()
}
