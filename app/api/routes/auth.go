package routes

import (
	"fmt"
	"net/http"

	"github.com/qastore/pkg/constant"
	"github.com/qastore/pkg/domains/auth"
	"github.com/qastore/pkg/dtos"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.RouterGroup, s auth.Service, appEnv string) {
	r.POST("/register", register(s))
	r.POST("/login", login(s))
	r.POST("/forgot-password", forgotPassword(s, appEnv))
	r.GET("/verify-reset-token", verifyResetToken(s))
	r.POST("/reset-password", resetPassword(s))
	r.POST("/update-profile", updateProfile(s))
}

func register(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.DTOForUserCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": constant.INVALID_REQUEST})
			return
		}

		user, err := s.Register(c, req)
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

func login(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.DTOForUserLogin
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": constant.INVALID_REQUEST})
			return
		}

		user, err := s.Login(c, req)
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// forgotPassword always answers success for a well-formed email, whether it
// is registered or not, so responses don't reveal which emails exist. The
// reset link is exposed in the body only outside prod; there is no real
// email delivery in this demo.
func forgotPassword(s auth.Service, appEnv string) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ForgotPasswordDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": constant.INVALID_REQUEST})
			return
		}

		token, err := s.ForgotPassword(c, req.Email)
		if err != nil {
			handleError(c, err)
			return
		}

		resp := gin.H{"success": true}
		if token != "" && appEnv == "dev" {
			resp["resetLink"] = fmt.Sprintf("%s/reset-password/%s", c.GetHeader("Origin"), token)
		}
		c.JSON(http.StatusOK, resp)
	}
}

func verifyResetToken(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": constant.TOKEN_REQUIRED})
			return
		}

		userID, err := s.VerifyResetToken(c, token)
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"valid": true, "userId": userID})
	}
}

func resetPassword(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ResetPasswordDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": constant.INVALID_REQUEST})
			return
		}

		if err := s.ResetPassword(c, req.Token, req.Password); err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func updateProfile(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.UpdateProfileDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": constant.USER_ID_REQUIRED})
			return
		}

		if err := s.UpdateProfile(c, req); err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
