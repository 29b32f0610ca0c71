package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gbotemi-ojo/quick-medics-management/auth"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type forgotRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetRequest struct {
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// SetupAuthRoutes mounts the public authentication flow. Nothing here
// requires a session.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	grp := r.Group("/auth")
	{
		grp.GET("/state", func(c *gin.Context) {
			c.JSON(http.StatusOK, deps.Login.State())
		})

		grp.POST("/login", loginHandler(deps))
		grp.POST("/forgot-password", forgotHandler(deps))
		grp.POST("/reset-password", resetHandler(deps))

		// View navigation, mirrored server-side so the flow state survives
		// a page reload.
		grp.POST("/forgot", func(c *gin.Context) {
			deps.Login.Forgot()
			c.JSON(http.StatusOK, deps.Login.State())
		})
		grp.POST("/back", func(c *gin.Context) {
			deps.Login.Back()
			c.JSON(http.StatusOK, deps.Login.State())
		})
	}
}

func loginHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := deps.Login.Login(c.Request.Context(), req.Email, req.Password); err != nil {
			// The controller already collapsed the failure into its generic
			// message; surface that, never the backend detail.
			c.JSON(http.StatusUnauthorized, gin.H{"error": deps.Login.State().Error})
			return
		}

		token, err := auth.IssueStaffToken(deps.JWTSecret, req.Email)
		if err != nil {
			respondErr(deps.Log, c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func forgotHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req forgotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := deps.Login.RequestOTP(c.Request.Context(), req.Email); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": deps.Login.State().Error})
			return
		}
		st := deps.Login.State()
		c.JSON(http.StatusOK, gin.H{"message": st.SuccessMsg, "view": st.View})
	}
}

func resetHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req resetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := deps.Login.ConfirmReset(c.Request.Context(), req.OTP, req.NewPassword); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": deps.Login.State().Error})
			return
		}
		st := deps.Login.State()
		c.JSON(http.StatusOK, gin.H{"message": st.SuccessMsg, "view": st.View})
	}
}
