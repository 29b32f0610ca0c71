package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Gbotemi-ojo/quick-medics-management/client"
	bannercontroller "github.com/Gbotemi-ojo/quick-medics-management/controllers/banner"
	drugformcontroller "github.com/Gbotemi-ojo/quick-medics-management/controllers/drugform"
	homepagecontroller "github.com/Gbotemi-ojo/quick-medics-management/controllers/homepage"
	inventorycontroller "github.com/Gbotemi-ojo/quick-medics-management/controllers/inventory"
	logincontroller "github.com/Gbotemi-ojo/quick-medics-management/controllers/login"
	ordercontrollers "github.com/Gbotemi-ojo/quick-medics-management/controllers/orders"
	"github.com/Gbotemi-ojo/quick-medics-management/session"
)

// Deps carries everything the route groups need.
type Deps struct {
	Log       *logrus.Logger
	JWTSecret string
	Session   *session.Store
	API       *client.Client

	Inventory *inventorycontroller.ListController
	DrugForm  *drugformcontroller.FormController
	Orders    *ordercontrollers.OrderController
	OrdersHub *ordercontrollers.Hub
	Homepage  *homepagecontroller.Controller
	Banners   *bannercontroller.Controller
	Login     *logincontroller.Controller
}

// SetupRoutes is the single entry-point that wires up the public auth routes
// and the session-gated staff routes.
func SetupRoutes(r *gin.Engine, deps Deps) {
	r.GET("/healthz", healthHandler(deps))

	SetupAuthRoutes(r, deps)
	SetupStaffRoutes(r, deps)
}

// healthHandler reports whether the platform backend is reachable, using the
// public category listing as the probe.
func healthHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		backend := "up"
		status := http.StatusOK
		if _, err := deps.API.FetchCategories(ctx); err != nil {
			backend = "unreachable"
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": "ok", "backend": backend})
	}
}

// respondErr maps controller/client errors onto HTTP responses: expired
// sessions become 401, backend messages keep their status, bad input is 400,
// anything else is a 500.
func respondErr(log *logrus.Logger, c *gin.Context, err error) {
	if errors.Is(err, client.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please login again"})
		return
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.WithError(err).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
