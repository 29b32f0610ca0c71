package routes

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gbotemi-ojo/quick-medics-management/middleware"
	"github.com/Gbotemi-ojo/quick-medics-management/models"
)

// SetupStaffRoutes mounts everything behind the staff session: inventory,
// the drug form, orders, homepage merchandising and banners.
func SetupStaffRoutes(r *gin.Engine, deps Deps) {
	staff := r.Group("/admin")
	staff.Use(middleware.ValidateSession(deps.JWTSecret, deps.Session))
	{
		inventoryRoutes(staff, deps)
		drugFormRoutes(staff, deps)
		orderRoutes(staff, deps)
		homepageRoutes(staff, deps)
		bannerRoutes(staff, deps)

		staff.POST("/logout", func(c *gin.Context) {
			if err := deps.Session.Clear(); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
		})
	}
}

func inventoryRoutes(grp *gin.RouterGroup, deps Deps) {
	inv := grp.Group("/inventory")
	{
		inv.GET("", func(c *gin.Context) {
			if err := deps.Inventory.Refresh(c.Request.Context()); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, deps.Inventory.State())
		})

		inv.GET("/categories", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"categories": deps.Inventory.Categories()})
		})

		// Search is debounced inside the controller, so the handler only
		// acknowledges the keystroke; the page settles on its own.
		inv.POST("/search", func(c *gin.Context) {
			var req struct {
				Search string `json:"search"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			deps.Inventory.SetSearch(req.Search)
			c.JSON(http.StatusAccepted, deps.Inventory.State())
		})

		inv.POST("/sort", func(c *gin.Context) {
			var req struct {
				Field string `json:"field" binding:"required"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := deps.Inventory.ToggleSort(c.Request.Context(), req.Field); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, deps.Inventory.State())
		})

		// The preset dropdown emits a combined "field-order" token, e.g.
		// "price-asc" or "created_at-desc".
		inv.POST("/sort-preset", func(c *gin.Context) {
			var req struct {
				Preset string `json:"preset" binding:"required"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			cut := strings.LastIndex(req.Preset, "-")
			if cut <= 0 || cut == len(req.Preset)-1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort preset"})
				return
			}
			field, order := req.Preset[:cut], req.Preset[cut+1:]
			if err := deps.Inventory.SetSort(c.Request.Context(), field, order); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, deps.Inventory.State())
		})

		inv.POST("/next-page", func(c *gin.Context) {
			if err := deps.Inventory.NextPage(c.Request.Context()); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, deps.Inventory.State())
		})

		inv.POST("/prev-page", func(c *gin.Context) {
			if err := deps.Inventory.PrevPage(c.Request.Context()); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, deps.Inventory.State())
		})

		inv.GET("/export", func(c *gin.Context) {
			c.Header("Content-Disposition", "attachment; filename=inventory.xlsx")
			c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			if err := deps.Inventory.ExportXLSX(c.Request.Context(), c.Writer); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
		})
	}
}

func drugFormRoutes(grp *gin.RouterGroup, deps Deps) {
	form := grp.Group("/drug-form")
	{
		form.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, deps.DrugForm.State())
		})

		// A null body clears the target and returns the form to create mode.
		form.POST("/target", func(c *gin.Context) {
			var target *models.Drug
			if err := c.ShouldBindJSON(&target); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			deps.DrugForm.SetTarget(target)
			c.JSON(http.StatusOK, deps.DrugForm.State())
		})

		form.PUT("/input", func(c *gin.Context) {
			var input models.DrugInput
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			deps.DrugForm.SetInput(input)
			c.JSON(http.StatusOK, deps.DrugForm.State())
		})

		form.POST("/category", func(c *gin.Context) {
			var req struct {
				Value string `json:"value"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			deps.DrugForm.SelectCategory(req.Value)
			c.JSON(http.StatusOK, deps.DrugForm.State())
		})

		form.POST("/submit", func(c *gin.Context) {
			if err := deps.DrugForm.Submit(c.Request.Context()); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Saved"})
		})
	}
}

func orderRoutes(grp *gin.RouterGroup, deps Deps) {
	orders := grp.Group("/orders")
	{
		orders.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"orders":   deps.Orders.Filtered(),
				"stats":    deps.Orders.Stats(),
				"selected": deps.Orders.Selected(),
			})
		})

		orders.POST("/reload", func(c *gin.Context) {
			if err := deps.Orders.Load(c.Request.Context()); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"orders": deps.Orders.Filtered(), "stats": deps.Orders.Stats()})
		})

		orders.POST("/filters", func(c *gin.Context) {
			var req struct {
				Search string `json:"search"`
				Status string `json:"status"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			deps.Orders.SetSearch(req.Search)
			if req.Status != "" {
				deps.Orders.SetStatusFilter(req.Status)
			}
			c.JSON(http.StatusOK, gin.H{"orders": deps.Orders.Filtered()})
		})

		orders.POST("/:id/toggle", func(c *gin.Context) {
			id, ok := paramID(c)
			if !ok {
				return
			}
			deps.Orders.ToggleDetails(id)
			c.JSON(http.StatusOK, gin.H{"selected": deps.Orders.Selected()})
		})

		orders.PUT("/:id/status", func(c *gin.Context) {
			id, ok := paramID(c)
			if !ok {
				return
			}
			var req struct {
				Status  string `json:"status" binding:"required"`
				Confirm bool   `json:"confirm"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !req.Confirm {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Status change must be confirmed"})
				return
			}
			if err := deps.Orders.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
		})

		orders.GET("/ws", deps.OrdersHub.Handler)
	}
}

func homepageRoutes(grp *gin.RouterGroup, deps Deps) {
	home := grp.Group("/homepage")
	{
		home.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, deps.Homepage.State())
		})

		home.POST("/reload", func(c *gin.Context) {
			if err := deps.Homepage.LoadData(c.Request.Context()); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, deps.Homepage.State())
		})

		home.POST("/view", func(c *gin.Context) {
			var req struct {
				View string `json:"view" binding:"required"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			deps.Homepage.SetView(req.View)
			c.JSON(http.StatusOK, deps.Homepage.State())
		})

		home.POST("/sections", func(c *gin.Context) {
			var input models.SectionInput
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := deps.Homepage.AddSection(c.Request.Context(), input); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusCreated, deps.Homepage.State())
		})

		home.DELETE("/sections/:id", func(c *gin.Context) {
			id, ok := paramID(c)
			if !ok {
				return
			}
			if c.Query("confirm") != "true" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Deletion must be confirmed"})
				return
			}
			if err := deps.Homepage.DeleteSection(c.Request.Context(), id); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, deps.Homepage.State())
		})

		home.POST("/sections/:id/manage", func(c *gin.Context) {
			id, ok := paramID(c)
			if !ok {
				return
			}
			if err := deps.Homepage.OpenContentManager(c.Request.Context(), id); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, deps.Homepage.State())
		})

		home.POST("/sections/close", func(c *gin.Context) {
			deps.Homepage.CloseContentManager()
			c.JSON(http.StatusOK, deps.Homepage.State())
		})

		home.POST("/search", func(c *gin.Context) {
			var req struct {
				Query string `json:"query"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := deps.Homepage.TypeAhead(c.Request.Context(), req.Query); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"results": deps.Homepage.State().SearchResults})
		})

		home.POST("/pin", func(c *gin.Context) {
			var drug models.Drug
			if err := c.ShouldBindJSON(&drug); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := deps.Homepage.AddPinned(c.Request.Context(), drug); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"pinned": deps.Homepage.PinnedIDs()})
		})

		home.DELETE("/pin/:id", func(c *gin.Context) {
			id, ok := paramID(c)
			if !ok {
				return
			}
			if err := deps.Homepage.RemovePinned(c.Request.Context(), id); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"pinned": deps.Homepage.PinnedIDs()})
		})

		home.POST("/categories/:id/edit", func(c *gin.Context) {
			id, ok := paramID(c)
			if !ok {
				return
			}
			deps.Homepage.StartCategoryEdit(id)
			c.JSON(http.StatusOK, deps.Homepage.State())
		})

		home.PUT("/categories/edit", func(c *gin.Context) {
			var input models.CategoryInput
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			deps.Homepage.SetCategoryBuffer(input)
			c.JSON(http.StatusOK, deps.Homepage.State())
		})

		home.POST("/categories/save", func(c *gin.Context) {
			if err := deps.Homepage.SaveCategoryEdit(c.Request.Context()); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, deps.Homepage.State())
		})

		home.POST("/categories/cancel", func(c *gin.Context) {
			deps.Homepage.CancelCategoryEdit()
			c.JSON(http.StatusOK, deps.Homepage.State())
		})
	}
}

func bannerRoutes(grp *gin.RouterGroup, deps Deps) {
	banners := grp.Group("/banners")
	{
		banners.GET("", func(c *gin.Context) {
			if err := deps.Banners.Load(c.Request.Context()); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"banners": deps.Banners.Banners()})
		})

		banners.POST("", func(c *gin.Context) {
			file, err := c.FormFile("image")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Banner image is required"})
				return
			}
			src, err := file.Open()
			if err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			defer src.Close()

			title := c.PostForm("title")
			description := c.PostForm("description")
			if err := deps.Banners.Upload(c.Request.Context(), title, description, file.Filename, src); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusCreated, gin.H{"banners": deps.Banners.Banners()})
		})

		banners.DELETE("/:id", func(c *gin.Context) {
			id, ok := paramID(c)
			if !ok {
				return
			}
			if c.Query("confirm") != "true" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Deletion must be confirmed"})
				return
			}
			if err := deps.Banners.Delete(c.Request.Context(), id); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"banners": deps.Banners.Banners()})
		})

		banners.PUT("/:id/toggle", func(c *gin.Context) {
			id, ok := paramID(c)
			if !ok {
				return
			}
			if err := deps.Banners.Toggle(c.Request.Context(), id); err != nil {
				respondErr(deps.Log, c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"banners": deps.Banners.Banners()})
		})
	}
}

// paramID parses the :id path segment; on failure it writes the 400 itself.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
