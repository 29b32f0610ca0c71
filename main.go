package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Gbotemi-ojo/quick-medics-management/client"
	"github.com/Gbotemi-ojo/quick-medics-management/config"
	bannercontroller "github.com/Gbotemi-ojo/quick-medics-management/controllers/banner"
	drugformcontroller "github.com/Gbotemi-ojo/quick-medics-management/controllers/drugform"
	homepagecontroller "github.com/Gbotemi-ojo/quick-medics-management/controllers/homepage"
	inventorycontroller "github.com/Gbotemi-ojo/quick-medics-management/controllers/inventory"
	logincontroller "github.com/Gbotemi-ojo/quick-medics-management/controllers/login"
	ordercontrollers "github.com/Gbotemi-ojo/quick-medics-management/controllers/orders"
	"github.com/Gbotemi-ojo/quick-medics-management/logger"
	"github.com/Gbotemi-ojo/quick-medics-management/routes"
	"github.com/Gbotemi-ojo/quick-medics-management/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	log.Println("✅ Configuration loaded")

	appLog := logger.Setup(logger.Options{
		Level:   cfg.LogLevel,
		Path:    cfg.LogPath,
		MaxMB:   cfg.LogMaxMB,
		MaxAge:  cfg.LogMaxAge,
		Backups: 3,
	})

	sess, err := session.Open(cfg.SessionDB)
	if err != nil {
		log.Fatalf("❌ Failed to open session store: %v", err)
	}
	log.Println("✅ Session store ready:", cfg.SessionDB)

	api := client.New(cfg.APIBaseURL, sess)

	hub := ordercontrollers.NewHub()
	orderCtl := ordercontrollers.New(api, hub.Broadcast)
	inventoryCtl := inventorycontroller.New(api, appLog)
	defer inventoryCtl.Close()
	formCtl := drugformcontroller.New(api, func() {
		// A save invalidates the listing the staff are looking at.
		go func() {
			if err := inventoryCtl.Refresh(context.Background()); err != nil {
				appLog.WithError(err).Warn("inventory refresh after save failed")
			}
		}()
	})
	homeCtl := homepagecontroller.New(api)
	bannerCtl := bannercontroller.New(api)
	loginCtl := logincontroller.New(api, sess, nil)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		Log:       appLog,
		JWTSecret: cfg.JWTSecret,
		Session:   sess,
		API:       api,
		Inventory: inventoryCtl,
		DrugForm:  formCtl,
		Orders:    orderCtl,
		OrdersHub: hub,
		Homepage:  homeCtl,
		Banners:   bannerCtl,
		Login:     loginCtl,
	})

	log.Println("🚀 Quick Medics management gateway listening on", cfg.Address)
	if err := r.Run(cfg.Address); err != nil {
		log.Fatalf("❌ Server exited: %v", err)
	}
}
