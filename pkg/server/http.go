package server

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Depado/ginprom"
	"github.com/qastore/app/api/routes"
	"github.com/qastore/pkg/config"
	"github.com/qastore/pkg/database"

	"github.com/qastore/pkg/domains/auth"
	"github.com/qastore/pkg/domains/orders"
	"github.com/qastore/pkg/domains/simulator"
	"github.com/qastore/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func LaunchHttpServer(conf *config.Config, logger *zap.Logger) {
	logger.Info("Starting HTTP Server...")
	if conf.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	app := gin.New()
	app.Use(gin.LoggerWithFormatter(func(log gin.LogFormatterParams) string {
		return fmt.Sprintf("[%s] - %s \"%s %s %s %d %s\"\n",
			log.TimeStamp.Format("2006-01-02 15:04:05"),
			log.ClientIP,
			log.Method,
			log.Path,
			log.Request.Proto,
			log.StatusCode,
			log.Latency,
		)
	}))
	app.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	app.Use(gin.Recovery())
	app.Use(otelgin.Middleware(conf.App.Name))
	app.Use(middleware.ClaimIp())
	app.Use(cors.New(corsConfig(conf.Allows)))

	p := ginprom.New(
		ginprom.Engine(app),
		ginprom.Subsystem("gin"),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/docs/*any"),
	)
	app.Use(p.Instrument())

	db := database.DBClient()
	sim := simulator.New(simulator.Config{
		Enabled:         conf.Simulator.Enabled,
		DelayMs:         conf.Simulator.DelayMs,
		FailureRate:     conf.Simulator.FailureRate,
		NotFoundRate:    conf.Simulator.NotFoundRate,
		ServerErrorRate: conf.Simulator.ServerErrorRate,
	})

	api := app.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Simulator control surface is never itself simulated
	routes.SimulatorRoutes(api.Group("/simulator"), sim, conf.Admin.Key)

	// Everything else runs through the fault-injection gateway
	simulated := api.Group("", middleware.Simulate(sim))

	auth_repo := auth.NewRepo(db)
	auth_service := auth.NewService(auth_repo, logger)
	routes.AuthRoutes(simulated.Group("/auth"), auth_service, conf.App.Env)

	orders_repo := orders.NewRepo(db)
	orders_service := orders.NewService(orders_repo, logger)
	routes.OrderRoutes(simulated.Group("/orders"), orders_service)

	logger.Info("Server is running", zap.String("port", conf.App.Port))
	if err := app.Run(net.JoinHostPort(conf.App.Host, conf.App.Port)); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func corsConfig(allows config.Allows) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Origin", "Accept", "admin_key"},
		AllowOrigins:     []string{"*"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(allows.Methods) > 0 {
		cfg.AllowMethods = allows.Methods
	}
	if len(allows.Headers) > 0 {
		cfg.AllowHeaders = allows.Headers
	}
	if len(allows.Origins) > 0 {
		cfg.AllowOrigins = allows.Origins
	}
	return cfg
}
