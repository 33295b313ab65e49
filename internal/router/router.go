package router

import (
	"github.com/ctabares06/where-my-cash-goes/internal/config"
	"github.com/ctabares06/where-my-cash-goes/internal/handler"
	"github.com/ctabares06/where-my-cash-goes/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the API route table.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret

	// no auth required
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// signed-in endpoints
	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(jwtSecret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/me", handler.GetMe)
	protected.POST("/profile", handler.UpdateProfile(db))
	protected.POST("/profile/password", handler.ChangePassword(db))

	categoryHandler := handler.NewCategoryHandler(db)
	protected.POST("/categories", categoryHandler.Create)
	protected.GET("/categories", categoryHandler.List)
	protected.GET("/categories/:id", categoryHandler.Get)
	protected.PUT("/categories/:id", categoryHandler.Update)
	protected.DELETE("/categories/:id", categoryHandler.Delete)

	tagHandler := handler.NewTagHandler(db)
	protected.POST("/tags", tagHandler.Create)
	protected.GET("/tags", tagHandler.List)
	protected.GET("/tags/:id", tagHandler.Get)
	protected.PUT("/tags/:id", tagHandler.Update)
	protected.DELETE("/tags/:id", tagHandler.Delete)

	cycleHandler := handler.NewCycleHandler(db)
	protected.POST("/cycles", cycleHandler.Create)
	protected.GET("/cycles", cycleHandler.List)
	protected.GET("/cycles/:id", cycleHandler.Get)
	protected.PUT("/cycles/:id", cycleHandler.Update)
	protected.DELETE("/cycles/:id", cycleHandler.Delete)

	transactionHandler := handler.NewTransactionHandler(db)
	protected.POST("/transactions", transactionHandler.Create)
	protected.GET("/transactions", transactionHandler.List)
	protected.GET("/transactions/:id", transactionHandler.Get)
	protected.PUT("/transactions/:id", transactionHandler.Update)
	protected.DELETE("/transactions/:id", transactionHandler.Delete)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	auditHandler := handler.NewAuditHandler(db)
	protected.GET("/logs", auditHandler.ListLogs)

	return r
}
