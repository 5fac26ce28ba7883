package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"loanlens/internal/config"
	"loanlens/internal/domain"
	"loanlens/internal/handler"
	"loanlens/internal/middleware"
	"loanlens/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	loanH *handler.LoanHandler,
	documentH *handler.DocumentHandler,
	scorecardH *handler.ScorecardHandler,
	dispositionH *handler.DispositionHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Loan snapshots; ingest is reserved for processors and admins
	loans := protected.Group("/loans")
	loans.POST("/:loanId/snapshot",
		middleware.RequireRole(domain.RoleProcessor, domain.RoleAdmin), loanH.IngestSnapshot)
	loans.GET("/:loanId/snapshot", loanH.GetSnapshot)

	// Document intake and validation
	loans.POST("/:loanId/documents", documentH.Upload)
	loans.GET("/:loanId/documents", documentH.List)

	documents := protected.Group("/documents")
	documents.GET("/:id", documentH.Get)
	documents.PUT("/:id/extraction", documentH.IngestExtraction)
	documents.POST("/:id/validate", documentH.Validate)
	documents.GET("/:id/validation", documentH.GetValidation)
	documents.GET("/:id/download", documentH.DownloadURL)
	documents.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), documentH.Delete)

	// Cross-document reconciliation
	loans.GET("/:loanId/scorecard", scorecardH.Get)
	loans.GET("/:loanId/scorecard/export", scorecardH.Export)

	// Review queue
	dispositions := protected.Group("/dispositions")
	dispositions.POST("",
		middleware.RequireRole(domain.RoleUnderwriter, domain.RoleAdmin), dispositionH.Create)
	dispositions.GET("/:id", dispositionH.Get)
	dispositions.PATCH("/:id",
		middleware.RequireRole(domain.RoleUnderwriter, domain.RoleAdmin), dispositionH.Update)
	loans.GET("/:loanId/dispositions", dispositionH.ListByLoan)

	return r
}
