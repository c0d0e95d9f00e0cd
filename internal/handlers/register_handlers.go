package handlers

import (
	"fmt"

	"github.com/alfadli/hrm_backend/cmd/docs"
	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/middleware"
	"github.com/alfadli/hrm_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := registerValidators(binding.Validator.Engine()); err != nil {
		return err
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Login is the only public API route
	if err := registerPublicAuthRoutes(r, cfg, services); err != nil {
		return err
	}

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

func registerPublicAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid login rate limit %q: %w", cfg.LoginRateLimit, err)
	}
	h := newAuthHandler(services.User, services.Token)
	r.POST("/api/v1/auth/login", middleware.RateLimit(loginLimiter), h.login)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAuthRoutes(v1, services.User, services.Token)
	registerBranchRoutes(v1, services.Branch)
	registerEmployeeRoutes(v1, services.Employee)
	registerAttendanceRoutes(v1, services.Attendance)
	registerPayrollRoutes(v1, services.Payroll)
	registerAccountingRoutes(v1, services.Accounting)
	registerSaleRoutes(v1, services.Sale)
	registerUserRoutes(v1, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
