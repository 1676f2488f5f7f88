package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/teylo/teylo-backend/config"
	httpapi "github.com/teylo/teylo-backend/internal/api/http"
	buildhttp "github.com/teylo/teylo-backend/internal/build/http"
	buildrepo "github.com/teylo/teylo-backend/internal/build/repository"
	buildservice "github.com/teylo/teylo-backend/internal/build/service"
	"github.com/teylo/teylo-backend/internal/gamedesign"
	"github.com/teylo/teylo-backend/internal/middleware"
	projecthttp "github.com/teylo/teylo-backend/internal/projects/http"
	projectrepo "github.com/teylo/teylo-backend/internal/projects/repository"
	projectservice "github.com/teylo/teylo-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	Redis       *redis.Client
	DB          *sql.DB
}

// BuildRouter wires repositories, services, and handlers into the gin engine
// and returns it along with the orchestrator so main can wait for in-flight
// builds on shutdown.
func BuildRouter(dep RouterDeps) (*gin.Engine, *buildservice.Orchestrator) {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, dep.Redis, dep.DB)
	healthHandler.RegisterRoutes(r)

	// Finished bundles are served straight from the builds directory.
	r.Static("/builds", dep.Cfg.Build.BuildsDir)

	projectRepo := projectrepo.NewProjectRepository(dep.Redis)
	jobRepo := buildrepo.NewJobRepository(dep.Redis)

	var historyRepo *buildrepo.HistoryRepository
	if dep.DB != nil {
		historyRepo = buildrepo.NewHistoryRepository(dep.DB)
	}

	var producer gamedesign.Producer
	if dep.Cfg.App.ProducerURL != "" {
		producer = gamedesign.NewHTTPProducer(dep.Cfg.App.ProducerURL)
	}

	projectService := projectservice.NewProjectService(projectRepo, producer)
	orchestrator := buildservice.NewOrchestrator(jobRepo, projectRepo, historyRepo, dep.Cfg.Build)
	projectService.SetJobCleaner(orchestrator)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	api.Use(middleware.APIKeyMiddleware(dep.Cfg.App.APIKey))

	projecthttp.New(projectService).Register(api)
	buildhttp.New(orchestrator).Register(api)

	return r, orchestrator
}
