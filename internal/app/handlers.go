package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/http"
	httpH "github.com/yungbote/careerpath-backend/internal/http/handlers"
	httpMW "github.com/yungbote/careerpath-backend/internal/http/middleware"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health     *httpH.HealthHandler
	User       *httpH.UserHandler
	Question   *httpH.QuestionHandler
	Intake     *httpH.IntakeHandler
	Assessment *httpH.AssessmentHandler
	Roadmap    *httpH.RoadmapHandler
	College    *httpH.CollegeHandler
}

func wireHandlers(log *logger.Logger, clients Clients, services Services, metrics *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	h := Handlers{
		User:     httpH.NewUserHandler(services.User),
		Question: httpH.NewQuestionHandler(),
		Intake: httpH.NewIntakeHandlerWithDeps(httpH.IntakeHandlerDeps{
			Log:       log,
			Registry:  services.Intake,
			Submitter: services.Assessments,
			Metrics:   metrics,
		}),
		Assessment: httpH.NewAssessmentHandler(log, services.Assessments),
		Roadmap:    httpH.NewRoadmapHandler(log, services.Roadmaps),
		College:    httpH.NewCollegeHandler(services.Colleges),
	}
	// A nil *goredis.Client must not become a non-nil interface.
	if clients.Redis != nil {
		h.Health = httpH.NewHealthHandler(clients.DB, clients.Redis)
	} else {
		h.Health = httpH.NewHealthHandler(clients.DB, nil)
	}
	return h
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:               log,
		Metrics:           metrics,
		ServiceName:       cfg.ServiceName,
		CORSOrigins:       cfg.CORSAllowedOrigins,
		Tracing:           cfg.OTelEnabled,
		AuthMiddleware:    middleware.Auth,
		HealthHandler:     handlers.Health,
		UserHandler:       handlers.User,
		QuestionHandler:   handlers.Question,
		IntakeHandler:     handlers.Intake,
		AssessmentHandler: handlers.Assessment,
		RoadmapHandler:    handlers.Roadmap,
		CollegeHandler:    handlers.College,
	})
}
