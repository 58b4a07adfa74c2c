package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/careerpath-backend/internal/http/handlers"
	httpMW "github.com/yungbote/careerpath-backend/internal/http/middleware"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string
	// Tracing enables the otel gin middleware.
	Tracing bool

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler     *httpH.HealthHandler
	UserHandler       *httpH.UserHandler
	QuestionHandler   *httpH.QuestionHandler
	IntakeHandler     *httpH.IntakeHandler
	AssessmentHandler *httpH.AssessmentHandler
	RoadmapHandler    *httpH.RoadmapHandler
	CollegeHandler    *httpH.CollegeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Tracing {
		name := cfg.ServiceName
		if name == "" {
			name = "careerpath"
		}
		r.Use(otelgin.Middleware(name))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics, "/metrics", "/healthcheck", "/readyz"))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	protected := r.Group("/api")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// User (Me)
		if cfg.UserHandler != nil {
			protected.GET("/me", cfg.UserHandler.GetMe)
		}

		// Questionnaire
		if cfg.QuestionHandler != nil {
			protected.GET("/questions", cfg.QuestionHandler.GetQuestions)
		}
		if cfg.IntakeHandler != nil {
			protected.POST("/assessment/session", cfg.IntakeHandler.StartSession)
			protected.GET("/assessment/session", cfg.IntakeHandler.GetSession)
			protected.PUT("/assessment/session/answers", cfg.IntakeHandler.SelectAnswer)
			protected.POST("/assessment/session/goto", cfg.IntakeHandler.GoTo)
			protected.POST("/assessment/session/submit", cfg.IntakeHandler.Submit)
		}

		// Assessments & recommendations
		if cfg.AssessmentHandler != nil {
			protected.POST("/assessments", cfg.AssessmentHandler.Submit)
			protected.GET("/assessments", cfg.AssessmentHandler.History)
			protected.GET("/assessments/latest", cfg.AssessmentHandler.Latest)
			protected.GET("/recommendations", cfg.AssessmentHandler.Recommendations)
		}

		// Streams & roadmaps
		if cfg.RoadmapHandler != nil {
			protected.GET("/degrees", cfg.RoadmapHandler.ListDegrees)
			protected.GET("/degrees/:id/specializations", cfg.RoadmapHandler.ListSpecializations)
			protected.GET("/roadmap", cfg.RoadmapHandler.GetRoadmap)
			protected.POST("/user-roadmaps", cfg.RoadmapHandler.SaveSelection)
			protected.GET("/user-roadmaps", cfg.RoadmapHandler.ListSelections)
		}

		// Colleges
		if cfg.CollegeHandler != nil {
			protected.GET("/colleges", cfg.CollegeHandler.Search)
			protected.GET("/colleges/facets", cfg.CollegeHandler.Facets)
		}
	}

	return r
}
