package app

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/careerpath-backend/internal/modules/assessment"
	"github.com/yungbote/careerpath-backend/internal/modules/colleges"
	"github.com/yungbote/careerpath-backend/internal/modules/intake"
	"github.com/yungbote/careerpath-backend/internal/modules/roadmap"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type Services struct {
	Auth        services.AuthService
	User        services.UserService
	Assessments assessment.Usecases
	Roadmaps    roadmap.Usecases
	Colleges    colleges.Usecases
	Intake      *intake.Registry
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos, rdb *goredis.Client, metrics *observability.Metrics) (Services, error) {
	log.Info("Wiring services...")

	auth, err := services.NewAuthService(log, services.AuthConfig{
		JWTSecret: cfg.AuthJWTSecret,
		Issuer:    cfg.AuthJWTIssuer,
		Audience:  cfg.AuthJWTAudience,
	})
	if err != nil {
		return Services{}, fmt.Errorf("init auth service: %w", err)
	}

	var cache roadmap.Cache
	if rdb != nil {
		cache = roadmap.NewRedisCache(rdb, cfg.RoadmapCacheTTL)
	}

	return Services{
		Auth: auth,
		User: services.NewUserService(log, reposet.User),
		Assessments: assessment.New(assessment.UsecasesDeps{
			Log:          log,
			Metrics:      metrics,
			Assessments:  reposet.Assessment,
			StudentForms: reposet.StudentForm,
		}),
		Roadmaps: roadmap.New(roadmap.UsecasesDeps{
			Log:             log,
			Metrics:         metrics,
			Degrees:         reposet.Degree,
			Specializations: reposet.Specialization,
			Roadmaps:        reposet.CareerRoadmap,
			UserRoadmaps:    reposet.UserRoadmap,
			Cache:           cache,
		}),
		Colleges: colleges.New(colleges.UsecasesDeps{
			Log:      log,
			Colleges: reposet.College,
			Rankings: reposet.CollegeRanking,
		}),
		Intake: intake.NewRegistry(cfg.IntakeSessionTTL, intake.WithAutoAdvanceDelay(cfg.IntakeAutoAdvanceDelay)),
	}, nil
}
