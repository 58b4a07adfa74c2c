// Command seed upserts the reference catalog into Postgres.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/yungbote/careerpath-backend/internal/app"
	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/db"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/seed"
)

func main() {
	file := flag.String("file", "", "catalog YAML to load instead of the embedded one")
	flag.Parse()

	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(context.Background(), log, cfg, *file); err != nil {
		log.Error("seed failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger, cfg app.Config, file string) error {
	catalog, err := loadCatalog(file)
	if err != nil {
		return err
	}
	pg, err := db.NewPostgresService(ctx, log, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer pg.Close()
	if err := pg.AutoMigrateAll(); err != nil {
		return err
	}
	gw := gateway.New(pg.DB(), log)
	_, err = seed.Apply(ctx, log, pg.DB(), seed.Repos{
		Degrees:         repos.NewDegreeRepo(gw, log),
		Specializations: repos.NewSpecializationRepo(gw, log),
		Roadmaps:        repos.NewCareerRoadmapRepo(gw, log),
		Colleges:        repos.NewCollegeRepo(gw, log),
		Rankings:        repos.NewCollegeRankingRepo(gw, log),
	}, catalog)
	return err
}

func loadCatalog(file string) (*seed.Catalog, error) {
	if file == "" {
		return seed.Default()
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.Load(f)
}
