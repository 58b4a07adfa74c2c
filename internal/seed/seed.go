// Package seed loads the reference catalog (degrees, specializations,
// roadmaps, colleges and rankings) from YAML and upserts it by natural key.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	Degrees  []DegreeEntry  `yaml:"degrees"`
	Colleges []CollegeEntry `yaml:"colleges"`
}

type DegreeEntry struct {
	types.Degree    `yaml:",inline"`
	Specializations []SpecializationEntry `yaml:"specializations"`
}

type SpecializationEntry struct {
	types.Specialization `yaml:",inline"`
	Roadmap              *types.CareerRoadmap `yaml:"roadmap"`
}

type CollegeEntry struct {
	types.College `yaml:",inline"`
	Ranking       *types.CollegeRanking `yaml:"ranking"`
}

type Stats struct {
	Degrees         int
	Specializations int
	Roadmaps        int
	Colleges        int
	Rankings        int
}

func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	codes := map[string]bool{}
	for _, d := range c.Degrees {
		if d.Code == "" || d.Name == "" {
			return fmt.Errorf("degree %q: code and name are required", d.Name)
		}
		if codes[d.Code] {
			return fmt.Errorf("duplicate code %q", d.Code)
		}
		codes[d.Code] = true
		for _, s := range d.Specializations {
			if s.Code == "" || s.Name == "" {
				return fmt.Errorf("specialization %q in %s: code and name are required", s.Name, d.Code)
			}
			if codes[s.Code] {
				return fmt.Errorf("duplicate code %q", s.Code)
			}
			codes[s.Code] = true
		}
	}
	names := map[string]bool{}
	for _, col := range c.Colleges {
		if col.Name == "" {
			return fmt.Errorf("college without a name")
		}
		if names[col.Name] {
			return fmt.Errorf("duplicate college %q", col.Name)
		}
		names[col.Name] = true
	}
	return nil
}

type Repos struct {
	Degrees         repos.DegreeRepo
	Specializations repos.SpecializationRepo
	Roadmaps        repos.CareerRoadmapRepo
	Colleges        repos.CollegeRepo
	Rankings        repos.CollegeRankingRepo
}

// Apply upserts the whole catalog in one transaction. Running it twice
// leaves the store unchanged.
func Apply(ctx context.Context, log *logger.Logger, db *gorm.DB, r Repos, c *Catalog) (Stats, error) {
	log = log.With("service", "CatalogSeeder")
	var st Stats
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st = Stats{}
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		for _, d := range c.Degrees {
			deg := d.Degree
			stored, err := r.Degrees.Upsert(dbc, &deg)
			if err != nil {
				return fmt.Errorf("degree %s: %w", d.Code, err)
			}
			st.Degrees++
			for _, s := range d.Specializations {
				spec := s.Specialization
				spec.DegreeID = stored.ID
				storedSpec, err := r.Specializations.Upsert(dbc, &spec)
				if err != nil {
					return fmt.Errorf("specialization %s: %w", s.Code, err)
				}
				st.Specializations++
				if s.Roadmap == nil {
					continue
				}
				rm := *s.Roadmap
				rm.SpecializationID = storedSpec.ID
				if err := r.Roadmaps.Upsert(dbc, &rm); err != nil {
					return fmt.Errorf("roadmap %s: %w", s.Code, err)
				}
				st.Roadmaps++
			}
		}
		for _, col := range c.Colleges {
			college := col.College
			stored, err := r.Colleges.Upsert(dbc, &college)
			if err != nil {
				return fmt.Errorf("college %s: %w", col.Name, err)
			}
			st.Colleges++
			if col.Ranking == nil {
				continue
			}
			rk := *col.Ranking
			rk.CollegeID = stored.ID
			if err := r.Rankings.Upsert(dbc, &rk); err != nil {
				return fmt.Errorf("ranking %s: %w", col.Name, err)
			}
			st.Rankings++
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	log.Info("catalog seeded",
		"degrees", st.Degrees,
		"specializations", st.Specializations,
		"roadmaps", st.Roadmaps,
		"colleges", st.Colleges,
		"rankings", st.Rankings,
	)
	return st, nil
}
