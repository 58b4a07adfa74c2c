package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/domain/catalog"
)

func SeedDegree(tb testing.TB, ctx context.Context, tx *gorm.DB, code, name string) *types.Degree {
	tb.Helper()
	d := &types.Degree{
		ID:            uuid.New(),
		Name:          name,
		Code:          code,
		DurationYears: 4,
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed degree: %v", err)
	}
	return d
}

func SeedSpecialization(tb testing.TB, ctx context.Context, tx *gorm.DB, degreeID uuid.UUID, code, name string) *types.Specialization {
	tb.Helper()
	s := &types.Specialization{
		ID:       uuid.New(),
		DegreeID: degreeID,
		Name:     name,
		Code:     code,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed specialization: %v", err)
	}
	return s
}

func SeedRoadmap(tb testing.TB, ctx context.Context, tx *gorm.DB, specializationID uuid.UUID) *types.CareerRoadmap {
	tb.Helper()
	lo, hi := int64(400000), int64(1800000)
	r := &types.CareerRoadmap{
		ID:               uuid.New(),
		SpecializationID: specializationID,
		Skills: datatypes.JSONSlice[catalog.SkillPhase]{
			{Phase: "Foundation", Skills: []string{"Programming", "Data Structures"}},
			{Phase: "Advanced", Skills: []string{"Distributed Systems"}},
		},
		EntryRoles:     datatypes.JSONSlice[catalog.EntryRole]{{Role: "Software Engineer", Description: "Builds services"}},
		Certifications: datatypes.JSONSlice[catalog.Certification]{{Name: "AWS Developer", Priority: "high"}},
		Projects:       datatypes.JSONSlice[catalog.Project]{{Name: "Chat server", Description: "Realtime messaging"}},
		HigherStudies:  datatypes.JSONSlice[catalog.HigherStudy]{{Name: "M.Tech", Description: "Specialize further"}},
		AvgSalaryMin:   &lo,
		AvgSalaryMax:   &hi,
		TopCompanies:   datatypes.JSONSlice[catalog.Company]{{Name: "Infosys", Type: "IT Services"}},
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed roadmap: %v", err)
	}
	return r
}

func SeedCollege(tb testing.TB, ctx context.Context, tx *gorm.DB, name, state string, government bool, rating float64, courses ...string) *types.College {
	tb.Helper()
	c := &types.College{
		ID:             uuid.New(),
		Name:           name,
		LocationCity:   state + " City",
		LocationState:  state,
		IsGovernment:   government,
		Rating:         rating,
		CoursesOffered: datatypes.JSONSlice[string](courses),
		Facilities:     datatypes.JSONSlice[string]{"Library"},
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed college: %v", err)
	}
	return c
}

func SeedRanking(tb testing.TB, ctx context.Context, tx *gorm.DB, collegeID uuid.UUID, rank int, placement, overall float64) *types.CollegeRanking {
	tb.Helper()
	r := &types.CollegeRanking{
		ID:                   uuid.New(),
		CollegeID:            collegeID,
		AllIndiaRank:         rank,
		PlacementPerformance: placement,
		OverallIndexScore:    overall,
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed ranking: %v", err)
	}
	return r
}
