package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/data/gateway"
	"github.com/yungbote/careerpath-backend/internal/data/repos/testutil"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
)

func TestDegreeAndSpecializationRepos(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	gw := testutil.Gateway(t, db)
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	degrees := NewDegreeRepo(gw, testutil.Logger(t))
	specs := NewSpecializationRepo(gw, testutil.Logger(t))

	btech := testutil.SeedDegree(t, ctx, tx, "btech", "Bachelor of Technology")
	bsc := testutil.SeedDegree(t, ctx, tx, "bsc", "Bachelor of Science")
	cse := testutil.SeedSpecialization(t, ctx, tx, btech.ID, "btech-cse", "Computer Science")
	testutil.SeedSpecialization(t, ctx, tx, btech.ID, "btech-ai", "Artificial Intelligence")
	physics := testutil.SeedSpecialization(t, ctx, tx, bsc.ID, "bsc-physics", "Physics")

	list, err := degrees.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Code != "bsc" {
		t.Fatalf("List: expected name order, got %+v", list)
	}

	got, err := specs.ListByDegree(dbc, btech.ID)
	if err != nil {
		t.Fatalf("ListByDegree: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Artificial Intelligence" {
		t.Fatalf("ListByDegree: unexpected %+v", got)
	}

	if s, err := specs.GetInDegree(dbc, btech.ID, cse.ID); err != nil || s.ID != cse.ID {
		t.Fatalf("GetInDegree: s=%+v err=%v", s, err)
	}
	if _, err := specs.GetInDegree(dbc, btech.ID, physics.ID); !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("GetInDegree (other degree): err=%v, want ErrNotFound", err)
	}

	updated, err := degrees.Upsert(dbc, &types.Degree{Code: "btech", Name: "B.Tech", DurationYears: 4})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if updated.ID != btech.ID || updated.Name != "B.Tech" {
		t.Fatalf("Upsert: expected stored id %v renamed, got %+v", btech.ID, updated)
	}
}

func TestCareerRoadmapRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewCareerRoadmapRepo(testutil.Gateway(t, db), testutil.Logger(t))

	if _, err := repo.GetBySpecialization(dbc, uuid.New()); !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("GetBySpecialization (missing): err=%v, want ErrNotFound", err)
	}

	d := testutil.SeedDegree(t, ctx, tx, "btech", "Bachelor of Technology")
	s := testutil.SeedSpecialization(t, ctx, tx, d.ID, "btech-cse", "Computer Science")
	seeded := testutil.SeedRoadmap(t, ctx, tx, s.ID)

	got, err := repo.GetBySpecialization(dbc, s.ID)
	if err != nil {
		t.Fatalf("GetBySpecialization: %v", err)
	}
	if got.ID != seeded.ID {
		t.Fatalf("GetBySpecialization: id=%v want %v", got.ID, seeded.ID)
	}
	if len(got.Skills) != 2 || got.Skills[0].Phase != "Foundation" || got.Skills[0].Skills[1] != "Data Structures" {
		t.Fatalf("GetBySpecialization: skills=%+v", got.Skills)
	}
	if got.AvgSalaryMax == nil || *got.AvgSalaryMax != 1800000 {
		t.Fatalf("GetBySpecialization: salary max=%v", got.AvgSalaryMax)
	}
	if len(got.TopCompanies) != 1 || got.TopCompanies[0].Type != "IT Services" {
		t.Fatalf("GetBySpecialization: companies=%+v", got.TopCompanies)
	}
}

func TestUserRoadmapRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewUserRoadmapRepo(testutil.Gateway(t, db), testutil.Logger(t))

	userID := uuid.New()
	created, err := repo.Create(dbc, &types.UserRoadmap{UserID: userID, DegreeID: uuid.New(), SpecializationID: uuid.New()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("Create: id not assigned")
	}
	list, err := repo.ListByUser(dbc, userID, 5)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID || list[0].RoadmapID != nil {
		t.Fatalf("ListByUser: unexpected %+v", list)
	}
}

func TestCollegeRepos(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	gw := testutil.Gateway(t, db)
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	colleges := NewCollegeRepo(gw, testutil.Logger(t))
	rankings := NewCollegeRankingRepo(gw, testutil.Logger(t))

	a := testutil.SeedCollege(t, ctx, tx, "Alpha Institute", "Delhi", true, 4.2, "B.Tech")
	b := testutil.SeedCollege(t, ctx, tx, "Beta College", "Kerala", false, 4.7, "B.Com")
	testutil.SeedRanking(t, ctx, tx, a.ID, 12, 80, 70)
	testutil.SeedRanking(t, ctx, tx, b.ID, 3, 90, 85)

	list, err := colleges.List(dbc, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != b.ID {
		t.Fatalf("List: expected rating order, got %+v", list)
	}
	if len(list[1].CoursesOffered) != 1 || list[1].CoursesOffered[0] != "B.Tech" {
		t.Fatalf("List: courses=%v", list[1].CoursesOffered)
	}

	rk, err := rankings.List(dbc)
	if err != nil {
		t.Fatalf("rankings List: %v", err)
	}
	if len(rk) != 2 || rk[0].CollegeID != b.ID {
		t.Fatalf("rankings List: expected rank order, got %+v", rk)
	}

	if err := rankings.Upsert(dbc, &types.CollegeRanking{CollegeID: a.ID, AllIndiaRank: 1}); err != nil {
		t.Fatalf("rankings Upsert: %v", err)
	}
	rk, err = rankings.List(dbc)
	if err != nil {
		t.Fatalf("rankings List after upsert: %v", err)
	}
	if len(rk) != 2 || rk[0].CollegeID != a.ID {
		t.Fatalf("rankings Upsert did not replace rank: %+v", rk)
	}
}
