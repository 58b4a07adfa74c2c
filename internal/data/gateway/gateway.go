// Package gateway is the generic persistence surface over named record
// collections. Each call is a single round trip; callers that need several
// writes to succeed together pass a transaction through dbctx.Context.
package gateway

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

const (
	CollectionAssessments     = "assessments"
	CollectionStudentForm     = "student_form"
	CollectionDegrees         = "degrees"
	CollectionSpecializations = "specializations"
	CollectionCareerRoadmaps  = "career_roadmaps"
	CollectionUserRoadmaps    = "user_roadmaps"
	CollectionColleges        = "colleges"
	CollectionCollegeRankings = "college_rankings"
	CollectionUsers           = "users"
)

// ErrNotFound is returned by SelectOne when no record matches. It is an
// expected state, never wrapped together with a transport failure.
var ErrNotFound = errors.New("record not found")

var ErrConflict = errors.New("record conflicts with an existing unique key")

type UnknownCollectionError struct {
	Collection string
}

func (e *UnknownCollectionError) Error() string {
	return fmt.Sprintf("unknown collection %q", e.Collection)
}

// Filter is an equality conjunction over column names.
type Filter map[string]any

type Order struct {
	Column string
	Desc   bool
}

func Asc(col string) Order  { return Order{Column: col} }
func Desc(col string) Order { return Order{Column: col, Desc: true} }

type Gateway interface {
	Insert(dbc dbctx.Context, collection string, record any) error
	UpsertByKey(dbc dbctx.Context, collection string, keyFields []string, record any) error
	SelectOne(dbc dbctx.Context, collection string, filter Filter, orderBy []Order, dest any) error
	SelectMany(dbc dbctx.Context, collection string, filter Filter, orderBy []Order, limit int, dest any) error
}

var knownCollections = map[string]struct{}{
	CollectionAssessments:     {},
	CollectionStudentForm:     {},
	CollectionDegrees:         {},
	CollectionSpecializations: {},
	CollectionCareerRoadmaps:  {},
	CollectionUserRoadmaps:    {},
	CollectionColleges:        {},
	CollectionCollegeRankings: {},
	CollectionUsers:           {},
}

type gormGateway struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, baseLog *logger.Logger) Gateway {
	return &gormGateway{db: db, log: baseLog.With("component", "PersistenceGateway")}
}

func (g *gormGateway) scope(dbc dbctx.Context, collection string) (*gorm.DB, error) {
	if _, ok := knownCollections[collection]; !ok {
		return nil, &UnknownCollectionError{Collection: collection}
	}
	return dbc.Resolve(g.db).WithContext(dbc.Context()).Table(collection), nil
}

func (g *gormGateway) Insert(dbc dbctx.Context, collection string, record any) error {
	q, err := g.scope(dbc, collection)
	if err != nil {
		return err
	}
	if err := q.Create(record).Error; err != nil {
		return g.translate("insert", collection, err)
	}
	return nil
}

func (g *gormGateway) UpsertByKey(dbc dbctx.Context, collection string, keyFields []string, record any) error {
	if len(keyFields) == 0 {
		return fmt.Errorf("upsert %s: no key fields", collection)
	}
	q, err := g.scope(dbc, collection)
	if err != nil {
		return err
	}
	cols := make([]clause.Column, 0, len(keyFields))
	for _, k := range keyFields {
		cols = append(cols, clause.Column{Name: k})
	}
	if err := q.Clauses(clause.OnConflict{
		Columns:   cols,
		UpdateAll: true,
	}).Create(record).Error; err != nil {
		return g.translate("upsert", collection, err)
	}
	return nil
}

func (g *gormGateway) SelectOne(dbc dbctx.Context, collection string, filter Filter, orderBy []Order, dest any) error {
	q, err := g.scope(dbc, collection)
	if err != nil {
		return err
	}
	q = applyOrder(applyFilter(q, filter), orderBy)
	if err := q.Take(dest).Error; err != nil {
		return g.translate("select one", collection, err)
	}
	return nil
}

// SelectMany fills dest with every match. limit <= 0 means unbounded; an
// empty result is not an error.
func (g *gormGateway) SelectMany(dbc dbctx.Context, collection string, filter Filter, orderBy []Order, limit int, dest any) error {
	q, err := g.scope(dbc, collection)
	if err != nil {
		return err
	}
	q = applyOrder(applyFilter(q, filter), orderBy)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(dest).Error; err != nil {
		return g.translate("select many", collection, err)
	}
	return nil
}

func applyFilter(q *gorm.DB, filter Filter) *gorm.DB {
	if len(filter) == 0 {
		return q
	}
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q = q.Where(map[string]any{k: filter[k]})
	}
	return q
}

func applyOrder(q *gorm.DB, orderBy []Order) *gorm.DB {
	for _, o := range orderBy {
		if o.Column == "" {
			continue
		}
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	return q
}

func (g *gormGateway) translate(op, collection string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%s %s: %w", op, collection, ErrConflict)
	}
	g.log.Warn("gateway call failed", "op", op, "collection", collection, "error", err)
	return fmt.Errorf("%s %s: %w", op, collection, err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
