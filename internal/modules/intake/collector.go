// Package intake walks a user through one questionnaire and hands the
// finished answers downstream. A Collector is safe for concurrent use.
package intake

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/modules/recommendation"
	"github.com/yungbote/careerpath-backend/internal/normalization"
)

const DefaultAutoAdvanceDelay = 300 * time.Millisecond

// Scheduler runs fn once after d and returns a function that cancels it.
// fn must run on another goroutine, never before the Scheduler returns.
type Scheduler func(d time.Duration, fn func()) (cancel func())

func timerScheduler(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Submission is a complete, normalized questionnaire ready to be stored.
type Submission struct {
	UserID      uuid.UUID
	DisplayName string
	Version     assessment.SchemaVersion
	Questions   []string
	Raw         assessment.RawAnswers
	Record      assessment.AnswerRecord
}

type Outcome struct {
	AssessmentID uuid.UUID               `json:"assessment_id"`
	CompletedAt  time.Time               `json:"completed_at"`
	Record       assessment.AnswerRecord `json:"record"`
	Bundle       recommendation.Bundle   `json:"recommendations"`
}

type Submitter interface {
	Submit(ctx context.Context, s Submission) (*Outcome, error)
}

type Progress struct {
	SchemaVersion assessment.SchemaVersion `json:"schema_version"`
	Index         int                      `json:"index"`
	Total         int                      `json:"total"`
	Answered      int                      `json:"answered"`
	Percent       float64                  `json:"percent"`
	Complete      bool                     `json:"complete"`
	Submitting    bool                     `json:"submitting"`
}

type Option func(*Collector)

func WithScheduler(s Scheduler) Option {
	return func(c *Collector) {
		if s != nil {
			c.schedule = s
		}
	}
}

// WithAutoAdvanceDelay sets the delay before moving past an answered
// question. A non-positive delay disables auto-advance.
func WithAutoAdvanceDelay(d time.Duration) Option {
	return func(c *Collector) { c.delay = d }
}

type Collector struct {
	mu       sync.Mutex
	set      assessment.QuestionSet
	index    int
	answers  assessment.RawAnswers
	inFlight bool

	delay         time.Duration
	schedule      Scheduler
	cancelAdvance func()
	touched       time.Time
}

func NewCollector(set assessment.QuestionSet, opts ...Option) *Collector {
	c := &Collector{
		set:      set,
		answers:  assessment.RawAnswers{},
		delay:    DefaultAutoAdvanceDelay,
		schedule: timerScheduler,
		touched:  time.Now(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collector) Version() assessment.SchemaVersion { return c.set.Version }

func (c *Collector) Questions() assessment.QuestionSet { return c.set }

func (c *Collector) position(key string) int {
	for i, q := range c.set.Questions {
		if q.Key == key {
			return i
		}
	}
	return -1
}

// SelectOption records value for key. When the answered question is not the
// last one, the active index moves past it after the auto-advance delay
// unless the user navigated elsewhere in the meantime.
func (c *Collector) SelectOption(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touched = time.Now()

	pos := c.position(key)
	if pos < 0 {
		return &UnknownQuestionError{Key: key}
	}
	q := c.set.Questions[pos]
	if !q.HasOption(value) {
		return &InvalidOptionError{Key: key, Value: value, Allowed: q.OptionValues()}
	}
	c.answers[key] = value

	c.stopAdvanceLocked()
	if pos < c.set.Len()-1 && c.delay > 0 {
		c.cancelAdvance = c.schedule(c.delay, func() { c.advanceFrom(pos) })
	}
	return nil
}

func (c *Collector) advanceFrom(pos int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index == pos && pos < c.set.Len()-1 {
		c.index = pos + 1
	}
	c.cancelAdvance = nil
}

func (c *Collector) stopAdvanceLocked() {
	if c.cancelAdvance != nil {
		c.cancelAdvance()
		c.cancelAdvance = nil
	}
}

// GoToQuestion jumps to any valid index. Answers are never touched.
func (c *Collector) GoToQuestion(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touched = time.Now()
	if i < 0 || i >= c.set.Len() {
		return &IndexOutOfRangeError{Index: i, Total: c.set.Len()}
	}
	c.stopAdvanceLocked()
	c.index = i
	return nil
}

func (c *Collector) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Collector) Answers() assessment.RawAnswers {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.answers.Clone()
}

func (c *Collector) IsComplete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.set.Missing(c.answers)) == 0
}

func (c *Collector) Progress() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.set.Len()
	answered := total - len(c.set.Missing(c.answers))
	var pct float64
	if total > 0 {
		pct = float64(c.index+1) / float64(total) * 100
	}
	return Progress{
		SchemaVersion: c.set.Version,
		Index:         c.index,
		Total:         total,
		Answered:      answered,
		Percent:       pct,
		Complete:      answered == total,
		Submitting:    c.inFlight,
	}
}

func (c *Collector) lastTouched() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touched
}

// Submit normalizes the finished answers and passes them to sub. Only one
// submit may be outstanding at a time.
func (c *Collector) Submit(ctx context.Context, sub Submitter, userID uuid.UUID, displayName string) (*Outcome, error) {
	c.mu.Lock()
	c.touched = time.Now()
	if err := assessment.CheckComplete(c.set, c.answers); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	raw := c.answers.Clone()
	rec, err := normalization.Normalize(raw, c.set.Version)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	c.inFlight = true
	c.stopAdvanceLocked()
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	return sub.Submit(ctx, Submission{
		UserID:      userID,
		DisplayName: displayName,
		Version:     c.set.Version,
		Questions:   c.set.Titles(),
		Raw:         raw,
		Record:      rec,
	})
}
