package intake

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/modules/recommendation"
)

type fakeScheduler struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

func (f *fakeScheduler) schedule(d time.Duration, fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := len(f.pending)
	f.pending = append(f.pending, fn)
	f.delays = append(f.delays, d)
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.pending[idx] = nil
	}
}

// fireAll runs every pending, uncancelled callback.
func (f *fakeScheduler) fireAll() {
	f.mu.Lock()
	fns := make([]func(), 0, len(f.pending))
	for i, fn := range f.pending {
		if fn != nil {
			fns = append(fns, fn)
			f.pending[i] = nil
		}
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

type recordingSubmitter struct {
	mu    sync.Mutex
	got   []Submission
	block chan struct{}
	err   error
}

func (s *recordingSubmitter) Submit(ctx context.Context, sub Submission) (*Outcome, error) {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	s.got = append(s.got, sub)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &Outcome{AssessmentID: uuid.New(), Record: sub.Record, Bundle: recommendation.Derive(sub.Record)}, nil
}

func v1Set(t *testing.T) assessment.QuestionSet {
	t.Helper()
	set, err := assessment.Lookup(assessment.SchemaCareerSurveyV1)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	return set
}

func answerAll(t *testing.T, c *Collector, order []int) {
	t.Helper()
	set := c.Questions()
	for _, i := range order {
		q := set.Questions[i]
		if err := c.SelectOption(q.Key, q.Options[0].Value); err != nil {
			t.Fatalf("SelectOption(%s): %v", q.Key, err)
		}
	}
}

func TestSelectOptionValidation(t *testing.T) {
	c := NewCollector(v1Set(t), WithAutoAdvanceDelay(0))

	err := c.SelectOption("q42", "science")
	var uq *UnknownQuestionError
	if !errors.As(err, &uq) || uq.Key != "q42" {
		t.Fatalf("SelectOption(unknown key) err=%v", err)
	}

	err = c.SelectOption("q1", "astrology")
	var io *InvalidOptionError
	if !errors.As(err, &io) {
		t.Fatalf("SelectOption(bad value) err=%v, want InvalidOptionError", err)
	}
	if len(io.Allowed) != 4 {
		t.Fatalf("InvalidOptionError.Allowed=%v", io.Allowed)
	}
	if _, ok := c.Answers()["q1"]; ok {
		t.Fatalf("invalid option must not be recorded")
	}

	if err := c.SelectOption("q1", "science"); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if got := c.Answers()["q1"]; got != "science" {
		t.Fatalf("Answers()[q1]=%q", got)
	}
	if err := c.SelectOption("q1", "arts"); err != nil {
		t.Fatalf("SelectOption (change): %v", err)
	}
	if got := c.Answers()["q1"]; got != "arts" {
		t.Fatalf("Answers()[q1]=%q after change", got)
	}
}

func TestAutoAdvance(t *testing.T) {
	fs := &fakeScheduler{}
	c := NewCollector(v1Set(t), WithScheduler(fs.schedule))

	if err := c.SelectOption("q1", "science"); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if c.Index() != 0 {
		t.Fatalf("index moved before the delay elapsed")
	}
	if fs.delays[0] != DefaultAutoAdvanceDelay {
		t.Fatalf("delay=%v, want %v", fs.delays[0], DefaultAutoAdvanceDelay)
	}
	fs.fireAll()
	if c.Index() != 1 {
		t.Fatalf("Index()=%d after auto-advance, want 1", c.Index())
	}

	// Navigating away cancels the pending advance.
	if err := c.SelectOption("q2", "research"); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if err := c.GoToQuestion(5); err != nil {
		t.Fatalf("GoToQuestion: %v", err)
	}
	fs.fireAll()
	if c.Index() != 5 {
		t.Fatalf("Index()=%d, cancelled advance still fired", c.Index())
	}
}

func TestNoAutoAdvanceOnLastQuestion(t *testing.T) {
	fs := &fakeScheduler{}
	set := v1Set(t)
	c := NewCollector(set, WithScheduler(fs.schedule))
	last := set.Len() - 1
	if err := c.GoToQuestion(last); err != nil {
		t.Fatalf("GoToQuestion: %v", err)
	}
	if err := c.SelectOption(set.Questions[last].Key, set.Questions[last].Options[0].Value); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if len(fs.pending) != 0 {
		t.Fatalf("scheduled an advance from the last question")
	}
	if c.Index() != last {
		t.Fatalf("Index()=%d, want %d", c.Index(), last)
	}
}

func TestGoToQuestionBounds(t *testing.T) {
	c := NewCollector(v1Set(t))
	for _, i := range []int{-1, 9, 100} {
		err := c.GoToQuestion(i)
		var oor *IndexOutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("GoToQuestion(%d) err=%v, want IndexOutOfRangeError", i, err)
		}
		if oor.Total != 9 {
			t.Fatalf("IndexOutOfRangeError.Total=%d", oor.Total)
		}
	}
	if err := c.GoToQuestion(8); err != nil {
		t.Fatalf("GoToQuestion(8): %v", err)
	}
}

func TestNavigationNeverMutatesAnswers(t *testing.T) {
	c := NewCollector(v1Set(t), WithAutoAdvanceDelay(0))
	answerAll(t, c, []int{0, 3, 6})
	before := c.Answers()

	for _, i := range []int{2, 7, 2, 0, 8} {
		if err := c.GoToQuestion(i); err != nil {
			t.Fatalf("GoToQuestion(%d): %v", i, err)
		}
		if !reflect.DeepEqual(c.Answers(), before) {
			t.Fatalf("answers changed after GoToQuestion(%d): %v vs %v", i, c.Answers(), before)
		}
	}
	if err := c.GoToQuestion(2); err != nil {
		t.Fatalf("GoToQuestion: %v", err)
	}
	if c.Index() != 2 {
		t.Fatalf("Index()=%d", c.Index())
	}
}

func TestCompletenessGate(t *testing.T) {
	tests := []struct {
		name  string
		order []int
	}{
		{name: "presentation order", order: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "reverse order", order: []int{8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{name: "scattered", order: []int{4, 0, 8, 2, 6, 1, 7, 3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(v1Set(t), WithAutoAdvanceDelay(0))
			sub := &recordingSubmitter{}
			userID := uuid.New()

			for n, i := range tt.order {
				_, err := c.Submit(context.Background(), sub, userID, "Asha")
				var inc *assessment.IncompleteAssessmentError
				if !errors.As(err, &inc) {
					t.Fatalf("Submit after %d answers err=%v, want IncompleteAssessmentError", n, err)
				}
				if len(inc.Missing) != 9-n {
					t.Fatalf("Missing=%v after %d answers", inc.Missing, n)
				}
				if c.IsComplete() {
					t.Fatalf("IsComplete() true after %d answers", n)
				}
				q := c.Questions().Questions[i]
				if err := c.SelectOption(q.Key, q.Options[len(q.Options)-1].Value); err != nil {
					t.Fatalf("SelectOption: %v", err)
				}
			}
			if !c.IsComplete() {
				t.Fatalf("IsComplete() false after all answers")
			}
			out, err := c.Submit(context.Background(), sub, userID, "Asha")
			if err != nil {
				t.Fatalf("Submit: %v", err)
			}
			if out == nil || len(sub.got) != 1 {
				t.Fatalf("submitter not called exactly once: %d", len(sub.got))
			}
			got := sub.got[0]
			if got.UserID != userID || got.Version != assessment.SchemaCareerSurveyV1 || len(got.Questions) != 9 {
				t.Fatalf("unexpected submission: %+v", got)
			}
			if got.Record.FavoriteSubject != "arts" || got.Record.ExamInterest != "creative-humanities" {
				t.Fatalf("record not normalized: %+v", got.Record)
			}
		})
	}
}

func TestSubmitInFlightGuard(t *testing.T) {
	c := NewCollector(v1Set(t), WithAutoAdvanceDelay(0))
	answerAll(t, c, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})

	sub := &recordingSubmitter{block: make(chan struct{})}
	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background(), sub, uuid.New(), "")
		done <- err
	}()

	deadline := time.After(2 * time.Second)
	for !c.Progress().Submitting {
		select {
		case <-deadline:
			t.Fatalf("first submit never started")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if _, err := c.Submit(context.Background(), sub, uuid.New(), ""); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("second Submit err=%v, want ErrSubmitInFlight", err)
	}
	close(sub.block)
	if err := <-done; err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if c.Progress().Submitting {
		t.Fatalf("in-flight flag not cleared")
	}
}

func TestSubmitErrorClearsInFlight(t *testing.T) {
	c := NewCollector(v1Set(t), WithAutoAdvanceDelay(0))
	answerAll(t, c, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	boom := errors.New("store unavailable")
	sub := &recordingSubmitter{err: boom}

	if _, err := c.Submit(context.Background(), sub, uuid.New(), ""); !errors.Is(err, boom) {
		t.Fatalf("Submit err=%v, want %v", err, boom)
	}
	sub.err = nil
	if _, err := c.Submit(context.Background(), sub, uuid.New(), ""); err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
}

func TestProgress(t *testing.T) {
	c := NewCollector(v1Set(t), WithAutoAdvanceDelay(0))
	p := c.Progress()
	if p.Total != 9 || p.Answered != 0 || p.Index != 0 {
		t.Fatalf("Progress()=%+v", p)
	}
	answerAll(t, c, []int{0, 1})
	if err := c.GoToQuestion(2); err != nil {
		t.Fatalf("GoToQuestion: %v", err)
	}
	p = c.Progress()
	if p.Answered != 2 || p.Complete {
		t.Fatalf("Progress()=%+v", p)
	}
	if p.Percent < 33.3 || p.Percent > 33.4 {
		t.Fatalf("Percent=%v, want ~33.3", p.Percent)
	}
}

func TestStudentProfileV2Collector(t *testing.T) {
	set, err := assessment.Lookup(assessment.SchemaStudentProfileV2)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	c := NewCollector(set, WithAutoAdvanceDelay(0))
	if err := c.SelectOption("q1", "science"); err == nil {
		t.Fatalf("v1 key accepted by v2 collector")
	}
	answerAll(t, c, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	sub := &recordingSubmitter{}
	if _, err := c.Submit(context.Background(), sub, uuid.New(), "Ravi"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	rec := sub.got[0].Record
	if rec.Qualification != "class10" || rec.FavoriteSubject != "mathematics" || rec.CareerGoal != "private" {
		t.Fatalf("v2 record: %+v", rec)
	}
}
