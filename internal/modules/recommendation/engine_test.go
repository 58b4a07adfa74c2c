package recommendation

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
)

func optionValues(t *testing.T, version assessment.SchemaVersion, key string) []string {
	t.Helper()
	set, err := assessment.Lookup(version)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	q, ok := set.Question(key)
	if !ok {
		t.Fatalf("question %q missing", key)
	}
	return q.OptionValues()
}

func TestDeriveScienceResearchScenario(t *testing.T) {
	b := Derive(assessment.AnswerRecord{
		FavoriteSubject: "science",
		CareerGoal:      "research-higher",
		ExamInterest:    "technical-medical",
	})
	if b.RecommendedStream != "Medical & Life Sciences" {
		t.Fatalf("RecommendedStream=%q", b.RecommendedStream)
	}
	if len(b.SuitableDegrees) == 0 || b.SuitableDegrees[0] != "MBBS" {
		t.Fatalf("SuitableDegrees=%v", b.SuitableDegrees)
	}
	if b.CareerPathLabel != "Research & Academia" {
		t.Fatalf("CareerPathLabel=%q", b.CareerPathLabel)
	}
	if b.CareerPath != "research-higher" {
		t.Fatalf("CareerPath=%q", b.CareerPath)
	}
	want := []string{"JEE Main/Advanced", "NEET", "GATE", "CDS"}
	if !reflect.DeepEqual(b.RelevantExams, want) {
		t.Fatalf("RelevantExams=%v, want %v", b.RelevantExams, want)
	}
}

func TestDeriveUnknownExamFallsBackToEmpty(t *testing.T) {
	b := Derive(assessment.AnswerRecord{FavoriteSubject: "commerce", ExamInterest: "xyz"})
	if b.RelevantExams == nil || len(b.RelevantExams) != 0 {
		t.Fatalf("RelevantExams=%#v, want empty non-nil", b.RelevantExams)
	}
	if b.RecommendedStream != "Business & Commerce" {
		t.Fatalf("RecommendedStream=%q", b.RecommendedStream)
	}
	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Contains(raw, []byte(`"relevantExams":[]`)) {
		t.Fatalf("expected empty exam array in %s", raw)
	}
}

func TestDeriveFallbacks(t *testing.T) {
	tests := []struct {
		name       string
		rec        assessment.AnswerRecord
		wantStream string
		wantLabel  string
		wantPath   string
		wantMotive string
		wantFirst  string
	}{
		{
			name:       "empty record",
			rec:        assessment.AnswerRecord{},
			wantStream: "Engineering & Technology",
			wantLabel:  "not specified",
			wantPath:   "not specified",
			wantMotive: "not specified",
			wantFirst:  "Local Government College",
		},
		{
			name:       "unknown subject reads mathematics row",
			rec:        assessment.AnswerRecord{FavoriteSubject: "astronomy", AcademicPerformance: "excellent"},
			wantStream: "Engineering & Technology",
			wantLabel:  "not specified",
			wantPath:   "not specified",
			wantMotive: "not specified",
			wantFirst:  "IIT Delhi",
		},
		{
			name:       "unrecognized goal passes through",
			rec:        assessment.AnswerRecord{FavoriteSubject: "arts", CareerGoal: "freelance", Motivation: "passion", AcademicPerformance: "good"},
			wantStream: "Arts & Humanities",
			wantLabel:  "freelance",
			wantPath:   "freelance",
			wantMotive: "passion",
			wantFirst:  "JNU",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Derive(tt.rec)
			if b.RecommendedStream != tt.wantStream {
				t.Fatalf("RecommendedStream=%q, want %q", b.RecommendedStream, tt.wantStream)
			}
			if b.CareerPathLabel != tt.wantLabel || b.CareerPath != tt.wantPath || b.Motivation != tt.wantMotive {
				t.Fatalf("echo fields: %+v", b)
			}
			if len(b.SuggestedColleges) == 0 || b.SuggestedColleges[0] != tt.wantFirst {
				t.Fatalf("SuggestedColleges=%v, want first %q", b.SuggestedColleges, tt.wantFirst)
			}
		})
	}
}

func TestDeriveCollegeTiers(t *testing.T) {
	tests := []struct {
		performance string
		want        string
	}{
		{performance: "excellent", want: "SRCC"},
		{performance: "good", want: "IIMs"},
		{performance: "average", want: "Local Government College"},
		{performance: "needs-improvement", want: "Local Government College"},
		{performance: "", want: "Local Government College"},
	}
	for _, tt := range tests {
		b := Derive(assessment.AnswerRecord{FavoriteSubject: "commerce", AcademicPerformance: tt.performance})
		if b.SuggestedColleges[0] != tt.want {
			t.Fatalf("Derive(commerce, %q) colleges=%v, want first %q", tt.performance, b.SuggestedColleges, tt.want)
		}
	}
}

// Every combination of the fields the tables read, plus an empty and an
// unrecognized value for each, yields a bundle with nothing left unset.
func TestDeriveTotalAndDeterministic(t *testing.T) {
	extra := []string{"", "unrecognized"}
	subjects := append(optionValues(t, assessment.SchemaCareerSurveyV1, "q1"), extra...)
	goals := append(optionValues(t, assessment.SchemaCareerSurveyV1, "q3"), extra...)
	motives := append(optionValues(t, assessment.SchemaCareerSurveyV1, "q5"), extra...)
	exams := append(optionValues(t, assessment.SchemaCareerSurveyV1, "q6"), extra...)
	perf := append(optionValues(t, assessment.SchemaStudentProfileV2, "performance"), extra...)

	for _, s := range subjects {
		for _, g := range goals {
			for _, m := range motives {
				for _, e := range exams {
					for _, p := range perf {
						rec := assessment.AnswerRecord{FavoriteSubject: s, CareerGoal: g, Motivation: m, ExamInterest: e, AcademicPerformance: p}
						a, b := Derive(rec), Derive(rec)
						if !reflect.DeepEqual(a, b) {
							t.Fatalf("Derive(%+v) not deterministic", rec)
						}
						if a.RecommendedStream == "" || a.CareerPath == "" || a.CareerPathLabel == "" || a.Motivation == "" {
							t.Fatalf("Derive(%+v) left a field empty: %+v", rec, a)
						}
						if a.SuitableDegrees == nil || a.SuggestedColleges == nil || a.RelevantExams == nil || a.KeySkills == nil {
							t.Fatalf("Derive(%+v) returned a nil list: %+v", rec, a)
						}
						if len(a.SuitableDegrees) == 0 || len(a.SuggestedColleges) == 0 || len(a.KeySkills) == 0 {
							t.Fatalf("Derive(%+v) returned an empty table row: %+v", rec, a)
						}
					}
				}
			}
		}
	}
}

func TestDeriveIsByteIdentical(t *testing.T) {
	rec := assessment.AnswerRecord{FavoriteSubject: "mathematics", CareerGoal: "private", ExamInterest: "management-commerce", Motivation: "salary", AcademicPerformance: "good"}
	first, err := json.Marshal(Derive(rec))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _ := json.Marshal(Derive(rec))
		if !bytes.Equal(first, again) {
			t.Fatalf("run %d differs:\n%s\n%s", i, first, again)
		}
	}
}

func TestDeriveDoesNotShareTableSlices(t *testing.T) {
	rec := assessment.AnswerRecord{FavoriteSubject: "science", ExamInterest: "technical-medical", AcademicPerformance: "excellent"}
	a := Derive(rec)
	a.SuitableDegrees[0] = "mutated"
	a.RelevantExams[0] = "mutated"
	a.SuggestedColleges[0] = "mutated"
	b := Derive(rec)
	if b.SuitableDegrees[0] != "MBBS" || b.RelevantExams[0] != "JEE Main/Advanced" || b.SuggestedColleges[0] != "AIIMS Delhi" {
		t.Fatalf("mutating a bundle leaked into the tables: %+v", b)
	}
}
