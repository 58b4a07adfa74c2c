package normalization

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
)

func TestNormalizeCareerSurveyV1(t *testing.T) {
	raw := assessment.RawAnswers{
		"q1": "science",
		"q2": "research",
		"q3": "research-higher",
		"q4": "practical",
		"q5": "passion",
		"q6": "technical-medical",
		"q7": "ideas",
		"q8": "government",
		"q9": "all",
	}
	got, err := Normalize(raw, assessment.SchemaCareerSurveyV1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := assessment.AnswerRecord{
		SchemaVersion:     assessment.SchemaCareerSurveyV1,
		FavoriteSubject:   "science",
		WorkStyle:         "research",
		CareerGoal:        "research-higher",
		LearningMode:      "practical",
		Motivation:        "passion",
		ExamInterest:      "technical-medical",
		WorkEnvironment:   "ideas",
		CollegeType:       "government",
		RoadmapPreference: "all",
	}
	if got != want {
		t.Fatalf("Normalize()=%+v, want %+v", got, want)
	}
}

func TestNormalizeStudentProfileV2Mapping(t *testing.T) {
	tests := []struct {
		name string
		raw  assessment.RawAnswers
		want func(r assessment.AnswerRecord) bool
	}{
		{
			name: "arts-languages folds into arts",
			raw:  assessment.RawAnswers{"subjects": "arts-languages"},
			want: func(r assessment.AnswerRecord) bool { return r.FavoriteSubject == assessment.SubjectArts },
		},
		{
			name: "jee-neet is technical-medical",
			raw:  assessment.RawAnswers{"examPreference": "jee-neet"},
			want: func(r assessment.AnswerRecord) bool { return r.ExamInterest == assessment.ExamTechnicalMedical },
		},
		{
			name: "research interest is research-higher goal",
			raw:  assessment.RawAnswers{"careerInterest": "research"},
			want: func(r assessment.AnswerRecord) bool { return r.CareerGoal == assessment.GoalResearchHigher },
		},
		{
			name: "medicine leans private sector",
			raw:  assessment.RawAnswers{"careerInterest": "medicine"},
			want: func(r assessment.AnswerRecord) bool { return r.CareerGoal == assessment.GoalPrivate },
		},
		{
			name: "performance becomes academic performance",
			raw:  assessment.RawAnswers{"performance": "excellent", "qualification": "class12"},
			want: func(r assessment.AnswerRecord) bool {
				return r.AcademicPerformance == assessment.PerformanceExcellent && r.Qualification == "class12"
			},
		},
		{
			name: "learning style becomes learning mode",
			raw:  assessment.RawAnswers{"learningStyle": "balanced"},
			want: func(r assessment.AnswerRecord) bool { return r.LearningMode == "balanced" },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw, assessment.SchemaStudentProfileV2)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if got.SchemaVersion != assessment.SchemaStudentProfileV2 {
				t.Fatalf("SchemaVersion=%q", got.SchemaVersion)
			}
			if !tt.want(got) {
				t.Fatalf("unexpected record: %+v", got)
			}
		})
	}
}

func TestNormalizeEveryV2OptionLandsInCanonicalDomain(t *testing.T) {
	set, err := assessment.Lookup(assessment.SchemaStudentProfileV2)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	subjects := map[string]bool{"mathematics": true, "science": true, "commerce": true, "arts": true}
	exams := map[string]bool{"civil-services": true, "technical-medical": true, "management-commerce": true, "creative-humanities": true}
	goals := map[string]bool{"government": true, "private": true, "research-higher": true, "entrepreneur": true}

	for _, key := range []string{"subjects", "examPreference", "careerInterest"} {
		q, _ := set.Question(key)
		for _, v := range q.OptionValues() {
			rec, err := Normalize(assessment.RawAnswers{key: v}, assessment.SchemaStudentProfileV2)
			if err != nil {
				t.Fatalf("Normalize(%s=%q): %v", key, v, err)
			}
			switch key {
			case "subjects":
				if !subjects[rec.FavoriteSubject] {
					t.Fatalf("subjects=%q mapped to %q", v, rec.FavoriteSubject)
				}
			case "examPreference":
				if !exams[rec.ExamInterest] {
					t.Fatalf("examPreference=%q mapped to %q", v, rec.ExamInterest)
				}
			case "careerInterest":
				if !goals[rec.CareerGoal] {
					t.Fatalf("careerInterest=%q mapped to %q", v, rec.CareerGoal)
				}
			}
		}
	}
}

func TestNormalizeUnknownVersion(t *testing.T) {
	_, err := Normalize(assessment.RawAnswers{"q1": "science"}, "survey.v9")
	var uv *assessment.UnknownSchemaVersionError
	if !errors.As(err, &uv) {
		t.Fatalf("err=%v, want UnknownSchemaVersionError", err)
	}
	if uv.Version != "survey.v9" {
		t.Fatalf("Version=%q", uv.Version)
	}
}

func TestNormalizeSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		raw     assessment.RawAnswers
		version assessment.SchemaVersion
	}{
		{name: "value outside enum", raw: assessment.RawAnswers{"q1": "astrology"}, version: assessment.SchemaCareerSurveyV1},
		{name: "unknown key", raw: assessment.RawAnswers{"q10": "science"}, version: assessment.SchemaCareerSurveyV1},
		{name: "v1 keys against v2", raw: assessment.RawAnswers{"q1": "science"}, version: assessment.SchemaStudentProfileV2},
		{name: "v2 value against v1 key", raw: assessment.RawAnswers{"q1": "arts-languages"}, version: assessment.SchemaCareerSurveyV1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw, tt.version)
			var sv *SchemaViolationError
			if !errors.As(err, &sv) {
				t.Fatalf("err=%v, want SchemaViolationError", err)
			}
			if len(sv.Details) == 0 {
				t.Fatalf("expected violation details")
			}
		})
	}
}

func TestNormalizeNilAnswers(t *testing.T) {
	got, err := Normalize(nil, assessment.SchemaCareerSurveyV1)
	if err != nil {
		t.Fatalf("Normalize(nil): %v", err)
	}
	if got.FavoriteSubject != "" || got.SchemaVersion != assessment.SchemaCareerSurveyV1 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestValidateRejectsNonStringValues(t *testing.T) {
	doc := map[string]any{"q1": 3}
	_, err := Validate(doc, assessment.SchemaCareerSurveyV1)
	var sv *SchemaViolationError
	if !errors.As(err, &sv) {
		t.Fatalf("err=%v, want SchemaViolationError", err)
	}
}

func TestValidateDecodedDocument(t *testing.T) {
	doc := map[string]any{"q1": "commerce", "q6": "management-commerce"}
	raw, err := Validate(doc, assessment.SchemaCareerSurveyV1)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if raw["q1"] != "commerce" || raw["q6"] != "management-commerce" || len(raw) != 2 {
		t.Fatalf("Validate()=%v", raw)
	}
}

func TestLegacyProfile(t *testing.T) {
	uid := uuid.New()
	tests := []struct {
		name        string
		rec         assessment.AnswerRecord
		displayName string
		wantStream  string
		wantClass   string
		wantMarks   string
		wantName    string
	}{
		{
			name:        "v1 science",
			rec:         assessment.AnswerRecord{FavoriteSubject: "science", CareerGoal: "private", ExamInterest: "technical-medical"},
			displayName: "Asha",
			wantStream:  "Science",
			wantClass:   "12th",
			wantMarks:   "good",
			wantName:    "Asha",
		},
		{
			name:       "commerce without name",
			rec:        assessment.AnswerRecord{FavoriteSubject: "commerce"},
			wantStream: "Commerce",
			wantClass:  "12th",
			wantMarks:  "good",
			wantName:   "User",
		},
		{
			name:        "mathematics falls under arts",
			rec:         assessment.AnswerRecord{FavoriteSubject: "mathematics", Qualification: "class10", AcademicPerformance: "excellent"},
			displayName: "Ravi",
			wantStream:  "Arts",
			wantClass:   "10th",
			wantMarks:   "excellent",
			wantName:    "Ravi",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LegacyProfile(uid, tt.displayName, tt.rec)
			if got.UserID != uid {
				t.Fatalf("UserID=%v", got.UserID)
			}
			if got.Stream != tt.wantStream || got.Class != tt.wantClass || got.Marks != tt.wantMarks || got.Name != tt.wantName {
				t.Fatalf("LegacyProfile()=%+v", got)
			}
			if got.Interests != tt.rec.FavoriteSubject || got.CareerInterest != tt.rec.CareerGoal || got.ExamPreference != tt.rec.ExamInterest {
				t.Fatalf("LegacyProfile() copied fields wrong: %+v", got)
			}
		})
	}
}

func TestRecordFromLegacy(t *testing.T) {
	f := assessment.StudentForm{Interests: "arts", CareerInterest: "government", ExamPreference: "civil-services", Marks: "average"}
	got := RecordFromLegacy(f)
	if got.FavoriteSubject != "arts" || got.CareerGoal != "government" || got.ExamInterest != "civil-services" || got.AcademicPerformance != "average" {
		t.Fatalf("RecordFromLegacy()=%+v", got)
	}
}
