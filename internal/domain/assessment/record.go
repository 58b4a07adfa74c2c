package assessment

const (
	SubjectMathematics = "mathematics"
	SubjectScience     = "science"
	SubjectCommerce    = "commerce"
	SubjectArts        = "arts"
)

const (
	GoalGovernment     = "government"
	GoalPrivate        = "private"
	GoalResearchHigher = "research-higher"
	GoalEntrepreneur   = "entrepreneur"
)

const (
	ExamCivilServices      = "civil-services"
	ExamTechnicalMedical   = "technical-medical"
	ExamManagementCommerce = "management-commerce"
	ExamCreativeHumanities = "creative-humanities"
)

const (
	PerformanceExcellent        = "excellent"
	PerformanceGood             = "good"
	PerformanceAverage          = "average"
	PerformanceNeedsImprovement = "needs-improvement"
)

// RawAnswers maps a question key of one questionnaire to the chosen option value.
type RawAnswers map[string]string

func (r RawAnswers) Clone() RawAnswers {
	out := make(RawAnswers, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// AnswerRecord is the canonical answer shape every questionnaire normalizes
// into. Fields the source questionnaire never asks are left empty.
type AnswerRecord struct {
	SchemaVersion       SchemaVersion `json:"schemaVersion"`
	FavoriteSubject     string        `json:"favoriteSubject"`
	WorkStyle           string        `json:"workStyle,omitempty"`
	CareerGoal          string        `json:"careerGoal"`
	LearningMode        string        `json:"learningMode,omitempty"`
	Motivation          string        `json:"motivation"`
	ExamInterest        string        `json:"examInterest"`
	WorkEnvironment     string        `json:"workEnvironment,omitempty"`
	CollegeType         string        `json:"collegeType,omitempty"`
	RoadmapPreference   string        `json:"roadmapPreference,omitempty"`
	Qualification       string        `json:"qualification,omitempty"`
	AcademicPerformance string        `json:"academicPerformance,omitempty"`
}
