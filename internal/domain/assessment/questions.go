package assessment

import (
	"fmt"
	"sort"
)

type SchemaVersion string

const (
	// SchemaCareerSurveyV1 is the nine question survey keyed q1..q9.
	SchemaCareerSurveyV1 SchemaVersion = "career_survey.v1"
	// SchemaStudentProfileV2 is the ten question profile with semantic keys.
	SchemaStudentProfileV2 SchemaVersion = "student_profile.v2"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Question struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Options []Option `json:"options"`
}

// HasOption reports whether value is one of the declared option values.
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func (q Question) OptionValues() []string {
	out := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		out = append(out, o.Value)
	}
	return out
}

type QuestionSet struct {
	Version   SchemaVersion `json:"schema_version"`
	Questions []Question    `json:"questions"`
}

func (s QuestionSet) Len() int { return len(s.Questions) }

func (s QuestionSet) Question(key string) (Question, bool) {
	for _, q := range s.Questions {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}

func (s QuestionSet) Keys() []string {
	out := make([]string, 0, len(s.Questions))
	for _, q := range s.Questions {
		out = append(out, q.Key)
	}
	return out
}

// Missing returns, in presentation order, the keys raw has no non-empty value for.
func (s QuestionSet) Missing(raw RawAnswers) []string {
	var out []string
	for _, q := range s.Questions {
		if raw[q.Key] == "" {
			out = append(out, q.Key)
		}
	}
	return out
}

func (s QuestionSet) Titles() []string {
	out := make([]string, 0, len(s.Questions))
	for _, q := range s.Questions {
		out = append(out, q.Title)
	}
	return out
}

// UnknownSchemaVersionError is returned for input shapes no registered set describes.
type UnknownSchemaVersionError struct {
	Version SchemaVersion
}

func (e *UnknownSchemaVersionError) Error() string {
	return fmt.Sprintf("unknown assessment schema version %q", string(e.Version))
}

var registry = map[SchemaVersion]QuestionSet{
	SchemaCareerSurveyV1:   careerSurveyV1,
	SchemaStudentProfileV2: studentProfileV2,
}

// Lookup returns the registered question set for version.
func Lookup(version SchemaVersion) (QuestionSet, error) {
	set, ok := registry[version]
	if !ok {
		return QuestionSet{}, &UnknownSchemaVersionError{Version: version}
	}
	return set, nil
}

func Versions() []SchemaVersion {
	out := make([]SchemaVersion, 0, len(registry))
	for v := range registry {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DefaultVersion is the authoritative questionnaire new intakes start from.
const DefaultVersion = SchemaCareerSurveyV1

var careerSurveyV1 = QuestionSet{
	Version: SchemaCareerSurveyV1,
	Questions: []Question{
		{
			Key:   "q1",
			Title: "Which subject do you enjoy the most?",
			Options: []Option{
				{Value: SubjectMathematics, Label: "Mathematics"},
				{Value: SubjectScience, Label: "Science (Physics, Chemistry, Biology)"},
				{Value: SubjectCommerce, Label: "Commerce & Business Studies"},
				{Value: SubjectArts, Label: "Arts, Languages & Humanities"},
			},
		},
		{
			Key:   "q2",
			Title: "What type of work excites you the most?",
			Options: []Option{
				{Value: "problem-solving", Label: "Solving problems & logical reasoning"},
				{Value: "research", Label: "Research, experiments & innovation"},
				{Value: "business", Label: "Managing business, finance & trade"},
				{Value: "creative", Label: "Creative activities (writing, design, media, art)"},
			},
		},
		{
			Key:   "q3",
			Title: "What is your long-term career preference?",
			Options: []Option{
				{Value: GoalGovernment, Label: "Government Job (UPSC, SSC, Banking, Defence, State Exams)"},
				{Value: GoalPrivate, Label: "Private Sector (IT, Corporate Jobs, Startups)"},
				{Value: GoalResearchHigher, Label: "Research & Higher Studies (Scientist, Professor, PhD)"},
				{Value: GoalEntrepreneur, Label: "Entrepreneurship / Creative Career"},
			},
		},
		{
			Key:   "q4",
			Title: "Do you prefer theoretical or practical learning?",
			Options: []Option{
				{Value: "theoretical", Label: "Mostly Theoretical (reading, concepts, analysis)"},
				{Value: "practical", Label: "Mostly Practical (hands-on, experiments, fieldwork)"},
				{Value: "balanced", Label: "Balanced mix of both"},
				{Value: "depends", Label: "Depends on subject area"},
			},
		},
		{
			Key:     "q5",
			Title:   "What motivates you the most in choosing a career?",
			Options: motivationOptions,
		},
		{
			Key:   "q6",
			Title: "Which type of exams are you most interested in?",
			Options: []Option{
				{Value: ExamCivilServices, Label: "Civil Services & Govt Exams (UPSC, SSC, Railways, Banking)"},
				{Value: ExamTechnicalMedical, Label: "Technical/Medical Exams (JEE, NEET, GATE, CDS)"},
				{Value: ExamManagementCommerce, Label: "Management & Commerce Exams (CA, CS, CAT, MBA)"},
				{Value: ExamCreativeHumanities, Label: "Creative & Humanities Exams (Law, Mass Comm, Fine Arts, UPSC-Arts)"},
			},
		},
		{
			Key:     "q7",
			Title:   "What kind of work environment do you prefer?",
			Options: workEnvironmentOptions,
		},
		{
			Key:     "q8",
			Title:   "What type of college do you prefer for higher studies?",
			Options: collegeTypeOptions,
		},
		{
			Key:     "q9",
			Title:   "What type of career roadmap would you find most useful?",
			Options: roadmapPreferenceOptions,
		},
	},
}

var studentProfileV2 = QuestionSet{
	Version: SchemaStudentProfileV2,
	Questions: []Question{
		{
			Key:   "qualification",
			Title: "What is your current level of study?",
			Options: []Option{
				{Value: "class10", Label: "Class 10"},
				{Value: "class12", Label: "Class 12"},
				{Value: "undergraduate", Label: "Undergraduate"},
				{Value: "postgraduate", Label: "Postgraduate"},
			},
		},
		{
			Key:   "subjects",
			Title: "Which subjects interest you the most?",
			Options: []Option{
				{Value: "mathematics", Label: "Mathematics"},
				{Value: "science", Label: "Science"},
				{Value: "commerce", Label: "Commerce"},
				{Value: "arts-languages", Label: "Arts & Languages"},
			},
		},
		{
			Key:   "performance",
			Title: "How would you describe your academic performance?",
			Options: []Option{
				{Value: PerformanceExcellent, Label: "Excellent (90%+)"},
				{Value: PerformanceGood, Label: "Good (75-90%)"},
				{Value: PerformanceAverage, Label: "Average (60-75%)"},
				{Value: PerformanceNeedsImprovement, Label: "Needs Improvement"},
			},
		},
		{
			Key:   "careerInterest",
			Title: "Which career field interests you?",
			Options: []Option{
				{Value: "engineering", Label: "Engineering & Technology"},
				{Value: "medicine", Label: "Medicine & Healthcare"},
				{Value: "business", Label: "Business & Finance"},
				{Value: "government", Label: "Government & Public Service"},
				{Value: "research", Label: "Research & Academia"},
				{Value: "creative", Label: "Creative Arts & Media"},
			},
		},
		{
			Key:   "examPreference",
			Title: "Which entrance exams are you preparing for?",
			Options: []Option{
				{Value: "jee-neet", Label: "JEE / NEET"},
				{Value: "cuet", Label: "CUET"},
				{Value: "upsc-ssc", Label: "UPSC / SSC"},
				{Value: "cat-gmat", Label: "CAT / GMAT"},
			},
		},
		{
			Key:     "motivation",
			Title:   "What motivates you the most in choosing a career?",
			Options: motivationOptions,
		},
		{
			Key:   "learningStyle",
			Title: "How do you learn best?",
			Options: []Option{
				{Value: "theoretical", Label: "Reading and concepts"},
				{Value: "practical", Label: "Hands-on practice"},
				{Value: "balanced", Label: "A mix of both"},
				{Value: "depends", Label: "Depends on the subject"},
			},
		},
		{
			Key:     "workEnvironment",
			Title:   "What kind of work environment do you prefer?",
			Options: workEnvironmentOptions,
		},
		{
			Key:     "collegeType",
			Title:   "What type of college do you prefer for higher studies?",
			Options: collegeTypeOptions,
		},
		{
			Key:     "roadmapPreference",
			Title:   "What type of career roadmap would you find most useful?",
			Options: roadmapPreferenceOptions,
		},
	},
}

var motivationOptions = []Option{
	{Value: "security", Label: "Job Security & Stability"},
	{Value: "salary", Label: "High Salary & Growth Opportunities"},
	{Value: "social-impact", Label: "Social Impact / Serving the Nation"},
	{Value: "passion", Label: "Passion, Creativity & Personal Interest"},
}

var workEnvironmentOptions = []Option{
	{Value: "people", Label: "Working with People (teaching, social service, management)"},
	{Value: "technology", Label: "Working with Technology (computers, machines, engineering)"},
	{Value: "ideas", Label: "Working with Ideas (research, writing, design)"},
	{Value: "combination", Label: "Combination of all three"},
}

var collegeTypeOptions = []Option{
	{Value: "government", Label: "Government Colleges / Universities"},
	{Value: "private", Label: "Private Colleges / Universities"},
	{Value: "distance", Label: "Distance / Online Learning (IGNOU, Online Platforms)"},
	{Value: "no-preference", Label: "No specific preference"},
}

var roadmapPreferenceOptions = []Option{
	{Value: "exam-prep", Label: "Step-by-step exam preparation guide"},
	{Value: "courses-colleges", Label: "Courses & College recommendations"},
	{Value: "job-opportunities", Label: "Future job roles & career opportunities"},
	{Value: "all", Label: "All of the above"},
}
