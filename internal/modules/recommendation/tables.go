package recommendation

import "github.com/yungbote/careerpath-backend/internal/domain/assessment"

// Subject rows. Unrecognized subjects read the mathematics row.
type subjectRow struct {
	stream  string
	degrees []string
	skills  []string
}

var subjectTable = map[string]subjectRow{
	assessment.SubjectMathematics: {
		stream:  "Engineering & Technology",
		degrees: []string{"B.Tech Computer Science", "B.Sc Mathematics", "B.Tech Engineering", "BCA"},
		skills:  []string{"Problem Solving", "Analytical Thinking", "Programming", "Statistics"},
	},
	assessment.SubjectScience: {
		stream:  "Medical & Life Sciences",
		degrees: []string{"MBBS", "B.Tech", "B.Sc Physics/Chemistry/Biology", "B.Pharmacy"},
		skills:  []string{"Research Skills", "Critical Thinking", "Laboratory Techniques", "Data Analysis"},
	},
	assessment.SubjectCommerce: {
		stream:  "Business & Commerce",
		degrees: []string{"B.Com", "BBA", "CA", "CS", "B.Com (Hons)"},
		skills:  []string{"Financial Analysis", "Communication", "Leadership", "Business Strategy"},
	},
	assessment.SubjectArts: {
		stream:  "Arts & Humanities",
		degrees: []string{"BA English", "BA History", "BA Political Science", "BA Psychology", "Mass Communication"},
		skills:  []string{"Creative Writing", "Communication", "Research", "Cultural Understanding"},
	},
}

const fallbackSubject = assessment.SubjectMathematics

var examTable = map[string][]string{
	assessment.ExamCivilServices:      {"UPSC Civil Services", "SSC CGL", "State PSC", "Banking Exams"},
	assessment.ExamTechnicalMedical:   {"JEE Main/Advanced", "NEET", "GATE", "CDS"},
	assessment.ExamManagementCommerce: {"CA Foundation", "CS Executive", "CAT", "XAT"},
	assessment.ExamCreativeHumanities: {"CLAT", "CUET", "BFA Entrance", "Mass Communication"},
}

type tier int

const (
	tierGovernment tier = iota
	tierMid
	tierTop
)

func tierOf(performance string) tier {
	switch performance {
	case assessment.PerformanceExcellent:
		return tierTop
	case assessment.PerformanceGood:
		return tierMid
	default:
		return tierGovernment
	}
}

var collegeTable = map[string]map[tier][]string{
	assessment.SubjectMathematics: {
		tierTop: {"IIT Delhi", "IIT Bombay", "Delhi University", "JNU"},
		tierMid: {"IITs", "NITs", "AIIMS", "Government Engineering Colleges"},
	},
	assessment.SubjectScience: {
		tierTop: {"AIIMS Delhi", "IIT Kharagpur", "BHU", "Jamia Millia Islamia"},
		tierMid: {"IITs", "NITs", "AIIMS", "Government Engineering Colleges"},
	},
	assessment.SubjectCommerce: {
		tierTop: {"SRCC", "LSR", "Hindu College", "Shri Ram College"},
		tierMid: {"IIMs", "Delhi University", "Shri Ram College", "Government Commerce Colleges"},
	},
	assessment.SubjectArts: {
		tierTop: {"JNU", "Delhi University", "BHU", "Jadavpur University"},
		tierMid: {"JNU", "BHU", "Delhi University", "State Universities"},
	},
}

// governmentColleges is the default for every subject below the mid tier.
var governmentColleges = []string{"Local Government College", "State University", "Community College"}

var careerPathLabels = map[string]string{
	assessment.GoalGovernment:     "Government Service",
	assessment.GoalPrivate:        "Private Sector",
	assessment.GoalResearchHigher: "Research & Academia",
	assessment.GoalEntrepreneur:   "Entrepreneurship",
}

const notSpecified = "not specified"
