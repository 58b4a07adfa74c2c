// Package recommendation derives the recommendation bundle from a canonical
// answer record using fixed lookup tables. Derive is pure: equal records
// always produce equal bundles, and every slice in a bundle is non-nil.
package recommendation

import "github.com/yungbote/careerpath-backend/internal/domain/assessment"

type Bundle struct {
	RecommendedStream string   `json:"recommendedStream"`
	SuitableDegrees   []string `json:"suitableDegrees"`
	SuggestedColleges []string `json:"suggestedColleges"`
	RelevantExams     []string `json:"relevantExams"`
	KeySkills         []string `json:"keySkills"`
	CareerPath        string   `json:"careerPath"`
	CareerPathLabel   string   `json:"careerPathLabel"`
	Motivation        string   `json:"motivation"`
}

func Derive(rec assessment.AnswerRecord) Bundle {
	subject := rec.FavoriteSubject
	row, ok := subjectTable[subject]
	if !ok {
		subject = fallbackSubject
		row = subjectTable[fallbackSubject]
	}

	return Bundle{
		RecommendedStream: row.stream,
		SuitableDegrees:   clone(row.degrees),
		SuggestedColleges: clone(colleges(subject, rec.AcademicPerformance)),
		RelevantExams:     clone(examTable[rec.ExamInterest]),
		KeySkills:         clone(row.skills),
		CareerPath:        orNotSpecified(rec.CareerGoal),
		CareerPathLabel:   careerPathLabel(rec.CareerGoal),
		Motivation:        orNotSpecified(rec.Motivation),
	}
}

func colleges(subject, performance string) []string {
	t := tierOf(performance)
	if t == tierGovernment {
		return governmentColleges
	}
	return collegeTable[subject][t]
}

func careerPathLabel(goal string) string {
	if goal == "" {
		return notSpecified
	}
	if label, ok := careerPathLabels[goal]; ok {
		return label
	}
	return goal
}

func orNotSpecified(v string) string {
	if v == "" {
		return notSpecified
	}
	return v
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
