package normalization

import (
	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
)

type setter func(r *assessment.AnswerRecord, v string)

// field maps one raw question key onto a canonical field. A nil translate
// copies the value unchanged.
type field struct {
	key       string
	set       setter
	translate map[string]string
}

func setFavoriteSubject(r *assessment.AnswerRecord, v string)     { r.FavoriteSubject = v }
func setWorkStyle(r *assessment.AnswerRecord, v string)           { r.WorkStyle = v }
func setCareerGoal(r *assessment.AnswerRecord, v string)          { r.CareerGoal = v }
func setLearningMode(r *assessment.AnswerRecord, v string)        { r.LearningMode = v }
func setMotivation(r *assessment.AnswerRecord, v string)          { r.Motivation = v }
func setExamInterest(r *assessment.AnswerRecord, v string)        { r.ExamInterest = v }
func setWorkEnvironment(r *assessment.AnswerRecord, v string)     { r.WorkEnvironment = v }
func setCollegeType(r *assessment.AnswerRecord, v string)         { r.CollegeType = v }
func setRoadmapPreference(r *assessment.AnswerRecord, v string)   { r.RoadmapPreference = v }
func setQualification(r *assessment.AnswerRecord, v string)       { r.Qualification = v }
func setAcademicPerformance(r *assessment.AnswerRecord, v string) { r.AcademicPerformance = v }

var careerSurveyV1Fields = []field{
	{key: "q1", set: setFavoriteSubject},
	{key: "q2", set: setWorkStyle},
	{key: "q3", set: setCareerGoal},
	{key: "q4", set: setLearningMode},
	{key: "q5", set: setMotivation},
	{key: "q6", set: setExamInterest},
	{key: "q7", set: setWorkEnvironment},
	{key: "q8", set: setCollegeType},
	{key: "q9", set: setRoadmapPreference},
}

var studentProfileV2Fields = []field{
	{key: "qualification", set: setQualification},
	{key: "subjects", set: setFavoriteSubject, translate: map[string]string{
		"mathematics":    assessment.SubjectMathematics,
		"science":        assessment.SubjectScience,
		"commerce":       assessment.SubjectCommerce,
		"arts-languages": assessment.SubjectArts,
	}},
	{key: "performance", set: setAcademicPerformance},
	{key: "careerInterest", set: setCareerGoal, translate: map[string]string{
		"engineering": assessment.GoalPrivate,
		"medicine":    assessment.GoalPrivate,
		"business":    assessment.GoalEntrepreneur,
		"government":  assessment.GoalGovernment,
		"research":    assessment.GoalResearchHigher,
		"creative":    assessment.GoalEntrepreneur,
	}},
	{key: "examPreference", set: setExamInterest, translate: map[string]string{
		"jee-neet": assessment.ExamTechnicalMedical,
		"cuet":     assessment.ExamCreativeHumanities,
		"upsc-ssc": assessment.ExamCivilServices,
		"cat-gmat": assessment.ExamManagementCommerce,
	}},
	{key: "motivation", set: setMotivation},
	{key: "learningStyle", set: setLearningMode},
	{key: "workEnvironment", set: setWorkEnvironment},
	{key: "collegeType", set: setCollegeType},
	{key: "roadmapPreference", set: setRoadmapPreference},
}

var mappings = map[assessment.SchemaVersion][]field{
	assessment.SchemaCareerSurveyV1:   careerSurveyV1Fields,
	assessment.SchemaStudentProfileV2: studentProfileV2Fields,
}

// Normalize maps raw answers of one questionnaire onto the canonical record.
// Unanswered keys leave their canonical field empty.
func Normalize(raw assessment.RawAnswers, version assessment.SchemaVersion) (assessment.AnswerRecord, error) {
	fields, ok := mappings[version]
	if !ok {
		return assessment.AnswerRecord{}, &assessment.UnknownSchemaVersionError{Version: version}
	}
	doc := map[string]string(raw)
	if doc == nil {
		doc = map[string]string{}
	}
	clean, err := Validate(doc, version)
	if err != nil {
		return assessment.AnswerRecord{}, err
	}

	rec := assessment.AnswerRecord{SchemaVersion: version}
	for _, f := range fields {
		v, ok := clean[f.key]
		if !ok || v == "" {
			continue
		}
		if f.translate != nil {
			v = f.translate[v]
		}
		f.set(&rec, v)
	}
	return rec, nil
}
