package normalization

import (
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
)

const (
	legacyDefaultClass = "12th"
	legacyDefaultMarks = assessment.PerformanceGood
)

var legacyClassByQualification = map[string]string{
	"class10":       "10th",
	"class12":       "12th",
	"undergraduate": "Undergraduate",
	"postgraduate":  "Postgraduate",
}

// LegacyStream is the display stream the student_form mirror stores.
func LegacyStream(favoriteSubject string) string {
	switch favoriteSubject {
	case assessment.SubjectScience:
		return "Science"
	case assessment.SubjectCommerce:
		return "Commerce"
	default:
		return "Arts"
	}
}

// LegacyProfile builds the student_form mirror row for a submitted record.
func LegacyProfile(userID uuid.UUID, displayName string, rec assessment.AnswerRecord) assessment.StudentForm {
	class := legacyDefaultClass
	if c, ok := legacyClassByQualification[rec.Qualification]; ok {
		class = c
	}
	marks := legacyDefaultMarks
	if rec.AcademicPerformance != "" {
		marks = rec.AcademicPerformance
	}
	if displayName == "" {
		displayName = "User"
	}
	return assessment.StudentForm{
		UserID:         userID,
		Name:           displayName,
		Class:          class,
		Interests:      rec.FavoriteSubject,
		WeakSubjects:   "",
		Marks:          marks,
		CareerInterest: rec.CareerGoal,
		Stream:         LegacyStream(rec.FavoriteSubject),
		ExamPreference: rec.ExamInterest,
	}
}

// RecordFromLegacy rebuilds a canonical record from a student_form row, for
// users whose only stored answers are the legacy mirror.
func RecordFromLegacy(f assessment.StudentForm) assessment.AnswerRecord {
	return assessment.AnswerRecord{
		SchemaVersion:       assessment.SchemaCareerSurveyV1,
		FavoriteSubject:     f.Interests,
		CareerGoal:          f.CareerInterest,
		ExamInterest:        f.ExamPreference,
		AcademicPerformance: f.Marks,
	}
}
