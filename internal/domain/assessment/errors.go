package assessment

import (
	"fmt"
	"strings"
)

// IncompleteAssessmentError lists the question keys still unanswered.
type IncompleteAssessmentError struct {
	Missing []string
}

func (e *IncompleteAssessmentError) Error() string {
	return fmt.Sprintf("assessment incomplete: unanswered %s", strings.Join(e.Missing, ", "))
}

// CheckComplete returns an IncompleteAssessmentError when raw leaves any key of set unanswered.
func CheckComplete(set QuestionSet, raw RawAnswers) error {
	if missing := set.Missing(raw); len(missing) > 0 {
		return &IncompleteAssessmentError{Missing: missing}
	}
	return nil
}
