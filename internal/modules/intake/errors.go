package intake

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/normalization"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
)

var ErrSubmitInFlight = errors.New("assessment submit already in progress")

type UnknownQuestionError struct {
	Key string
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("unknown question %q", e.Key)
}

type InvalidOptionError struct {
	Key     string
	Value   string
	Allowed []string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %q for question %q (allowed: %s)", e.Value, e.Key, strings.Join(e.Allowed, ", "))
}

type IndexOutOfRangeError struct {
	Index int
	Total int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("question index %d out of range [0,%d)", e.Index, e.Total)
}

// APIError maps questionnaire and normalization failures onto response
// errors. Errors it does not recognize are returned unchanged.
func APIError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apierr.As(err); ok {
		return err
	}
	var (
		unknownVersion *assessment.UnknownSchemaVersionError
		incomplete     *assessment.IncompleteAssessmentError
		violation      *normalization.SchemaViolationError
		unknownKey     *UnknownQuestionError
		badOption      *InvalidOptionError
		outOfRange     *IndexOutOfRangeError
	)
	switch {
	case errors.Is(err, ErrSubmitInFlight):
		return apierr.Conflict("submit_in_flight", err)
	case errors.As(err, &unknownVersion):
		return apierr.BadRequest("unknown_schema_version", err)
	case errors.As(err, &incomplete):
		return apierr.Unprocessable("assessment_incomplete", err)
	case errors.As(err, &violation):
		return apierr.Unprocessable("invalid_answers", err)
	case errors.As(err, &unknownKey):
		return apierr.BadRequest("unknown_question", err)
	case errors.As(err, &badOption):
		return apierr.BadRequest("invalid_option", err)
	case errors.As(err, &outOfRange):
		return apierr.BadRequest("index_out_of_range", err)
	}
	return err
}
