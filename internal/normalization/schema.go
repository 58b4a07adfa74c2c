package normalization

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
)

// SchemaViolationError reports a raw answer document that does not match the
// declared shape of its questionnaire.
type SchemaViolationError struct {
	Version assessment.SchemaVersion
	Details []string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("answers do not match %s: %s", string(e.Version), strings.Join(e.Details, "; "))
}

var (
	schemaMu    sync.Mutex
	schemaCache = map[assessment.SchemaVersion]*gojsonschema.Schema{}
)

// rawSchemaDocument describes a questionnaire's raw answers: an object keyed
// by question key whose values are one of that question's option values.
// Keys may be absent; completeness is checked separately.
func rawSchemaDocument(set assessment.QuestionSet) map[string]any {
	props := make(map[string]any, set.Len())
	for _, q := range set.Questions {
		enum := make([]any, 0, len(q.Options))
		for _, v := range q.OptionValues() {
			enum = append(enum, v)
		}
		props[q.Key] = map[string]any{
			"type": "string",
			"enum": enum,
		}
	}
	return map[string]any{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

func compiledSchema(version assessment.SchemaVersion) (*gojsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	if s, ok := schemaCache[version]; ok {
		return s, nil
	}
	set, err := assessment.Lookup(version)
	if err != nil {
		return nil, err
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(rawSchemaDocument(set)))
	if err != nil {
		return nil, fmt.Errorf("compile %s answer schema: %w", string(version), err)
	}
	schemaCache[version] = s
	return s, nil
}

// Validate checks an arbitrary decoded JSON document against the raw answer
// schema of version and returns it as RawAnswers.
func Validate(doc any, version assessment.SchemaVersion) (assessment.RawAnswers, error) {
	schema, err := compiledSchema(version)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, &SchemaViolationError{Version: version, Details: []string{err.Error()}}
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, &SchemaViolationError{Version: version, Details: details}
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		if raw, isRaw := doc.(assessment.RawAnswers); isRaw {
			return raw.Clone(), nil
		}
		if m, isMap := doc.(map[string]string); isMap {
			return assessment.RawAnswers(m).Clone(), nil
		}
		return nil, &SchemaViolationError{Version: version, Details: []string{fmt.Sprintf("unsupported document type %T", doc)}}
	}
	out := make(assessment.RawAnswers, len(obj))
	for k, v := range obj {
		s, _ := v.(string)
		out[k] = s
	}
	return out, nil
}
