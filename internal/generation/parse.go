package generation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"resume-builder/resume/model"
)

//go:embed prompts/reply_schema.json
var replySchemaJSON string

var (
	replySchemaOnce sync.Once
	replySchema     *gojsonschema.Schema
	replySchemaErr  error
)

func loadReplySchema() (*gojsonschema.Schema, error) {
	replySchemaOnce.Do(func() {
		replySchema, replySchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(replySchemaJSON))
	})
	return replySchema, replySchemaErr
}

var (
	openFencePattern  = regexp.MustCompile("^\\s*```(?:json|JSON)?[ \t]*\r?\n?")
	closeFencePattern = regexp.MustCompile("\r?\n?```\\s*$")
)

// stripFence removes one outer code fence and leaves backticks inside the body alone.
func stripFence(s string) string {
	s = openFencePattern.ReplaceAllString(s, "")
	s = closeFencePattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

type replyStrategy struct {
	name  string
	clean func(string) string
}

// replyStrategies run in order; the first one that yields a JSON object wins.
var replyStrategies = []replyStrategy{
	{name: "raw", clean: strings.TrimSpace},
	{name: "fence-stripped", clean: stripFence},
}

// ParseReply turns the model text into resume content with personal attached
// from the submitted form. It never returns a partial result.
func ParseReply(text string, personal model.Personal) (model.ResumeContent, error) {
	content, _, err := parseReply(text, personal)
	return content, err
}

// parseReply is ParseReply plus the name of the strategy that matched.
func parseReply(text string, personal model.Personal) (model.ResumeContent, string, error) {
	for _, strategy := range replyStrategies {
		candidate := strategy.clean(text)
		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(candidate), &obj); err != nil || obj == nil {
			continue
		}

		if err := validateReply(candidate); err != nil {
			return model.ResumeContent{}, strategy.name, err
		}

		var content model.ResumeContent
		if err := json.Unmarshal([]byte(candidate), &content); err != nil {
			return model.ResumeContent{}, strategy.name, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		content.Personal = personal
		return withEmptySlices(content), strategy.name, nil
	}
	return model.ResumeContent{}, "", ErrMalformedResponse
}

func validateReply(candidate string) error {
	schema, err := loadReplySchema()
	if err != nil {
		return fmt.Errorf("load reply schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewStringLoader(candidate))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if result.Valid() {
		return nil
	}

	verr := &SchemaValidationError{Fields: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Fields = append(verr.Fields, FieldError{Field: field, Description: desc.Description()})
	}
	return verr
}

// withEmptySlices makes list fields encode as [] instead of null.
func withEmptySlices(c model.ResumeContent) model.ResumeContent {
	if c.Experience == nil {
		c.Experience = []model.ResumeExperience{}
	}
	for i := range c.Experience {
		if c.Experience[i].Bullets == nil {
			c.Experience[i].Bullets = []string{}
		}
	}
	if c.Education == nil {
		c.Education = []model.ResumeEducation{}
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	return c
}
