package generation

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"resume-builder/resume/model"
)

//go:embed prompts/resume_generate.tmpl
var promptFS embed.FS

var promptTemplate = template.Must(template.ParseFS(promptFS, "prompts/resume_generate.tmpl"))

type promptData struct {
	Region           string
	Industry         string
	RegionGuide      string
	IndustryKeywords string
	InputJSON        string
}

// BuildPrompt renders the instruction document for in. The same input always
// renders byte-identical output.
func BuildPrompt(in Input) (string, error) {
	inputJSON, err := marshalPromptInput(in.Form)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = promptTemplate.Execute(&buf, promptData{
		Region:           in.Region,
		Industry:         in.Industry,
		RegionGuide:      in.RegionGuide,
		IndustryKeywords: in.IndustryKeywords,
		InputJSON:        inputJSON,
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}

// marshalPromptInput serializes the form with client-side row IDs removed.
// HTML escaping is off so "&", "<" and ">" reach the model as typed.
func marshalPromptInput(form model.BuilderForm) (string, error) {
	form = copyForm(form)
	for i := range form.Experience {
		form.Experience[i].ID = ""
	}
	for i := range form.Education {
		form.Education[i].ID = ""
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(form); err != nil {
		return "", fmt.Errorf("marshal prompt input: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
