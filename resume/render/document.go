package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"resume-builder/resume/model"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// officeHead asks Word to open the file in print layout. html/template drops
// comments from template text, so the conditional is injected as trusted HTML.
const officeHead template.HTML = `<!--[if gte mso 9]><xml><w:WordDocument><w:View>Print</w:View><w:Zoom>100</w:Zoom></w:WordDocument></xml><![endif]-->`

type headings struct {
	Summary    string
	Experience string
	Education  string
	Skills     string
}

type experienceView struct {
	Role    string
	Title   string
	Place   string
	Meta    string
	Dates   string
	Bullets []string
}

type educationView struct {
	Name   string
	School string
	Meta   string
	Dates  string
}

type documentView struct {
	Title       string
	CSS         template.CSS
	OfficeHead  template.HTML
	Headings    headings
	Name        string
	Contact     []string
	ContactLine string
	Summary     string
	Experience  []experienceView
	Education   []educationView
	Skills      []string
	SkillsLine  string
}

// Word renders the Word-compatible HTML served as a .doc download.
func Word(content model.ResumeContent) ([]byte, error) {
	view := newDocumentView(content)
	view.CSS = wordCSS
	view.OfficeHead = officeHead
	return execute("word.html.tmpl", view)
}

// PrintHTML renders the print layout. It is also the PDF source.
func PrintHTML(content model.ResumeContent) ([]byte, error) {
	view := newDocumentView(content)
	view.CSS = printCSS
	return execute("print.html.tmpl", view)
}

func execute(name string, view documentView) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, view); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func newDocumentView(content model.ResumeContent) documentView {
	p := content.Personal
	name := strings.TrimSpace(p.Name)
	contact := nonEmpty(p.Email, p.Phone, p.Location, p.LinkedIn)
	skills := nonEmpty(content.Skills...)

	view := documentView{
		Title: joinNonEmpty(TitleSeparator, name, "Resume"),
		Headings: headings{
			Summary:    HeadingSummary,
			Experience: HeadingExperience,
			Education:  HeadingEducation,
			Skills:     HeadingSkills,
		},
		Name:        name,
		Contact:     contact,
		ContactLine: strings.Join(contact, ContactSeparator),
		Summary:     strings.TrimSpace(content.Summary),
		Skills:      skills,
		SkillsLine:  strings.Join(skills, ContactSeparator),
	}

	for _, exp := range content.Experience {
		dates := joinNonEmpty(DateSeparator, exp.StartDate, exp.EndLabel())
		view.Experience = append(view.Experience, experienceView{
			Role:    strings.TrimSpace(exp.Role),
			Title:   joinNonEmpty(TitleSeparator, exp.Role, exp.Company),
			Place:   joinNonEmpty(ContactSeparator, exp.Company, exp.Location),
			Meta:    joinNonEmpty(" | ", exp.Location, dates),
			Dates:   dates,
			Bullets: nonEmpty(exp.Bullets...),
		})
	}

	for _, edu := range content.Education {
		name := strings.TrimSpace(edu.Degree)
		if field := strings.TrimSpace(edu.Field); field != "" {
			name = joinNonEmpty(" in ", name, field)
		}
		gpa := ""
		if g := strings.TrimSpace(edu.GPA); g != "" {
			gpa = "GPA: " + g
		}
		school := joinNonEmpty(ContactSeparator, edu.School, gpa)
		dates := joinNonEmpty(DateSeparator, edu.StartDate, edu.EndDate)
		view.Education = append(view.Education, educationView{
			Name:   name,
			School: school,
			Meta:   joinNonEmpty(" | ", school, dates),
			Dates:  dates,
		})
	}

	return view
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func joinNonEmpty(sep string, values ...string) string {
	return strings.Join(nonEmpty(values...), sep)
}
