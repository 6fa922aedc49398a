package render

import "html/template"

const (
	// ContactSeparator joins the contact line and the skills line.
	ContactSeparator = " · "
	// DateSeparator sits between start and end dates.
	DateSeparator = " – "
	// TitleSeparator joins role and company in the Word layout.
	TitleSeparator = " — "
)

// Section headings shared by both layouts.
const (
	HeadingSummary    = "Professional Summary"
	HeadingExperience = "Experience"
	HeadingEducation  = "Education"
	HeadingSkills     = "Skills"
)

// wordCSS is the stylesheet Word honours when it opens the .doc export.
const wordCSS template.CSS = `
body { font-family: Calibri, Arial, sans-serif; font-size: 11pt; color: #111; margin: 72pt; }
h1 { font-size: 20pt; margin: 0 0 4pt 0; }
h2 { font-size: 11pt; text-transform: uppercase; color: #555; border-bottom: 1px solid #ccc; padding-bottom: 2pt; margin: 14pt 0 6pt 0; }
p { margin: 0 0 6pt 0; }
ul { margin: 2pt 0 8pt 18pt; padding: 0; }
li { margin: 0 0 2pt 0; }
.contact { font-size: 10pt; color: #444; margin-bottom: 10pt; }
.entry-title { font-weight: bold; margin: 0; }
.entry-meta { color: #666; font-size: 10pt; margin: 0 0 4pt 0; }
`

// printCSS is the browser print layout, also fed to headless Chrome for PDF.
const printCSS template.CSS = `
* { box-sizing: border-box; }
body { font-family: Georgia, 'Times New Roman', serif; font-size: 10.5pt; color: #111; margin: 0; padding: 48pt 56pt; line-height: 1.4; }
h1 { font-size: 22pt; font-weight: normal; margin: 0 0 4pt 0; }
.contact { font-size: 9pt; color: #555; }
.contact span + span::before { content: " · "; }
hr { border: none; border-top: 1px solid #ddd; margin: 12pt 0; }
h2 { font-size: 8pt; text-transform: uppercase; letter-spacing: 1.5pt; color: #888; font-weight: normal; margin: 14pt 0 6pt 0; }
.exp { margin-bottom: 10pt; }
.exp-header { display: flex; justify-content: space-between; align-items: baseline; }
.exp-role { font-weight: bold; }
.exp-company { color: #555; }
.exp-date { color: #777; font-size: 9pt; text-align: right; white-space: nowrap; }
ul { margin: 4pt 0 0 14pt; padding: 0; }
li { font-size: 10pt; margin-bottom: 2pt; }
.edu-row { display: flex; justify-content: space-between; margin-bottom: 6pt; }
.edu-name { font-weight: bold; }
.edu-school { color: #555; }
.skills { display: flex; flex-wrap: wrap; gap: 4pt; }
.skill { background: #f2f2f2; padding: 2pt 6pt; border-radius: 3pt; font-size: 9pt; }
@media print { body { padding: 36pt 48pt; } }
`
