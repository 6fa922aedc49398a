package model

// Personal holds contact details. They are never sent to the AI for rewriting;
// the generated document carries the submitted values verbatim.
type Personal struct {
	Name     string `json:"name" validate:"required,notblank,max=200"`
	Email    string `json:"email" validate:"max=320"`
	Phone    string `json:"phone" validate:"max=64"`
	Location string `json:"location" validate:"max=200"`
	LinkedIn string `json:"linkedin" validate:"max=500"`
}

// ResumeContent is the generated document: the AI reply plus the submitted
// personal block. Field order matches the stored and exported JSON.
type ResumeContent struct {
	Personal   Personal           `json:"personal"`
	Summary    string             `json:"summary"`
	Experience []ResumeExperience `json:"experience"`
	Education  []ResumeEducation  `json:"education"`
	Skills     []string           `json:"skills"`
}

// ResumeExperience is one rewritten role. Dates are "Mon YYYY"; EndDate is
// "Present" when IsCurrent is set.
type ResumeExperience struct {
	Company   string   `json:"company"`
	Role      string   `json:"role"`
	Location  string   `json:"location"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	IsCurrent bool     `json:"isCurrent"`
	Bullets   []string `json:"bullets"`
}

// ResumeEducation is one education entry. Dates are "YYYY".
type ResumeEducation struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	GPA       string `json:"gpa,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// EndLabel is what a renderer prints as the end of the date range.
func (e ResumeExperience) EndLabel() string {
	if e.IsCurrent {
		return "Present"
	}
	return e.EndDate
}
