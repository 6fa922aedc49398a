package generation

import (
	"sort"
	"strings"

	"resume-builder/resume/model"
)

// Input is the read-only view the prompt is built from. Form is a deep copy;
// the caller's form is never touched.
type Input struct {
	Form             model.BuilderForm
	Region           string
	Industry         string
	RegionGuide      string
	IndustryKeywords string
	RegionKnown      bool
	IndustryKnown    bool
}

// Normalize resolves region and industry and copies the form. Unknown values
// fall back silently: US guidance for region, no keywords for industry.
func Normalize(form model.BuilderForm) Input {
	in := Input{
		Form:     copyForm(form),
		Region:   strings.TrimSpace(form.TargetRegion),
		Industry: strings.TrimSpace(form.TargetIndustry),
	}
	if in.Region == "" {
		in.Region = DefaultRegion
	}

	if guide, ok := regionGuidelines[in.Region]; ok {
		in.RegionGuide = guide
		in.RegionKnown = true
	} else {
		in.RegionGuide = regionGuidelines[DefaultRegion]
	}
	if keywords, ok := industryKeywords[in.Industry]; ok {
		in.IndustryKeywords = keywords
		in.IndustryKnown = true
	}
	return in
}

func copyForm(form model.BuilderForm) model.BuilderForm {
	out := form
	out.Experience = append([]model.ExperienceEntry{}, form.Experience...)
	out.Education = append([]model.EducationEntry{}, form.Education...)
	out.Skills = dedupeSkills(form.Skills)
	return out
}

// dedupeSkills keeps first occurrences in order and drops blanks.
// Comparison is case-insensitive.
func dedupeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
