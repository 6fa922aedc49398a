package generation

// DefaultRegion is used when the form names no region or an unknown one.
const DefaultRegion = "US"

// regionGuidelines is the writing standard per target market. Keys are
// matched exactly after trimming.
var regionGuidelines = map[string]string{
	"US": `Open bullets with strong action verbs (Led, Built, Increased, Reduced, Drove). Quantify every achievement with a metric (%, $, #). Use concise American business English in implied first person, never "I". Write for a competitive US job market.`,
	"UK": `Use formal British English and UK spelling (organise, maximise, behaviour). Write the summary as a personal statement. Keep the tone professional and understated and follow CV conventions.`,
	"EU": `Use a formal European tone. Highlight language skills and academic credentials, and assume a multicultural professional setting. Follow Europass-style conventions and give certifications and formal qualifications prominence.`,
	"MENA": `Use a formal, respectful tone. Emphasise leadership, team management and organisational contributions. Make total years of experience prominent and follow professional Arabic-market conventions where relevant.`,
	"Asia": `Use a respectful, formal tone. Present team contributions alongside individual achievements. Emphasise academic qualifications, certifications and institutional affiliations; tenure and loyalty are valued.`,
}

// industryKeywords are hints the model weaves in where truthful. Unknown
// industries get no hint.
var industryKeywords = map[string]string{
	"Technology": "software engineering, agile/scrum, APIs, cloud infrastructure, DevOps, CI/CD, scalability, system design, microservices, product-led",
	"Finance":    "financial modelling, P&L management, ROI optimisation, risk management, regulatory compliance, portfolio management, capital markets, due diligence",
	"Healthcare": "patient outcomes, clinical workflows, evidence-based practice, multidisciplinary collaboration, quality improvement, HIPAA/regulatory compliance",
	"Creative":   "brand identity, campaign performance, creative direction, content strategy, stakeholder engagement, visual storytelling, cross-functional collaboration",
	"Marketing":  "conversion rate optimisation, CAC/LTV, demand generation, growth marketing, SEO/SEM, campaign analytics, marketing automation",
	"Consulting": "strategic analysis, stakeholder management, project deliverables, business transformation, frameworks, executive communication, change management",
	"Education":  "curriculum development, learning outcomes, student engagement, differentiated instruction, academic achievement, programme design",
	"Legal":      "regulatory compliance, due diligence, contract negotiation, litigation support, legal research, risk assessment, counsel",
}

// Regions lists the known region keys.
func Regions() []string {
	return sortedKeys(regionGuidelines)
}

// Industries lists the known industry keys.
func Industries() []string {
	return sortedKeys(industryKeywords)
}
