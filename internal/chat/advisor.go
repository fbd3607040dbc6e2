package chat

import (
	"fmt"
	"strings"
)

type IssueType string

const (
	IssueSexualAssault   IssueType = "sexual_assault"
	IssueDocumentLoss    IssueType = "document_loss"
	IssuePassportRenewal IssueType = "passport_renewal"
	IssueCriminal        IssueType = "criminal"
	IssueFamily          IssueType = "family"
	IssueProperty        IssueType = "property"
	IssueEmployment      IssueType = "employment"
	IssueGeneral         IssueType = "general"
)

// Advice is the rule-based answer to a free-form legal question.
type Advice struct {
	Issue    IssueType `json:"issue"`
	Country  string    `json:"country,omitempty"`
	Greeting string    `json:"greeting"`
	Steps    []string  `json:"steps"`
	Tips     []string  `json:"tips"`
	Closing  string    `json:"closing"`
	Answer   string    `json:"answer"`
}

type playbook struct {
	issue    IssueType
	keywords []string
	excludes []string
	greeting string
	steps    []string
	tips     []string
	closing  string
}

func (p playbook) matches(q string) bool {
	if p.keywords == nil {
		return true
	}
	for _, ex := range p.excludes {
		if strings.Contains(q, ex) {
			return false
		}
	}
	for _, kw := range p.keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// Evaluated in order; the first match wins and the last entry always matches.
var playbooks = []playbook{
	{
		issue:    IssueSexualAssault,
		keywords: []string{"rape", "sexual assault", "molestation", "abuse", "harassment"},
		greeting: "🚨 Sexual Assault Emergency! You are not alone, and help is available!",
		steps: []string{
			"Get to safety immediately and call emergency services if you are in danger",
			"Seek medical attention within 72 hours and keep all medical reports",
			"File a police complaint within 24 hours and ask for a copy",
			"Contact women's helplines and support organisations",
			"Preserve evidence and document everything with dates",
		},
		tips: []string{
			"You are NOT to blame",
			"Your safety comes first",
			"Medical evidence is crucial",
		},
		closing: "💙 You are not alone. Help is available 24/7. Your safety and healing matter most.",
	},
	{
		issue:    IssueDocumentLoss,
		keywords: []string{"lost", "missing", "stolen", "misplaced"},
		greeting: "🛡️ Document Emergency! Don't panic, I've got your back!",
		steps: []string{
			"Report immediately to local police (get a copy of the report)",
			"Contact the passport office or your embassy",
			"Gather supporting documents (ID proofs, photos)",
			"Apply for a replacement with urgency",
			"Keep copies of all applications",
		},
		tips: []string{
			"File the police complaint within 24 hours",
			"Contact your embassy if abroad",
			"Apply for an emergency travel document if needed",
		},
		closing: "🛡️ Stay calm and act fast! Document recovery is possible with proper steps!",
	},
	{
		issue:    IssuePassportRenewal,
		keywords: []string{"passport", "renew", "renewal", "apply", "application"},
		excludes: []string{"lost", "missing", "stolen"},
		greeting: "📋 Passport Services! Let's get your travel documents sorted!",
		steps: []string{
			"Check eligibility and requirements",
			"Gather required documents (ID proofs, photos, address proof)",
			"Fill in the application form online or offline",
			"Pay applicable fees",
			"Submit the application with all documents",
			"Track the application status",
		},
		tips: []string{
			"Apply 3-6 months before travel",
			"Use official government portals",
			"Keep the application number safe for tracking",
		},
		closing: "🛂 Plan ahead for smooth travel! Proper preparation ensures hassle-free passport services!",
	},
	{
		issue:    IssueCriminal,
		keywords: []string{"arrest", "police", "criminal", "jail"},
		greeting: "🚨 Criminal Case Alert! Stay calm, know your rights!",
		steps: []string{
			"Know your rights (right to remain silent)",
			"Contact a lawyer immediately",
			"Don't sign anything without legal advice",
			"Document everything (witnesses, evidence)",
			"Apply for bail if arrested",
		},
		tips: []string{
			"Don't talk to police without a lawyer",
			"Keep evidence of innocence",
			"File complaints if your rights are violated",
		},
		closing: "⚖️ Remember your rights! Stay strong and get proper legal representation!",
	},
	{
		issue:    IssueFamily,
		keywords: []string{"divorce", "marriage", "family", "custody"},
		greeting: "💔 Family Law Matter! Let's handle this with care and wisdom!",
		steps: []string{
			"Document all incidents and communications",
			"Consult a family law specialist",
			"Consider mediation first",
			"Gather financial documents",
			"Focus on the children's best interests",
		},
		tips: []string{
			"Keep emotions separate from legal strategy",
			"Protect children from conflict",
			"Maintain financial records",
		},
		closing: "💝 Family matters need care! Focus on solutions that work for everyone!",
	},
	{
		issue:    IssueProperty,
		keywords: []string{"property", "land", "house", "rent", "lease"},
		greeting: "🏠 Property Law Issue! Let's protect your rights!",
		steps: []string{
			"Gather all property documents",
			"Verify ownership and boundaries",
			"Consult a property law expert",
			"Document all communications",
			"Consider a legal notice if needed",
		},
		tips: []string{
			"Take photos of the property condition",
			"Maintain payment records",
			"Get everything in writing",
		},
		closing: "🏠 Property rights are fundamental! Protect what's yours with proper legal steps!",
	},
	{
		issue:    IssueEmployment,
		keywords: []string{"work", "job", "employment", "salary", "termination"},
		greeting: "💼 Employment Law Issue! Let's fight for your workplace rights!",
		steps: []string{
			"Document all workplace incidents",
			"Know your employment contract",
			"Contact the labour department if needed",
			"Keep salary and work records",
			"Consider legal action if your rights are violated",
		},
		tips: []string{
			"Document harassment or discrimination",
			"Know your working hours and overtime rights",
			"Don't sign anything under pressure",
		},
		closing: "💼 Workplace rights matter! Stand up for fair treatment and proper compensation!",
	},
	{
		issue:    IssueGeneral,
		greeting: "⚖️ Legal Guidance! Here's your action plan!",
		steps: []string{
			"Document everything",
			"Research your specific legal rights",
			"Contact relevant authorities",
			"Consider consulting a lawyer",
			"Follow proper legal procedures",
		},
		tips: []string{
			"Keep all documents and evidence organised",
			"Stay calm and professional in all interactions",
			"Consider mediation before going to court",
		},
		closing: "💪 You've got this! Knowledge is power - use these steps wisely!",
	},
}

// knownCountries is scanned in order; the first key found in the question wins.
var knownCountries = []struct{ key, name string }{
	{"india", "India"},
	{"pakistan", "Pakistan"},
	{"usa", "USA"},
	{"australia", "Australia"},
	{"canada", "Canada"},
	{"uk", "UK"},
	{"bhutan", "Bhutan"},
	{"nepal", "Nepal"},
	{"new zealand", "New Zealand"},
	{"singapore", "Singapore"},
}

func SupportedCountries() []string {
	out := make([]string, 0, len(knownCountries))
	for _, c := range knownCountries {
		out = append(out, c.name)
	}
	return out
}

// DetectCountry finds the first supported country mentioned in the question.
func DetectCountry(question string) string {
	q := strings.ToLower(question)
	for _, c := range knownCountries {
		if strings.Contains(q, c.key) {
			return c.name
		}
	}
	return ""
}

// Advise classifies question by keyword and renders the matching playbook.
// When country is empty it is detected from the question.
func Advise(question, country string) Advice {
	q := strings.ToLower(question)
	if country == "" {
		country = DetectCountry(question)
	}

	var pb playbook
	for _, p := range playbooks {
		if p.matches(q) {
			pb = p
			break
		}
	}

	var b strings.Builder
	b.WriteString(pb.greeting)
	b.WriteString("\n\n")
	for i, s := range pb.steps {
		fmt.Fprintf(&b, "📋 Step %d: %s\n", i+1, s)
	}
	b.WriteString("\n💡 Pro Tips:\n")
	for _, t := range pb.tips {
		fmt.Fprintf(&b, "• %s\n", t)
	}
	if country != "" {
		fmt.Fprintf(&b, "\n🌍 Country-Specific Note: This advice is general. For %s-specific laws, consult a local legal expert.\n", country)
	}
	b.WriteString("\n")
	b.WriteString(pb.closing)

	return Advice{
		Issue:    pb.issue,
		Country:  country,
		Greeting: pb.greeting,
		Steps:    pb.steps,
		Tips:     pb.tips,
		Closing:  pb.closing,
		Answer:   b.String(),
	}
}
