package extraction

// Keyword and pattern lists driving the extractors. These are configuration
// data, not control logic: the resumes this tool ingests mix English and
// Portuguese, so every list carries both languages. Order matters for
// ranked output; matching is always on lower-cased text.

// certSectionHeaders marks the start of a certification section.
var certSectionHeaders = []string{
	"licenses & certifications",
	"licenças e certificados",
	"certifications",
	"certificações",
	"certificates",
	"certificados",
}

// certExitHeaders are section headers that terminate a certification section.
var certExitHeaders = []string{
	"experience",
	"experiência",
	"education",
	"formação",
	"educação",
	"work history",
}

// certActionKeywords flag a line as a certification candidate anywhere in
// the document, independent of section state.
var certActionKeywords = []string{
	"certified",
	"certificate",
	"certification",
	"course",
	"training",
	"certificado",
	"certificação",
	"curso",
	"treinamento",
}

// certProviders are vendor and platform names that commonly issue
// certificates or host courses.
var certProviders = []string{
	"aws",
	"amazon",
	"microsoft",
	"azure",
	"google",
	"oracle",
	"cisco",
	"ibm",
	"coursera",
	"udemy",
	"alura",
	"datacamp",
	"linkedin learning",
	"scrum.org",
	"hackerrank",
}

// languageSectionHeaders mark spoken-language sections; they are structural
// noise for the certification scan.
var languageSectionHeaders = []string{
	"languages",
	"idiomas",
}

// spokenLanguages maps resume tokens (both languages) to canonical names.
var spokenLanguages = map[string]string{
	"english":    "English",
	"inglês":     "English",
	"portuguese": "Portuguese",
	"português":  "Portuguese",
	"spanish":    "Spanish",
	"espanhol":   "Spanish",
	"french":     "French",
	"francês":    "French",
	"german":     "German",
	"alemão":     "German",
	"italian":    "Italian",
	"italiano":   "Italian",
}

// spokenLanguageOrder fixes iteration order over spokenLanguages so extraction
// output is deterministic.
var spokenLanguageOrder = []string{
	"english", "inglês",
	"portuguese", "português",
	"spanish", "espanhol",
	"french", "francês",
	"german", "alemão",
	"italian", "italiano",
}

// proficiencyLevels maps proficiency tokens found near a language name to
// canonical levels, strongest first.
var proficiencyLevels = []struct {
	Token string
	Level string
}{
	{"native", "Native"},
	{"nativo", "Native"},
	{"fluent", "Fluent"},
	{"fluente", "Fluent"},
	{"advanced", "Advanced"},
	{"avançado", "Advanced"},
	{"professional", "Professional working proficiency"},
	{"profissional", "Professional working proficiency"},
	{"intermediate", "Intermediate"},
	{"intermediário", "Intermediate"},
	{"basic", "Basic"},
	{"básico", "Basic"},
}

// programmingLanguages are matched with word boundaries against the full text.
var programmingLanguages = []string{
	"Python", "Java", "JavaScript", "TypeScript", "Go", "C++", "C#",
	"Ruby", "PHP", "Kotlin", "Swift", "Scala", "Rust", "SQL", "R",
}

// toolsAndTechnologies are matched with word boundaries against the full text.
var toolsAndTechnologies = []string{
	"Docker", "Kubernetes", "Git", "Linux", "AWS", "Azure", "GCP",
	"React", "Node.js", "Django", "Flask", "Spring", "PostgreSQL",
	"MySQL", "MongoDB", "Redis", "Terraform", "Jenkins", "Power BI",
	"Excel", "Tableau",
}

// socialDomains is the allow-list of professional-network hosts whose profile
// paths are normalized to canonical https:// URLs by the contact extractor.
var socialDomains = []string{
	"linkedin.com",
	"github.com",
	"gitlab.com",
	"stackoverflow.com",
	"lattes.cnpq.br",
}
