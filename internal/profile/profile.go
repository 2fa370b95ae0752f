// Package profile defines the structured profile record persisted by the
// sync pipeline and the partial fragments produced by extraction.
package profile

// Record is the persisted structured profile. Map keys are derived from
// display names via DeriveKey; first writer wins on key collisions.
type Record struct {
	Name            string                   `json:"name,omitempty"`
	Contact         []string                 `json:"contact"`
	Facts           []string                 `json:"facts"`
	Projects        map[string]Project       `json:"projects"`
	Languages       []LanguageEntry          `json:"languages"`
	Certifications  map[string]Certification `json:"certifications"`
	Education       map[string]Education     `json:"education"`
	Experience      map[string]Experience    `json:"experience"`
	Research        map[string]Research      `json:"research"`
	TechnicalSkills *TechnicalSkills         `json:"technical_skills,omitempty"`
}

// Fragment is a transient, partial view of a Record produced by one
// extraction pass. Every field is optional; absent fields are no-ops on merge.
type Fragment struct {
	Name            string                   `json:"name,omitempty"`
	Contact         []string                 `json:"contact,omitempty"`
	Facts           []string                 `json:"facts,omitempty"`
	Projects        map[string]Project       `json:"projects,omitempty"`
	Languages       []LanguageEntry          `json:"languages,omitempty"`
	Certifications  map[string]Certification `json:"certifications,omitempty"`
	Education       map[string]Education     `json:"education,omitempty"`
	Experience      map[string]Experience    `json:"experience,omitempty"`
	Research        map[string]Research      `json:"research,omitempty"`
	TechnicalSkills *TechnicalSkills         `json:"technical_skills,omitempty"`
}

// LanguageEntry is a spoken-language proficiency entry, deduplicated by
// case-insensitive name on merge.
type LanguageEntry struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
	Context     string `json:"context,omitempty"`
}

// Certification is one certification or completed course.
type Certification struct {
	Name                string `json:"name"`
	Issuer              string `json:"issuer,omitempty"`
	Year                string `json:"year,omitempty"`
	ExtractedFromResume bool   `json:"extracted_from_resume,omitempty"`
}

// Education is one education entry.
type Education struct {
	Degree              string `json:"degree"`
	Institution         string `json:"institution"`
	FieldOfStudy        string `json:"field_of_study,omitempty"`
	Location            string `json:"location,omitempty"`
	Period              string `json:"period,omitempty"`
	InProgress          bool   `json:"in_progress,omitempty"`
	ExtractedFromResume bool   `json:"extracted_from_resume,omitempty"`
}

// Experience is one work experience entry.
type Experience struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location,omitempty"`
	Period     string   `json:"period,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// Research is one research output (publication, talk, thesis).
type Research struct {
	Title   string `json:"title"`
	Venue   string `json:"venue,omitempty"`
	Year    string `json:"year,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Project is one personal or professional project.
type Project struct {
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// TechnicalSkills groups technical skill lists. On merge, a sub-list present
// in a fragment replaces the corresponding existing sub-list wholesale.
type TechnicalSkills struct {
	OperatingSystems     []string `json:"operating_systems,omitempty"`
	ProgrammingLanguages []string `json:"programming_languages,omitempty"`
	ToolsAndTechnologies []string `json:"tools_and_technologies,omitempty"`
	AreasOfExpertise     []string `json:"areas_of_expertise,omitempty"`
}

// NewRecord returns an empty but well-typed record. Used as the fallback
// when the stored record file is missing or corrupt.
func NewRecord() *Record {
	return &Record{
		Contact:        []string{},
		Facts:          []string{},
		Projects:       map[string]Project{},
		Languages:      []LanguageEntry{},
		Certifications: map[string]Certification{},
		Education:      map[string]Education{},
		Experience:     map[string]Experience{},
		Research:       map[string]Research{},
	}
}
