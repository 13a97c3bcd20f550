package resume

// SkillCategory groups lowercase skill keywords under a display category.
type SkillCategory struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// SectionHeader names a section and the keyword alternation that introduces it.
// Pattern is wrapped as a case-insensitive whole-word match, e.g. `summary|objective`.
type SectionHeader struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

// Dictionary holds every keyword table and pattern list the parser uses.
// Any empty field falls back to the corresponding default when passed to New.
type Dictionary struct {
	// PhonePatterns are tried in order; the first pattern with a match wins.
	PhonePatterns []string `json:"phone_patterns"`

	SkillCategories []SkillCategory `json:"skill_categories"`

	// EducationPatterns are full regular expressions tested per line.
	EducationPatterns []string `json:"education_patterns"`

	JobTitles []string `json:"job_titles"`

	// SectionHeaders are scanned in order; each section keeps its first header match.
	SectionHeaders []SectionHeader `json:"section_headers"`

	// BoundaryKeywords end a section body when they appear on a short line.
	BoundaryKeywords []string `json:"boundary_keywords"`

	NameSkipMarkers       []string `json:"name_skip_markers"`
	CertificationKeywords []string `json:"certification_keywords"`
}

// Section names produced by the default dictionary.
const (
	SectionSummary        = "summary"
	SectionEducation      = "education"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAchievements   = "achievements"
	SectionSkills         = "skills"
)

// DefaultDictionary returns a fresh copy of the built-in tables. Callers may
// modify the result freely.
func DefaultDictionary() *Dictionary {
	return &Dictionary{
		// Local 10-digit numbers take priority over parenthesised area codes,
		// then explicit international prefixes, then the loose generic form.
		PhonePatterns: []string{
			`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`,
			`\(\d{3}\)\s*\d{3}[-.]?\d{4}`,
			`\+\d{1,3}[-. ]?\d{1,4}[-. ]?\d{1,4}[-. ]?\d{1,9}`,
			`(?:\+?\d{1,3}[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}`,
		},
		SkillCategories: []SkillCategory{
			{
				Name: "Programming Languages",
				Keywords: []string{
					"python", "java", "javascript", "typescript", "golang", "c++", "c#",
					"rust", "scala", "kotlin", "swift", "ruby", "php",
				},
			},
			{
				Name: "Web Technologies",
				Keywords: []string{
					"html", "css", "react", "angular", "vue.js", "node.js", "express",
					"django", "flask", "spring", "bootstrap",
				},
			},
			{
				Name: "Databases",
				Keywords: []string{
					"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle",
				},
			},
			{
				Name: "Tools",
				Keywords: []string{
					"git", "docker", "kubernetes", "aws", "azure", "gcp", "jenkins",
					"linux", "terraform",
				},
			},
			{
				Name: "Data Science",
				Keywords: []string{
					"machine learning", "data science", "deep learning", "tensorflow",
					"pytorch", "pandas", "numpy", "scikit-learn", "matplotlib", "nlp",
				},
			},
			{
				Name: "Soft Skills",
				Keywords: []string{
					"communication", "teamwork", "leadership", "problem-solving",
					"adaptability", "time management", "critical thinking",
					"project management", "analytical thinking",
				},
			},
		},
		EducationPatterns: []string{
			// degree abbreviations
			`(?i)(?:^|[^a-z])(?:b\.?\s?tech|m\.?\s?tech|b\.?\s?sc|m\.?\s?sc|b\.?\s?com|m\.?\s?com|b\.?\s?eng|m\.?\s?eng|b\.e\.?|m\.e\.?|b\.?s\.?|m\.?s\.?|b\.?a\.?|m\.?a\.?|mba|bba|bca|mca|ph\.?\s?d\.?)(?:[^a-z]|$)`,
			// degree names
			`(?i)\b(?:bachelor(?:'?s)?|master(?:'?s)?|doctorate|diploma|associate degree|high school|higher secondary|secondary school)\b`,
			// fields of study
			`(?i)\b(?:computer science|information technology|software engineering|electrical engineering|electronics|mechanical engineering|civil engineering|mathematics|physics|chemistry|economics|business administration)\b`,
		},
		JobTitles: []string{
			"developer", "engineer", "manager", "analyst", "consultant", "intern",
			"lead", "senior", "junior", "associate", "specialist", "coordinator",
		},
		SectionHeaders: []SectionHeader{
			{Name: SectionSummary, Pattern: `summary|objective|profile|about me`},
			{Name: SectionEducation, Pattern: `education|academic background|qualifications`},
			{Name: SectionExperience, Pattern: `experience|employment|work history`},
			{Name: SectionProjects, Pattern: `projects?`},
			{Name: SectionCertifications, Pattern: `certifications?|licenses`},
			{Name: SectionAchievements, Pattern: `achievements?|awards|honou?rs`},
			{Name: SectionSkills, Pattern: `skills|competencies`},
		},
		BoundaryKeywords: []string{
			"summary", "objective", "profile", "education", "experience", "employment",
			"projects", "project", "certifications", "certification", "achievements",
			"awards", "skills", "interests", "hobbies", "languages", "references",
			"publications",
		},
		NameSkipMarkers: []string{
			"resume", "cv", "phone", "http", "www", "curriculum", "vitae", "email", "mobile",
		},
		CertificationKeywords: []string{
			"certified", "certification", "certificate", "license",
		},
	}
}

// withDefaults fills every empty field of d from the defaults.
func (d *Dictionary) withDefaults() *Dictionary {
	def := DefaultDictionary()
	if d == nil {
		return def
	}
	out := *d
	if len(out.PhonePatterns) == 0 {
		out.PhonePatterns = def.PhonePatterns
	}
	if len(out.SkillCategories) == 0 {
		out.SkillCategories = def.SkillCategories
	}
	if len(out.EducationPatterns) == 0 {
		out.EducationPatterns = def.EducationPatterns
	}
	if len(out.JobTitles) == 0 {
		out.JobTitles = def.JobTitles
	}
	if len(out.SectionHeaders) == 0 {
		out.SectionHeaders = def.SectionHeaders
	}
	if len(out.BoundaryKeywords) == 0 {
		out.BoundaryKeywords = def.BoundaryKeywords
	}
	if len(out.NameSkipMarkers) == 0 {
		out.NameSkipMarkers = def.NameSkipMarkers
	}
	if len(out.CertificationKeywords) == 0 {
		out.CertificationKeywords = def.CertificationKeywords
	}
	return &out
}
