package career

// DefaultRoles returns a fresh copy of the built-in role table.
func DefaultRoles() []Role {
	return []Role{
		// tech
		{"Python Developer", []string{"python", "flask", "django"}},
		{"Java Developer", []string{"java", "spring", "hibernate"}},
		{"Frontend Developer", []string{"html", "css", "javascript", "react", "bootstrap"}},
		{"Backend Developer", []string{"node", "node.js", "express", "api", "mongodb", "mysql", "postgresql"}},
		{"Full Stack Developer", []string{"react", "node", "node.js", "html", "css", "mongodb", "express"}},
		{"Data Analyst", []string{"excel", "sql", "pandas", "tableau", "data analysis"}},
		{"Data Scientist", []string{"python", "pandas", "sklearn", "matplotlib", "statistics", "regression", "data science"}},
		{"ML Engineer", []string{"tensorflow", "pytorch", "scikit", "scikit-learn", "ml", "ai", "deep learning", "machine learning"}},
		{"AI Researcher", []string{"nlp", "vision", "transformer", "bert", "ai"}},
		{"DevOps Engineer", []string{"docker", "jenkins", "ci/cd", "aws", "linux", "ansible"}},
		{"Cloud Engineer", []string{"aws", "azure", "gcp", "cloud", "kubernetes", "terraform"}},
		{"Mobile App Developer", []string{"flutter", "android", "kotlin", "react native", "ios", "swift"}},
		{"Cybersecurity Analyst", []string{"cybersecurity", "network security", "kali", "nmap", "vulnerability", "penetration"}},
		{"QA Tester", []string{"selenium", "testcase", "junit", "bug tracking", "qa"}},
		{"UI/UX Designer", []string{"figma", "xd", "wireframe", "ui", "ux", "prototyping", "design thinking"}},

		// creative and content
		{"Graphic Designer", []string{"photoshop", "illustrator", "canva", "branding", "logo", "poster"}},
		{"Animator / Video Editor", []string{"after effects", "premiere", "animation", "editing", "motion graphics"}},
		{"Content Writer", []string{"writing", "storytelling", "copywriting", "articles", "blog", "seo writing"}},
		{"Social Media Manager", []string{"instagram", "twitter", "content calendar", "hashtag", "reels", "analytics"}},
		{"YouTube Creator", []string{"youtube", "script", "editing", "voiceover", "thumbnail"}},

		// business and management
		{"Project Manager", []string{"agile", "scrum", "kanban", "jira", "project planning", "sprint", "team lead", "project management"}},
		{"Product Manager", []string{"roadmap", "market fit", "prioritization", "requirements", "user stories"}},
		{"HR Executive", []string{"recruitment", "interviews", "hr", "people ops", "employee engagement"}},
		{"Operations Manager", []string{"logistics", "inventory", "supply chain", "erp", "vendor", "ops"}},
		{"Business Analyst", []string{"gap analysis", "requirement", "bpmn", "process modeling", "reports"}},

		// finance and marketing
		{"Accountant", []string{"tally", "ledger", "gst", "income tax", "reconciliation"}},
		{"Financial Analyst", []string{"budget", "forecast", "excel", "valuation", "balance sheet", "finance"}},
		{"Digital Marketer", []string{"seo", "sem", "google ads", "meta ads", "email marketing", "analytics"}},
		{"Market Researcher", []string{"survey", "sampling", "qualitative", "quantitative", "market trends"}},

		// education and research
		{"Academic Researcher", []string{"publication", "paper", "journal", "thesis", "research methodology"}},
		{"Teacher / Instructor", []string{"teaching", "lesson plan", "classroom", "curriculum", "blackboard", "school"}},
		{"Trainer / Coach", []string{"training", "workshop", "upskilling", "facilitation"}},

		// healthcare and law
		{"Healthcare Assistant", []string{"medical", "nursing", "patient care", "hospital", "clinical"}},
		{"Pharmacist", []string{"pharma", "prescription", "medicines", "drug", "inventory"}},
		{"Legal Assistant / Paralegal", []string{"contracts", "legal", "case law", "court", "compliance", "legal drafting"}},

		// general and transferable
		{"Customer Support Representative", []string{"customer service", "support", "call center", "crm", "ticket"}},
		{"Administrative Assistant", []string{"admin", "ms office", "calendar", "clerical", "report"}},
		{"Sales Executive", []string{"lead gen", "crm", "cold call", "deal", "sales funnel"}},
		{"Entrepreneur / Startup Founder", []string{"startup", "pitch deck", "fundraising", "mvp", "growth", "bootstrap"}},
		{"Soft Skill Trainer", []string{"communication", "leadership", "teamwork", "empathy", "negotiation"}},
	}
}
