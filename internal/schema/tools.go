package schema

// builtinTools returns the declarative definitions of the built-in career
// tools. Each definition is authored once and treated as immutable
// configuration; the shared pipeline does the rest.
func builtinTools() []*ToolSchema {
	return []*ToolSchema{
		careerRoadmap(),
		freelanceRate(),
		automationRisk(),
		careerTransition(),
		jobDemand(),
		keywordFinder(),
		linkedinHeadline(),
		resumeGap(),
		studyAbroadROI(),
		workAbroadSavings(),
		workLifeBalance(),
	}
}

var industries = []string{
	"technology", "finance", "healthcare", "education", "manufacturing",
	"retail", "media", "government", "other",
}

var regions = []string{
	"north-america", "western-europe", "eastern-europe", "south-asia",
	"east-asia", "southeast-asia", "middle-east", "latin-america",
	"africa", "oceania",
}

func careerRoadmap() *ToolSchema {
	return &ToolSchema{
		Slug:        "career-roadmap",
		Title:       "Career Roadmap Generator",
		Description: "Generates a phased growth plan from a current role toward a target role.",
		ResultKey:   "roadmap",
		Fields: []Field{
			{Name: "currentRole", Label: "Current role", Kind: KindShortText, Required: true,
				Constraints: Constraints{MaxChars: 120}},
			{Name: "experienceYears", Label: "Years of experience", Kind: KindNumber, Required: true,
				Constraints: Constraints{Min: FloatPtr(0), Max: FloatPtr(50), Step: FloatPtr(1)}},
			{Name: "targetRole", Label: "Target role", Kind: KindShortText, Required: true,
				Constraints: Constraints{MaxChars: 120}},
			{Name: "industry", Label: "Industry", Kind: KindSelect, Required: true,
				Constraints: Constraints{Options: industries}},
			{Name: "timeframe", Label: "Timeframe", Kind: KindSelect, Default: "3-years",
				Constraints: Constraints{Options: []string{"1-year", "3-years", "5-years"}}},
		},
		Result: []ResultField{
			{Name: "summary", Type: ResultString},
			{Name: "milestones", Type: ResultArray, Items: &ResultField{
				Type: ResultObject,
				Fields: []ResultField{
					{Name: "phase", Type: ResultString},
					{Name: "title", Type: ResultString},
					{Name: "actions", Type: ResultArray, Items: &ResultField{Type: ResultString}},
				},
			}},
			{Name: "skillsToBuild", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "recommendations", Type: ResultArray, Items: &ResultField{Type: ResultString}},
		},
		Sections: []SectionSpec{
			{Category: SectionNarrative, Title: "Your path", Path: "summary"},
			{Category: SectionCategorizedList, Title: "Milestones", Path: "milestones"},
			{Category: SectionCategorizedList, Title: "Skills to build", Path: "skillsToBuild"},
			{Category: SectionRecommendations, Title: "Recommendations", Path: "recommendations"},
		},
	}
}

func freelanceRate() *ToolSchema {
	return &ToolSchema{
		Slug:        "freelance-rate",
		Title:       "Freelance Rate Calculator",
		Description: "Estimates a defensible hourly and day rate for a freelance skill set.",
		ResultKey:   "analysis",
		Fields: []Field{
			{Name: "skill", Label: "Primary skill", Kind: KindShortText, Required: true,
				Constraints: Constraints{MaxChars: 100}},
			{Name: "experienceYears", Label: "Years of experience", Kind: KindSlider, Required: true,
				Default:     float64(3),
				Constraints: Constraints{Min: FloatPtr(0), Max: FloatPtr(40), Step: FloatPtr(1)}},
			{Name: "region", Label: "Client region", Kind: KindSelect, Required: true,
				Constraints: Constraints{Options: regions}},
			{Name: "hoursPerWeek", Label: "Billable hours per week", Kind: KindSlider,
				Default:     float64(30),
				Constraints: Constraints{Min: FloatPtr(1), Max: FloatPtr(80), Step: FloatPtr(1)}},
			{Name: "overheadMonthly", Label: "Monthly overhead (USD)", Kind: KindNumber,
				Constraints: Constraints{Min: FloatPtr(0), Max: FloatPtr(100000)}},
		},
		Result: []ResultField{
			{Name: "hourlyRate", Type: ResultNumber},
			{Name: "dayRate", Type: ResultNumber},
			{Name: "rationale", Type: ResultString},
			{Name: "marketComparison", Type: ResultObject, Fields: []ResultField{
				{Name: "low", Type: ResultNumber},
				{Name: "median", Type: ResultNumber},
				{Name: "high", Type: ResultNumber},
			}},
			{Name: "negotiationTips", Type: ResultArray, Items: &ResultField{Type: ResultString}},
		},
		Sections: []SectionSpec{
			{Category: SectionPrimaryScore, Title: "Suggested hourly rate", Path: "hourlyRate"},
			{Category: SectionNarrative, Title: "How we got here", Path: "rationale"},
			{Category: SectionCategorizedList, Title: "Market comparison", Path: "marketComparison"},
			{Category: SectionRecommendations, Title: "Negotiation tips", Path: "negotiationTips"},
		},
	}
}

func automationRisk() *ToolSchema {
	return &ToolSchema{
		Slug:        "automation-risk",
		Title:       "Automation Risk Checker",
		Description: "Scores how exposed a role's daily tasks are to automation.",
		ResultKey:   "assessment",
		Fields: []Field{
			{Name: "jobTitle", Label: "Job title", Kind: KindShortText, Required: true,
				Constraints: Constraints{MaxChars: 120}},
			{Name: "dailyTasks", Label: "Typical daily tasks", Kind: KindLongText, Required: true,
				Constraints: Constraints{
					SoftMaxWords: 300, SoftMaxChars: 2000,
					MaxWords: 1500, MaxChars: 10000,
				}},
			{Name: "industry", Label: "Industry", Kind: KindSelect, Required: true,
				Constraints: Constraints{Options: industries}},
		},
		Result: []ResultField{
			{Name: "riskScore", Type: ResultInteger},
			{Name: "outlook", Type: ResultString},
			{Name: "vulnerableTasks", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "resilientSkills", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "recommendations", Type: ResultArray, Items: &ResultField{Type: ResultString}},
		},
		Sections: []SectionSpec{
			{Category: SectionPrimaryScore, Title: "Automation risk", Path: "riskScore"},
			{Category: SectionNarrative, Title: "Outlook", Path: "outlook"},
			{Category: SectionCategorizedList, Title: "Most exposed tasks", Path: "vulnerableTasks"},
			{Category: SectionCategorizedList, Title: "Durable skills", Path: "resilientSkills"},
			{Category: SectionRecommendations, Title: "What to do next", Path: "recommendations"},
		},
	}
}

func careerTransition() *ToolSchema {
	return &ToolSchema{
		Slug:        "career-transition",
		Title:       "Career Transition Planner",
		Description: "Assesses the feasibility of moving between fields and plans the switch.",
		ResultKey:   "analysis",
		Fields: []Field{
			{Name: "currentField", Label: "Current field", Kind: KindShortText, Required: true,
				Constraints: Constraints{MaxChars: 120}},
			{Name: "targetField", Label: "Target field", Kind: KindShortText, Required: true,
				Constraints: Constraints{MaxChars: 120}},
			{Name: "experienceYears", Label: "Years of experience", Kind: KindNumber, Required: true,
				Constraints: Constraints{Min: FloatPtr(0), Max: FloatPtr(50)}},
			{Name: "constraints", Label: "Constraints or context", Kind: KindLongText,
				Constraints: Constraints{MaxWords: 500, MaxChars: 4000}},
		},
		Result: []ResultField{
			{Name: "feasibilityScore", Type: ResultInteger},
			{Name: "transferableSkills", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "skillGaps", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "steps", Type: ResultArray, Items: &ResultField{
				Type: ResultObject,
				Fields: []ResultField{
					{Name: "title", Type: ResultString},
					{Name: "detail", Type: ResultString},
				},
			}},
			{Name: "timeline", Type: ResultString},
		},
		Sections: []SectionSpec{
			{Category: SectionPrimaryScore, Title: "Feasibility", Path: "feasibilityScore"},
			{Category: SectionCategorizedList, Title: "Skills that transfer", Path: "transferableSkills"},
			{Category: SectionCategorizedList, Title: "Gaps to close", Path: "skillGaps"},
			{Category: SectionRecommendations, Title: "Transition plan", Path: "steps"},
			{Category: SectionNarrative, Title: "Expected timeline", Path: "timeline"},
		},
	}
}

func jobDemand() *ToolSchema {
	return &ToolSchema{
		Slug:        "job-demand",
		Title:       "Job Demand & Competition Analyzer",
		Description: "Estimates demand, supply, and competition for a role in a region.",
		ResultKey:   "competitionAnalysis",
		Fields: []Field{
			{Name: "jobTitle", Label: "Job title", Kind: KindShortText, Required: true,
				Constraints: Constraints{MaxChars: 120}},
			{Name: "region", Label: "Region", Kind: KindSelect, Required: true,
				Constraints: Constraints{Options: regions}},
			{Name: "seniority", Label: "Seniority", Kind: KindSelect, Default: "mid",
				Constraints: Constraints{Options: []string{"entry", "mid", "senior", "lead"}}},
		},
		Result: []ResultField{
			{Name: "demandScore", Type: ResultInteger},
			{Name: "supplyScore", Type: ResultInteger},
			{Name: "competitionLevel", Type: ResultString},
			{Name: "trend", Type: ResultString},
			{Name: "advice", Type: ResultArray, Items: &ResultField{Type: ResultString}},
		},
		Sections: []SectionSpec{
			{Category: SectionPrimaryScore, Title: "Demand", Path: "demandScore"},
			{Category: SectionNarrative, Title: "Competition", Path: "competitionLevel"},
			{Category: SectionNarrative, Title: "Trend", Path: "trend"},
			{Category: SectionRecommendations, Title: "How to stand out", Path: "advice"},
		},
	}
}

func keywordFinder() *ToolSchema {
	return &ToolSchema{
		Slug:        "keyword-finder",
		Title:       "Resume Keyword Finder",
		Description: "Extracts the keywords a job description expects a resume to carry.",
		ResultKey:   "keywords",
		Fields: []Field{
			{Name: "jobDescription", Label: "Job description", Kind: KindLongText, Required: true,
				Constraints: Constraints{
					// Display guidance turns amber past these.
					SoftMaxWords: 800, SoftMaxChars: 4000,
					// Submission is gated only by the hard ceiling.
					MaxWords: 5000, MaxChars: 35000,
				}},
		},
		Result: []ResultField{
			{Name: "hardSkills", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "softSkills", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "certifications", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "byPriority", Type: ResultArray, Items: &ResultField{
				Type: ResultObject,
				Fields: []ResultField{
					{Name: "keyword", Type: ResultString},
					{Name: "priority", Type: ResultString},
				},
			}},
		},
		Sections: []SectionSpec{
			{Category: SectionCategorizedList, Title: "Hard skills", Path: "hardSkills"},
			{Category: SectionCategorizedList, Title: "Soft skills", Path: "softSkills"},
			{Category: SectionCategorizedList, Title: "Certifications", Path: "certifications"},
			{Category: SectionRecommendations, Title: "By priority", Path: "byPriority"},
		},
	}
}

func linkedinHeadline() *ToolSchema {
	return &ToolSchema{
		Slug:        "linkedin-headline",
		Title:       "LinkedIn Headline Generator",
		Description: "Writes headline and about-section variants for a profile.",
		ResultKey:   "content",
		Fields: []Field{
			{Name: "currentRole", Label: "Current role", Kind: KindShortText, Required: true,
				Constraints: Constraints{MaxChars: 120}},
			{Name: "specialty", Label: "Specialty or niche", Kind: KindShortText,
				Constraints: Constraints{MaxChars: 160}},
			{Name: "achievements", Label: "Notable achievements", Kind: KindLongText,
				Constraints: Constraints{SoftMaxWords: 150, MaxWords: 600, MaxChars: 4000}},
			{Name: "tone", Label: "Tone", Kind: KindSelect, Default: "professional",
				Constraints: Constraints{Options: []string{"professional", "conversational", "bold"}}},
		},
		Result: []ResultField{
			{Name: "headlines", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "about", Type: ResultString},
			{Name: "tips", Type: ResultArray, Items: &ResultField{Type: ResultString}},
		},
		Sections: []SectionSpec{
			{Category: SectionCategorizedList, Title: "Headline options", Path: "headlines"},
			{Category: SectionNarrative, Title: "About section", Path: "about"},
			{Category: SectionRecommendations, Title: "Profile tips", Path: "tips"},
		},
	}
}

func resumeGap() *ToolSchema {
	return &ToolSchema{
		Slug:        "resume-gap",
		Title:       "Resume Gap Explainer",
		Description: "Frames an employment gap honestly and prepares interview answers.",
		ResultKey:   "analysis",
		Fields: []Field{
			{Name: "gapMonths", Label: "Gap length (months)", Kind: KindNumber, Required: true,
				Constraints: Constraints{Min: FloatPtr(1), Max: FloatPtr(600)}},
			{Name: "reason", Label: "Primary reason", Kind: KindSelect, Required: true,
				Constraints: Constraints{Options: []string{
					"caregiving", "health", "education", "layoff", "relocation",
					"travel", "entrepreneurship", "other",
				}}},
			{Name: "lastRole", Label: "Most recent role", Kind: KindShortText,
				Constraints: Constraints{MaxChars: 120}},
		},
		Result: []ResultField{
			{Name: "framing", Type: ResultString},
			{Name: "bulletSuggestions", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "interviewAnswers", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "doList", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "dontList", Type: ResultArray, Items: &ResultField{Type: ResultString}},
		},
		Sections: []SectionSpec{
			{Category: SectionNarrative, Title: "How to frame it", Path: "framing"},
			{Category: SectionCategorizedList, Title: "Resume bullets", Path: "bulletSuggestions"},
			{Category: SectionCategorizedList, Title: "Interview answers", Path: "interviewAnswers"},
			{Category: SectionRecommendations, Title: "Do", Path: "doList"},
			{Category: SectionRecommendations, Title: "Avoid", Path: "dontList"},
		},
	}
}

func studyAbroadROI() *ToolSchema {
	return &ToolSchema{
		Slug:        "study-abroad-roi",
		Title:       "Study Abroad ROI Calculator",
		Description: "Weighs the cost of studying abroad against expected salary gains.",
		ResultKey:   "roiCalculation",
		Fields: []Field{
			{Name: "targetCountry", Label: "Destination", Kind: KindSelect, Required: true, Step: 1,
				Constraints: Constraints{Options: []string{
					"usa", "uk", "canada", "germany", "australia", "netherlands",
					"singapore", "japan", "other",
				}}},
			{Name: "program", Label: "Program", Kind: KindShortText, Required: true, Step: 1,
				Constraints: Constraints{MaxChars: 160}},
			{Name: "tuitionTotal", Label: "Total tuition (USD)", Kind: KindNumber, Required: true, Step: 1,
				Constraints: Constraints{Min: FloatPtr(0), Max: FloatPtr(1000000)}},
			{Name: "livingMonthly", Label: "Monthly living cost (USD)", Kind: KindNumber, Required: true, Step: 1,
				Constraints: Constraints{Min: FloatPtr(0), Max: FloatPtr(20000)}},
			{Name: "homeSalary", Label: "Current annual salary (USD)", Kind: KindNumber, Required: true, Step: 2,
				Constraints: Constraints{Min: FloatPtr(0), Max: FloatPtr(2000000)}},
			{Name: "expectedSalary", Label: "Expected annual salary after (USD)", Kind: KindNumber, Required: true, Step: 2,
				Constraints: Constraints{Min: FloatPtr(0), Max: FloatPtr(2000000)}},
			{Name: "durationYears", Label: "Program length (years)", Kind: KindSlider, Required: true, Step: 2,
				Default:     float64(2),
				Constraints: Constraints{Min: FloatPtr(1), Max: FloatPtr(6), Step: FloatPtr(1)}},
		},
		Result: []ResultField{
			{Name: "totalCost", Type: ResultNumber},
			{Name: "breakEvenYears", Type: ResultNumber},
			{Name: "tenYearGain", Type: ResultNumber},
			{Name: "verdict", Type: ResultString},
			{Name: "assumptions", Type: ResultArray, Items: &ResultField{Type: ResultString}},
		},
		Sections: []SectionSpec{
			{Category: SectionPrimaryScore, Title: "Break-even (years)", Path: "breakEvenYears"},
			{Category: SectionNarrative, Title: "Verdict", Path: "verdict"},
			{Category: SectionCategorizedList, Title: "Assumptions", Path: "assumptions"},
		},
	}
}

func workAbroadSavings() *ToolSchema {
	return &ToolSchema{
		Slug:        "work-abroad-savings",
		Title:       "Work Abroad Savings Calculator",
		Description: "Projects monthly savings for a job offer in another country.",
		ResultKey:   "data",
		Fields: []Field{
			{Name: "targetCountry", Label: "Destination", Kind: KindSelect, Required: true, Step: 1,
				Constraints: Constraints{Options: []string{
					"usa", "uk", "canada", "germany", "uae", "singapore",
					"australia", "netherlands", "other",
				}}},
			{Name: "role", Label: "Role", Kind: KindShortText, Required: true, Step: 1,
				Constraints: Constraints{MaxChars: 120}},
			{Name: "salaryOffer", Label: "Annual salary offer (USD)", Kind: KindNumber, Required: true, Step: 1,
				Constraints: Constraints{Min: FloatPtr(0), Max: FloatPtr(2000000)}},
			{Name: "rentMonthly", Label: "Expected monthly rent (USD)", Kind: KindNumber, Required: true, Step: 2,
				Constraints: Constraints{Min: FloatPtr(0), Max: FloatPtr(20000)}},
			{Name: "homeSavingsMonthly", Label: "Current monthly savings (USD)", Kind: KindNumber, Step: 2,
				Constraints: Constraints{Min: FloatPtr(0), Max: FloatPtr(100000)}},
		},
		Result: []ResultField{
			{Name: "monthlySavings", Type: ResultNumber},
			{Name: "annualSavings", Type: ResultNumber},
			{Name: "savingsRate", Type: ResultNumber},
			{Name: "costBreakdown", Type: ResultArray, Items: &ResultField{
				Type: ResultObject,
				Fields: []ResultField{
					{Name: "category", Type: ResultString},
					{Name: "amount", Type: ResultNumber},
				},
			}},
			{Name: "notes", Type: ResultArray, Items: &ResultField{Type: ResultString}},
		},
		Sections: []SectionSpec{
			{Category: SectionPrimaryScore, Title: "Savings rate", Path: "savingsRate"},
			{Category: SectionCategorizedList, Title: "Cost breakdown", Path: "costBreakdown"},
			{Category: SectionCategorizedList, Title: "Notes", Path: "notes"},
		},
	}
}

func workLifeBalance() *ToolSchema {
	return &ToolSchema{
		Slug:        "work-life-balance",
		Title:       "Work-Life Balance Assessment",
		Description: "Scores current balance and flags burnout risk factors.",
		ResultKey:   "assessment",
		Fields: []Field{
			{Name: "hoursPerWeek", Label: "Hours worked per week", Kind: KindSlider, Required: true, Step: 1,
				Default:     float64(40),
				Constraints: Constraints{Min: FloatPtr(1), Max: FloatPtr(100), Step: FloatPtr(1)}},
			{Name: "commuteMinutes", Label: "Daily commute (minutes)", Kind: KindNumber, Step: 1,
				Constraints: Constraints{Min: FloatPtr(0), Max: FloatPtr(300)}},
			{Name: "remoteDays", Label: "Remote days per week", Kind: KindSlider, Step: 1,
				Constraints: Constraints{Min: FloatPtr(0), Max: FloatPtr(7), Step: FloatPtr(1)}},
			{Name: "stressLevel", Label: "Stress level", Kind: KindSlider, Required: true, Step: 2,
				Default:     float64(5),
				Constraints: Constraints{Min: FloatPtr(1), Max: FloatPtr(10), Step: FloatPtr(1)}},
			{Name: "flexibleSchedule", Label: "Flexible schedule", Kind: KindBoolean, Step: 2},
		},
		Result: []ResultField{
			{Name: "balanceScore", Type: ResultInteger},
			{Name: "burnoutRisk", Type: ResultString},
			{Name: "strengths", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "riskFactors", Type: ResultArray, Items: &ResultField{Type: ResultString}},
			{Name: "recommendations", Type: ResultArray, Items: &ResultField{Type: ResultString}},
		},
		Sections: []SectionSpec{
			{Category: SectionPrimaryScore, Title: "Balance score", Path: "balanceScore"},
			{Category: SectionNarrative, Title: "Burnout risk", Path: "burnoutRisk"},
			{Category: SectionCategorizedList, Title: "What's working", Path: "strengths"},
			{Category: SectionCategorizedList, Title: "Risk factors", Path: "riskFactors"},
			{Category: SectionRecommendations, Title: "Recommendations", Path: "recommendations"},
		},
	}
}
