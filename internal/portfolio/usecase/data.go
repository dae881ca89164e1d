package usecase

import "github.com/archsol/portfolio-api/internal/portfolio/entity"

var stats = entity.Stats{
	Projects:        "26+",
	Technologies:    "50+",
	Industries:      "10+",
	ExperienceYears: "15+",
}

var skillCategories = []entity.SkillCategory{
	{
		Title:  "AI & Emerging Technologies",
		Skills: []string{"Gen AI Architecture", "Agentic AI Systems", "LLM Integration", "AI-Driven Automation"},
		Level:  "Expert",
	},
	{
		Title:  "Enterprise Architecture",
		Skills: []string{"Solution Design", "System Integration", "Digital Transformation", "Architecture Governance"},
		Level:  "Expert",
	},
	{
		Title:  "Cloud & Modern Technology",
		Skills: []string{"AWS", "Azure", "GCP", "Microservices", "API-First", "Serverless", "Azure OpenAI", "AWS Bedrock"},
		Level:  "Expert",
	},
}

var projects = entity.ProjectPortfolio{
	Featured: []entity.Project{
		{
			ID:          "gen-ai-transformation",
			Title:       "Enterprise Gen AI Transformation",
			Category:    "AI & Digital Transformation",
			Client:      "Fortune 500 Financial Services",
			Duration:    "18 months",
			BudgetRange: "£2M - £5M",
			Description: "Led comprehensive Gen AI strategy and implementation",
			KeyOutcomes: []string{
				"40% reduction in manual processes",
				"£3.2M annual cost savings",
				"95% user adoption rate",
			},
			Technologies: []string{"Azure OpenAI", "LangChain", "Kubernetes", "Python", "React"},
			Highlight:    true,
		},
		{
			ID:          "cloud-migration-strategy",
			Title:       "Multi-Cloud Migration & Modernization",
			Category:    "Cloud Transformation",
			Client:      "Global Manufacturing Company",
			Duration:    "24 months",
			BudgetRange: "£5M - £10M",
			Description: "Architected and executed large-scale cloud transformation",
			KeyOutcomes: []string{
				"60% infrastructure cost reduction",
				"99.9% uptime achievement",
				"50% faster deployment cycles",
			},
			Technologies: []string{"AWS", "Azure", "Kubernetes", "Terraform", "GitLab CI/CD"},
			Highlight:    true,
		},
	},
	Categories: []string{
		"AI & Digital Transformation",
		"Cloud Transformation",
		"Identity & Access Management",
		"API & Integration",
		"Security Architecture",
	},
	Total:       26,
	SuccessRate: "98%",
}
