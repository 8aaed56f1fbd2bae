package content

import "github.com/deepmindconcepts/coaching-platform/internal/core/domain"

var blogPosts = []domain.BlogPost{
	{
		ID:            1,
		Title:         "5 Essential Skills for Career Advancement in 2025",
		Excerpt:       "Discover the top skills that employers are looking for and how to develop them effectively.",
		Content:       "In today's rapidly evolving job market, staying ahead requires continuous skill development. Digital literacy and AI collaboration, emotional intelligence, adaptability, data analysis and remote communication are the five skills that will set you apart in 2025. We help professionals develop these critical skills through personalized coaching and targeted development programs.",
		Author:        "Sarah Johnson",
		AuthorRole:    "Senior Career Coach",
		PublishedDate: "2025-01-15",
		ReadTime:      "5 min read",
		Category:      "Career Development",
		Image:         "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?auto=format&fit=crop&w=1471&h=980&q=80",
		Likes:         45,
		Shares:        8,
	},
	{
		ID:            2,
		Title:         "The Art of Effective Leadership in Remote Teams",
		Excerpt:       "Learn how to inspire and guide your team to success in the digital age.",
		Content:       "Leading remote teams requires a different approach than traditional in-person management. Build trust through transparency, focus on outcomes instead of hours, create virtual water cooler moments, and invest in the right collaboration tools. Our executive coaching programs are designed to help leaders thrive in any environment.",
		Author:        "Michael Chen",
		AuthorRole:    "Executive Leadership Coach",
		PublishedDate: "2025-01-12",
		ReadTime:      "7 min read",
		Category:      "Leadership",
		Image:         "https://images.unsplash.com/photo-1557804506-669a67965ba0?auto=format&fit=crop&w=1474&h=980&q=80",
		Likes:         67,
		Shares:        15,
	},
	{
		ID:            3,
		Title:         "Interview Preparation: From Nervous to Confident",
		Excerpt:       "Master the interview process with proven strategies and techniques.",
		Content:       "Job interviews can be nerve-wracking, but with the right preparation you can walk into any interview with confidence. Research the company thoroughly, prepare STAR stories covering different competencies, master the art of asking questions, mind your body language and virtual presence, and follow up within 24 hours.",
		Author:        "Rachel Williams",
		AuthorRole:    "Interview Specialist",
		PublishedDate: "2025-01-10",
		ReadTime:      "6 min read",
		Category:      "Interview Prep",
		Image:         "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&w=1488&h=980&q=80",
		Likes:         89,
		Shares:        22,
	},
	{
		ID:            4,
		Title:         "Building Your Personal Brand in the Digital Age",
		Excerpt:       "Stand out from the crowd by developing a strong professional presence online.",
		Content:       "Your personal brand is your professional reputation and how others perceive your expertise, values and personality. Define your unique value proposition, optimize your LinkedIn profile, create valuable content, network authentically and monitor your online presence. Our branding workshops provide personalized strategies for professional success.",
		Author:        "David Rodriguez",
		AuthorRole:    "Personal Branding Expert",
		PublishedDate: "2025-01-08",
		ReadTime:      "8 min read",
		Category:      "Personal Branding",
		Image:         "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?auto=format&fit=crop&w=1526&h=980&q=80",
		Likes:         76,
		Shares:        31,
	},
	{
		ID:            5,
		Title:         "Salary Negotiation: Getting What You're Worth",
		Excerpt:       "Navigate salary discussions with confidence and secure the compensation you deserve.",
		Content:       "Salary negotiation is a crucial skill that can significantly impact your career earnings. Research market rates, document your value with quantified achievements, consider the total package beyond base salary, practice your pitch, and negotiate after the offer but before acceptance. Our career coaches specialize in helping professionals maximize their earning potential.",
		Author:        "Lisa Thompson",
		AuthorRole:    "Compensation Specialist",
		PublishedDate: "2025-01-05",
		ReadTime:      "9 min read",
		Category:      "Compensation",
		Image:         "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?auto=format&fit=crop&w=1470&h=980&q=80",
		Likes:         92,
		Shares:        41,
	},
}

var jobPostings = []domain.JobPosting{
	{
		ID:          1,
		Title:       "Senior Software Engineer",
		Company:     "TechFlow Solutions",
		Location:    "San Francisco, CA",
		Type:        "Full-time",
		Salary:      "$140,000 - $180,000",
		Description: "Join our innovative team building next-generation cloud solutions. We're looking for a senior engineer with 5+ years of experience in full-stack development.",
		Requirements: []string{
			"5+ years of software development experience",
			"Proficiency in React, Node.js, and Python",
			"Experience with cloud platforms (AWS, Azure, or GCP)",
			"Strong problem-solving and communication skills",
		},
		Benefits: []string{
			"Competitive salary and equity package",
			"Comprehensive health benefits",
			"Flexible work arrangements",
			"Professional development budget",
		},
		PostedDate:          "2025-01-14",
		ApplicationDeadline: "2025-02-14",
		Remote:              true,
		ExperienceLevel:     "Senior",
		Department:          "Engineering",
	},
	{
		ID:          2,
		Title:       "Marketing Manager",
		Company:     "Growth Dynamics",
		Location:    "New York, NY",
		Type:        "Full-time",
		Salary:      "$85,000 - $110,000",
		Description: "Lead our marketing initiatives and drive brand awareness in the competitive fintech space. Perfect for a creative strategist with a data-driven mindset.",
		Requirements: []string{
			"3+ years of marketing experience",
			"Experience with digital marketing platforms",
			"Strong analytical and creative skills",
			"Bachelor's degree in Marketing or related field",
		},
		Benefits: []string{
			"Competitive salary",
			"Health and dental insurance",
			"401(k) matching",
			"Unlimited PTO policy",
		},
		PostedDate:          "2025-01-12",
		ApplicationDeadline: "2025-02-10",
		Remote:              false,
		ExperienceLevel:     "Mid-level",
		Department:          "Marketing",
	},
	{
		ID:          3,
		Title:       "Data Scientist",
		Company:     "Analytics Pro",
		Location:    "Austin, TX",
		Type:        "Full-time",
		Salary:      "$120,000 - $150,000",
		Description: "Transform complex data into actionable insights. Join our team of data scientists working on cutting-edge machine learning projects.",
		Requirements: []string{
			"Master's degree in Statistics, Mathematics, or Computer Science",
			"3+ years of experience in data science",
			"Proficiency in Python, R, and SQL",
			"Experience with machine learning frameworks",
		},
		Benefits: []string{
			"Competitive compensation package",
			"Stock options",
			"Flexible work schedule",
			"Learning and development opportunities",
		},
		PostedDate:          "2025-01-11",
		ApplicationDeadline: "2025-02-08",
		Remote:              true,
		ExperienceLevel:     "Mid-level",
		Department:          "Data & Analytics",
	},
	{
		ID:          4,
		Title:       "UX Designer",
		Company:     "Design Studios Inc",
		Location:    "Seattle, WA",
		Type:        "Contract",
		Salary:      "$70 - $90 per hour",
		Description: "Create exceptional user experiences for our clients' digital products. We're seeking a talented UX designer with a portfolio showcasing innovative design solutions.",
		Requirements: []string{
			"4+ years of UX design experience",
			"Proficiency in Figma, Sketch, and Adobe Creative Suite",
			"Strong portfolio demonstrating UX process",
			"Experience with user research and testing",
		},
		Benefits: []string{
			"Competitive hourly rate",
			"Flexible schedule",
			"Remote work options",
			"Access to design tools and resources",
		},
		PostedDate:          "2025-01-09",
		ApplicationDeadline: "2025-02-05",
		Remote:              true,
		ExperienceLevel:     "Senior",
		Department:          "Design",
	},
	{
		ID:          5,
		Title:       "Product Manager",
		Company:     "Innovation Labs",
		Location:    "Boston, MA",
		Type:        "Full-time",
		Salary:      "$130,000 - $160,000",
		Description: "Drive product strategy and execution for our suite of SaaS products. Lead cross-functional teams to deliver solutions that delight customers.",
		Requirements: []string{
			"5+ years of product management experience",
			"Experience with SaaS products",
			"Strong analytical and leadership skills",
			"MBA or equivalent experience preferred",
		},
		Benefits: []string{
			"Competitive salary and bonus",
			"Equity participation",
			"Comprehensive benefits package",
			"Professional development opportunities",
		},
		PostedDate:          "2025-01-07",
		ApplicationDeadline: "2025-02-03",
		Remote:              false,
		ExperienceLevel:     "Senior",
		Department:          "Product",
	},
}

var coachingServices = []domain.CoachingService{
	{
		ID:          1,
		Title:       "Career Transition Coaching",
		Description: "Navigate career changes with confidence and clarity",
		Duration:    "60 minutes",
		Price:       "$150",
		Features: []string{
			"One-on-one consultation",
			"Career assessment and planning",
			"Industry transition strategies",
			"Personal action plan",
		},
	},
	{
		ID:          2,
		Title:       "Interview Preparation",
		Description: "Master the interview process and land your dream job",
		Duration:    "90 minutes",
		Price:       "$200",
		Features: []string{
			"Mock interview sessions",
			"Personalized feedback",
			"STAR method training",
			"Confidence building techniques",
		},
	},
	{
		ID:          3,
		Title:       "CV/Resume Review",
		Description: "Professional resume optimization and enhancement",
		Duration:    "45 minutes",
		Price:       "$100",
		Features: []string{
			"Comprehensive resume review",
			"ATS optimization",
			"Content and formatting improvements",
			"Industry-specific recommendations",
		},
	},
	{
		ID:          4,
		Title:       "Leadership Development",
		Description: "Develop essential leadership skills for career advancement",
		Duration:    "75 minutes",
		Price:       "$175",
		Features: []string{
			"Leadership assessment",
			"Communication skills development",
			"Team management strategies",
			"Executive presence coaching",
		},
	},
}

var coaches = []domain.Coach{
	{
		ID:             1,
		Name:           "Sarah Johnson",
		Title:          "Senior Career Coach",
		Specialization: "Career Transitions",
		Experience:     "8 years",
		Rating:         4.9,
		ReviewCount:    156,
		Image:          "https://images.unsplash.com/photo-1494790108755-2616b612b786?auto=format&fit=crop&w=387&h=387&q=80",
		Bio:            "Sarah specializes in helping professionals navigate career transitions and find their ideal career path.",
		Availability:   []string{"Monday", "Wednesday", "Friday"},
	},
	{
		ID:             2,
		Name:           "Michael Chen",
		Title:          "Executive Leadership Coach",
		Specialization: "Leadership Development",
		Experience:     "12 years",
		Rating:         4.8,
		ReviewCount:    203,
		Image:          "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=387&h=387&q=80",
		Bio:            "Michael helps executives and senior managers develop their leadership skills and executive presence.",
		Availability:   []string{"Tuesday", "Thursday", "Saturday"},
	},
	{
		ID:             3,
		Name:           "Rachel Williams",
		Title:          "Interview Specialist",
		Specialization: "Interview Preparation",
		Experience:     "6 years",
		Rating:         4.9,
		ReviewCount:    134,
		Image:          "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&w=387&h=387&q=80",
		Bio:            "Rachel has helped hundreds of professionals ace their interviews and secure their dream positions.",
		Availability:   []string{"Monday", "Tuesday", "Wednesday", "Thursday"},
	},
}

var testimonials = []domain.Testimonial{
	{
		ID:      1,
		Name:    "Jennifer Martinez",
		Role:    "Software Engineer at Google",
		Content: "DeepMind Concepts helped me transition from academia to tech. Their career coaching was instrumental in landing my dream job at Google.",
		Rating:  5,
		Image:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=387&h=387&q=80",
	},
	{
		ID:      2,
		Name:    "Robert Kim",
		Role:    "Marketing Director at Startup",
		Content: "The interview preparation coaching was incredible. I went from being nervous to confident, and it showed in my final round interviews.",
		Rating:  5,
		Image:   "https://images.unsplash.com/photo-1519244703995-f4e0f30006d5?auto=format&fit=crop&w=387&h=387&q=80",
	},
	{
		ID:      3,
		Name:    "Amanda Foster",
		Role:    "Product Manager at Microsoft",
		Content: "The leadership development program transformed my management style. I've seen significant improvements in team performance and job satisfaction.",
		Rating:  5,
		Image:   "https://images.unsplash.com/photo-1534528741775-53994a69daeb?auto=format&fit=crop&w=987&h=987&q=80",
	},
}
