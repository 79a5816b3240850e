// Package seed holds the sample job catalog used by the admin reseed
// endpoint. Demo/bootstrap data only.
package seed

import "github.com/fitapply/job-board/internal/core/domain"

// SampleJobs returns a fresh copy of the sample catalog. PostedAt is left
// zero; the catalog service stamps it at reseed time.
func SampleJobs() []*domain.JobPosting {
	jobs := make([]*domain.JobPosting, len(sampleJobs))
	for i := range sampleJobs {
		j := sampleJobs[i]
		j.Requirements = append([]string(nil), sampleJobs[i].Requirements...)
		jobs[i] = &j
	}
	return jobs
}

const stockImage = "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=400"

var sampleJobs = []domain.JobPosting{
	{
		Title:        "Senior Python Developer",
		Company:      "TechCorp Solutions",
		Category:     "Backend",
		Location:     "New York, NY",
		Salary:       "$120,000 - $160,000",
		Description:  "Looking for an experienced Python developer with 5+ years of experience.",
		Requirements: []string{"Python 3.9+", "FastAPI/Django", "PostgreSQL", "Docker", "AWS"},
		Image:        stockImage,
	},
	{
		Title:        "Frontend React Developer",
		Company:      "WebFlow Studios",
		Category:     "Frontend",
		Location:     "San Francisco, CA",
		Salary:       "$110,000 - $150,000",
		Description:  "Join our team to build amazing user interfaces with React and TypeScript.",
		Requirements: []string{"React 18+", "TypeScript", "Tailwind CSS", "Next.js", "Testing"},
		Image:        stockImage,
	},
	{
		Title:        "Full Stack Developer",
		Company:      "CloudBase Inc",
		Category:     "Full Stack",
		Location:     "Remote",
		Salary:       "$100,000 - $140,000",
		Description:  "Build end-to-end solutions with modern web technologies.",
		Requirements: []string{"Node.js", "React", "MongoDB", "Docker", "AWS"},
		Image:        stockImage,
	},
	{
		Title:        "DevOps Engineer",
		Company:      "InfraCloud Systems",
		Category:     "DevOps",
		Location:     "Seattle, WA",
		Salary:       "$130,000 - $170,000",
		Description:  "Manage and optimize our cloud infrastructure using Kubernetes and CI/CD.",
		Requirements: []string{"Kubernetes", "Docker", "AWS/GCP", "Terraform", "Jenkins"},
		Image:        stockImage,
	},
	{
		Title:        "Data Scientist",
		Company:      "Analytics Pro",
		Category:     "Data Science",
		Location:     "Boston, MA",
		Salary:       "$115,000 - $155,000",
		Description:  "Work with cutting-edge ML models and big data technologies.",
		Requirements: []string{"Python", "Machine Learning", "SQL", "Spark", "TensorFlow"},
		Image:        stockImage,
	},
	{
		Title:        "Mobile App Developer (iOS)",
		Company:      "AppMaster Studio",
		Category:     "Mobile",
		Location:     "Los Angeles, CA",
		Salary:       "$100,000 - $140,000",
		Description:  "Develop high-performance iOS applications using Swift.",
		Requirements: []string{"Swift", "iOS SDK", "Xcode", "SwiftUI", "CocoaPods"},
		Image:        stockImage,
	},
	{
		Title:        "Mobile App Developer (Android)",
		Company:      "AppMaster Studio",
		Category:     "Mobile",
		Location:     "Austin, TX",
		Salary:       "$95,000 - $135,000",
		Description:  "Create innovative Android applications using Kotlin.",
		Requirements: []string{"Kotlin", "Android Studio", "Jetpack", "MVVM", "Firebase"},
		Image:        stockImage,
	},
	{
		Title:        "UX/UI Designer",
		Company:      "Design Innovations",
		Category:     "Design",
		Location:     "Remote",
		Salary:       "$80,000 - $120,000",
		Description:  "Design beautiful and intuitive user experiences for web and mobile apps.",
		Requirements: []string{"Figma", "User Research", "Prototyping", "Design Systems", "CSS Basics"},
		Image:        "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=400",
	},
	{
		Title:        "QA Engineer",
		Company:      "QualityAssure Corp",
		Category:     "QA",
		Location:     "Denver, CO",
		Salary:       "$75,000 - $110,000",
		Description:  "Ensure software quality through comprehensive testing strategies.",
		Requirements: []string{"Selenium", "Python", "API Testing", "JIRA", "SQL"},
		Image:        stockImage,
	},
	{
		Title:        "Database Administrator",
		Company:      "DataVault Systems",
		Category:     "Database",
		Location:     "Chicago, IL",
		Salary:       "$105,000 - $145,000",
		Description:  "Manage and optimize large-scale database systems.",
		Requirements: []string{"PostgreSQL", "MongoDB", "Oracle", "Backup/Recovery", "Performance Tuning"},
		Image:        stockImage,
	},
	{
		Title:        "Cloud Architect",
		Company:      "CloudFirst Solutions",
		Category:     "Cloud",
		Location:     "Remote",
		Salary:       "$140,000 - $180,000",
		Description:  "Design scalable cloud solutions for enterprise clients.",
		Requirements: []string{"AWS", "Azure", "GCP", "Architecture Design", "Security"},
		Image:        stockImage,
	},
	{
		Title:        "Cybersecurity Analyst",
		Company:      "SecureNet Inc",
		Category:     "Security",
		Location:     "Arlington, VA",
		Salary:       "$110,000 - $150,000",
		Description:  "Protect systems and data from cyber threats.",
		Requirements: []string{"Network Security", "Penetration Testing", "SIEM", "Compliance", "Python"},
		Image:        stockImage,
	},
	{
		Title:        "Machine Learning Engineer",
		Company:      "AIVision Labs",
		Category:     "AI/ML",
		Location:     "San Jose, CA",
		Salary:       "$125,000 - $165,000",
		Description:  "Build and deploy ML models for real-world applications.",
		Requirements: []string{"Python", "TensorFlow", "PyTorch", "Deep Learning", "SQL"},
		Image:        stockImage,
	},
	{
		Title:        "Technical Project Manager",
		Company:      "ProjectFlow Inc",
		Category:     "Management",
		Location:     "New York, NY",
		Salary:       "$95,000 - $135,000",
		Description:  "Lead technical teams and deliver projects on time.",
		Requirements: []string{"Agile/Scrum", "Leadership", "JIRA", "Communication", "Technical Knowledge"},
		Image:        stockImage,
	},
	{
		Title:        "Solutions Architect",
		Company:      "EnterpriseTech Solutions",
		Category:     "Architecture",
		Location:     "Boston, MA",
		Salary:       "$130,000 - $170,000",
		Description:  "Design comprehensive solutions for enterprise customers.",
		Requirements: []string{"System Design", "Cloud", "Microservices", "Communication", "Business Acumen"},
		Image:        stockImage,
	},
	{
		Title:        "API Developer",
		Company:      "APIHub Services",
		Category:     "Backend",
		Location:     "Remote",
		Salary:       "$100,000 - $140,000",
		Description:  "Design and develop RESTful and GraphQL APIs.",
		Requirements: []string{"REST APIs", "GraphQL", "Node.js/Python", "MongoDB", "Git"},
		Image:        stockImage,
	},
	{
		Title:        "Frontend Lead",
		Company:      "UI Excellence",
		Category:     "Frontend",
		Location:     "San Francisco, CA",
		Salary:       "$120,000 - $160,000",
		Description:  "Lead frontend team and set technical direction.",
		Requirements: []string{"React", "Web Performance", "Leadership", "TypeScript", "CSS Architecture"},
		Image:        stockImage,
	},
	{
		Title:        "Backend Architect",
		Company:      "BackendMasters",
		Category:     "Backend",
		Location:     "Seattle, WA",
		Salary:       "$135,000 - $175,000",
		Description:  "Architect scalable backend systems and microservices.",
		Requirements: []string{"Microservices", "System Design", "Python/Java", "Redis", "Kafka"},
		Image:        stockImage,
	},
}
