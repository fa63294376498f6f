package store

import (
	"context"
	"fmt"
	"time"

	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AdminSeed describes the single admin account created on first start.
// A non-empty PasswordHash is stored as is; otherwise Password is hashed.
type AdminSeed struct {
	Username     string
	Password     string
	PasswordHash string
	BcryptCost   int
}

func ptr[T any](v T) *T { return &v }

var defaultSkills = []models.SkillInput{
	{Name: "Electronics & Circuit Design", Category: "Hardware", Percentage: ptr(90), IconClass: ptr("fas fa-microchip")},
	{Name: "Embedded Systems (C/C++)", Category: "Technical", Percentage: ptr(85), IconClass: ptr("fas fa-code")},
	{Name: "React & Node.js", Category: "Software", Percentage: ptr(80), IconClass: ptr("fab fa-react")},
	{Name: "IoT & Cloud Integration", Category: "Technical", Percentage: ptr(75), IconClass: ptr("fas fa-cloud")},
	{Name: "MongoDB & Database Design", Category: "Software", Percentage: ptr(70), IconClass: ptr("fas fa-database")},
}

var defaultServices = []models.ServiceInput{
	{
		Title:       "Web Development",
		Description: "Full-stack web applications using modern frameworks and databases with responsive design principles.",
		IconClass:   "fas fa-code",
	},
	{
		Title:       "Project Development",
		Description: "Custom embedded systems and IoT solutions from concept to deployment with hardware-software integration.",
		IconClass:   "fas fa-microchip",
	},
	{
		Title:       "Technical Tutoring",
		Description: "Mentoring in electronics, programming, and engineering concepts with hands-on project guidance.",
		IconClass:   "fas fa-chalkboard-teacher",
	},
}

var defaultProjects = []models.ProjectInput{
	{
		Title:        "Wi-Fi Repeater using ESP32",
		Description:  "Advanced Wi-Fi signal amplification system using ESP32 microcontroller with custom firmware for extended range coverage.",
		Category:     "IoT",
		Status:       models.ProjectStatusCompleted,
		ImageURL:     ptr("https://pixabay.com/get/g4e6bab65ae9a03c5a069b4bf958aea72d4462e4e7f382c58aab2627ad46de66fcae631eea0e4a376418e13c1f34124c80b7e85d73b058f0f33a6b19e8fb73021_1280.jpg"),
		GithubURL:    ptr("https://github.com/om-oberoi/wifi-repeater-esp32"),
		Technologies: []string{"ESP32", "C++", "WiFi", "IoT"},
	},
	{
		Title:        "Wearable Oscilloscope Smartwatch",
		Description:  "Innovative wearable device that functions as a portable oscilloscope for real-time signal analysis and debugging.",
		Category:     "Wearable",
		Status:       models.ProjectStatusInProgress,
		ImageURL:     ptr("https://images.unsplash.com/photo-1544117519-31a4b719223d?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=800&h=400"),
		GithubURL:    ptr("https://github.com/om-oberoi/oscilloscope-smartwatch"),
		Technologies: []string{"Arduino", "Display", "Sensors", "PCB Design"},
	},
	{
		Title:        "Smart Career Booster Series",
		Description:  "Comprehensive career development platform with AI-driven recommendations and skill assessment tools.",
		Category:     "Education",
		Status:       models.ProjectStatusCompleted,
		ImageURL:     ptr("https://images.unsplash.com/photo-1552664730-d307ca884978?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=800&h=400"),
		GithubURL:    ptr("https://github.com/om-oberoi/career-booster"),
		LiveURL:      ptr("https://career-booster.example.com"),
		Technologies: []string{"React", "Node.js", "MongoDB", "AI/ML"},
	},
}

// Seed adds the admin user and the default skills, services and projects.
// It does nothing when the store already has a user, so a persistent store
// is only seeded on its first start.
func Seed(ctx context.Context, s Store, admin AdminSeed) error {
	users, err := s.Users().All(ctx)
	if err != nil {
		return fmt.Errorf("failed to read users: %w", err)
	}
	if len(users) > 0 {
		log.Info().Int("users", len(users)).Msg("Store already seeded, skipping default data")
		return nil
	}

	hash := admin.PasswordHash
	if hash == "" {
		cost := admin.BcryptCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), cost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		hash = string(hashed)
	}

	user := models.User{ID: NewID(), Username: admin.Username, PasswordHash: hash}
	if err := s.Users().Insert(ctx, user.ID, user); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	for _, in := range defaultSkills {
		skill := in.NewSkill(NewID())
		if err := s.Skills().Insert(ctx, skill.ID, skill); err != nil {
			return fmt.Errorf("failed to seed skill %q: %w", in.Name, err)
		}
	}

	for _, in := range defaultServices {
		service := in.NewService(NewID())
		if err := s.Services().Insert(ctx, service.ID, service); err != nil {
			return fmt.Errorf("failed to seed service %q: %w", in.Title, err)
		}
	}

	// One timestamp for every project, so newest-first lists keep seed order.
	now := time.Now().UTC()
	for _, in := range defaultProjects {
		project := in.NewProject(NewID(), now)
		if err := s.Projects().Insert(ctx, project.ID, project); err != nil {
			return fmt.Errorf("failed to seed project %q: %w", in.Title, err)
		}
	}

	log.Info().
		Str("admin", admin.Username).
		Int("skills", len(defaultSkills)).
		Int("services", len(defaultServices)).
		Int("projects", len(defaultProjects)).
		Msg("Seeded default portfolio data")
	return nil
}
