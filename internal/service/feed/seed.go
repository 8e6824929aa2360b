package feed

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"partnerup/internal/domain"
)

//go:embed seed_projects.yaml
var seedData []byte

type seedOwner struct {
	FullName string `yaml:"full_name"`
	Email    string `yaml:"email"`
}

type seedProject struct {
	Key            string    `yaml:"key"`
	Title          string    `yaml:"title"`
	Description    string    `yaml:"description"`
	RequiredSkills []string  `yaml:"required_skills"`
	Duration       string    `yaml:"duration"`
	TeamSize       string    `yaml:"team_size"`
	Owner          seedOwner `yaml:"owner"`
}

// Seeds holds the illustrative projects and the selectable skill labels.
type Seeds struct {
	Skills   []string
	Projects []domain.FeedItem
}

var (
	defaultSeeds    *Seeds
	defaultSeedsErr error
	seedsOnce       sync.Once
)

// DefaultSeeds parses the embedded seed file once.
func DefaultSeeds() (*Seeds, error) {
	seedsOnce.Do(func() {
		defaultSeeds, defaultSeedsErr = ParseSeeds(seedData)
	})
	return defaultSeeds, defaultSeedsErr
}

func ParseSeeds(data []byte) (*Seeds, error) {
	var file struct {
		Skills   []string      `yaml:"skills"`
		Projects []seedProject `yaml:"projects"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed projects: %w", err)
	}

	seeds := &Seeds{
		Skills:   domain.NormalizeSkills(file.Skills),
		Projects: make([]domain.FeedItem, 0, len(file.Projects)),
	}

	seen := make(map[string]bool, len(file.Projects))
	for _, sp := range file.Projects {
		if sp.Key == "" || sp.Title == "" {
			return nil, fmt.Errorf("seed project %q: key and title are required", sp.Key)
		}
		if seen[sp.Key] {
			return nil, fmt.Errorf("seed project %q: duplicate key", sp.Key)
		}
		seen[sp.Key] = true

		fullName := sp.Owner.FullName
		seeds.Projects = append(seeds.Projects, domain.SeedItem(sp.Key, domain.Project{
			Title:          sp.Title,
			Description:    sp.Description,
			RequiredSkills: domain.NormalizeSkills(sp.RequiredSkills),
			Duration:       sp.Duration,
			TeamSize:       sp.TeamSize,
			Status:         domain.ProjectOpen,
			Owner:          &domain.OwnerSummary{FullName: &fullName, Email: sp.Owner.Email},
		}))
	}

	return seeds, nil
}
