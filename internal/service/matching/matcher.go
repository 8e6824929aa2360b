// Package matching decides which open projects a viewer can discover.
package matching

import (
	"github.com/google/uuid"

	"partnerup/internal/domain"
)

// VisibleProjects keeps the projects not owned by viewerID whose required
// skills overlap viewerSkills. A viewer without skills sees every project they
// do not own. Input order is preserved.
//
// A project that requires no skills never overlaps a non-empty skill set, so
// only skill-less viewers see it.
func VisibleProjects(projects []domain.Project, viewerID uuid.UUID, viewerSkills []string) []domain.Project {
	skills := skillSet(viewerSkills)

	visible := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.OwnerID == viewerID {
			continue
		}
		if len(skills) == 0 || overlaps(skills, p.RequiredSkills) {
			visible = append(visible, p)
		}
	}
	return visible
}

// IsVisible is VisibleProjects for a single project.
func IsVisible(p domain.Project, viewerID uuid.UUID, viewerSkills []string) bool {
	return len(VisibleProjects([]domain.Project{p}, viewerID, viewerSkills)) == 1
}

func skillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}

func overlaps(set map[string]struct{}, skills []string) bool {
	for _, s := range skills {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}
