package feed

import (
	"sort"
	"strings"

	"partnerup/internal/domain"
)

// Compose narrows items to those whose title or description contains
// searchTerm (case-insensitive) and, unless skillFilter is empty or
// domain.AllSkills, that require exactly skillFilter. Order is preserved.
func Compose(items []domain.FeedItem, searchTerm, skillFilter string) []domain.FeedItem {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	filterBySkill := skillFilter != "" && skillFilter != domain.AllSkills

	out := make([]domain.FeedItem, 0, len(items))
	for _, item := range items {
		p := item.Project()
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if filterBySkill && !p.RequiresSkill(skillFilter) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// UniqueSkills lists every required skill across items, sorted.
func UniqueSkills(items []domain.FeedItem) []string {
	set := make(map[string]struct{})
	for _, item := range items {
		for _, s := range item.Project().RequiredSkills {
			set[s] = struct{}{}
		}
	}

	skills := make([]string, 0, len(set))
	for s := range set {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}
