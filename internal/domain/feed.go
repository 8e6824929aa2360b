package domain

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// AllSkills is the filter value that disables the skill filter.
const AllSkills = "all-skills"

// SeedIDPrefix marks the synthetic identifiers handed out for sample projects.
const SeedIDPrefix = "seed-"

func IsSeedID(id string) bool {
	return strings.HasPrefix(id, SeedIDPrefix)
}

type FeedItemKind string

const (
	FeedItemProject FeedItemKind = "project"
	FeedItemSeed    FeedItemKind = "seed"
)

// FeedItem is either a persisted registry project or an illustrative seed
// project. Only persisted items expose an ID usable by mutating operations.
type FeedItem struct {
	kind    FeedItemKind
	seedKey string
	project Project
}

func RegistryItem(p Project) FeedItem {
	return FeedItem{kind: FeedItemProject, project: p}
}

func SeedItem(key string, p Project) FeedItem {
	p.ID = uuid.Nil
	p.OwnerID = uuid.Nil
	return FeedItem{kind: FeedItemSeed, seedKey: key, project: p}
}

func (i FeedItem) IsSeed() bool { return i.kind == FeedItemSeed }

// Project returns the project data for display, whatever the kind.
func (i FeedItem) Project() Project { return i.project }

// DisplayID is the identifier clients see: the project UUID or seed-<key>.
func (i FeedItem) DisplayID() string {
	if i.IsSeed() {
		return SeedIDPrefix + i.seedKey
	}
	return i.project.ID.String()
}

func (i FeedItem) MarshalJSON() ([]byte, error) {
	type projectJSON Project
	return json.Marshal(struct {
		projectJSON
		ID     string `json:"id"`
		IsSeed bool   `json:"is_seed"`
	}{
		projectJSON: projectJSON(i.project),
		ID:          i.DisplayID(),
		IsSeed:      i.IsSeed(),
	})
}

type FeedQuery struct {
	Search string `query:"q"`
	Skill  string `query:"skill"`
}

type Feed struct {
	Items      []FeedItem `json:"items"`
	Skills     []string   `json:"skills"`
	IsFallback bool       `json:"is_fallback"`
}
