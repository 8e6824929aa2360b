package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Profile struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	Email          string         `json:"email" db:"email"`
	FullName       *string        `json:"full_name" db:"full_name"`
	Bio            *string        `json:"bio" db:"bio"`
	Skills         pq.StringArray `json:"skills" db:"skills"`
	WorkExperience *string        `json:"work_experience" db:"work_experience"`
	Education      *string        `json:"education" db:"education"`
	AvatarURL      *string        `json:"avatar_url" db:"avatar_url"`
	ResumeURL      *string        `json:"resume_url" db:"resume_url"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// IsComplete reports whether the profile has a name and at least one skill.
// Incomplete profiles see every project in the feed.
func (p *Profile) IsComplete() bool {
	return p.FullName != nil && strings.TrimSpace(*p.FullName) != "" && len(p.Skills) > 0
}

// OwnerSummary is the slice of a profile joined onto project listings.
type OwnerSummary struct {
	FullName *string `json:"full_name" db:"owner_full_name"`
	Email    string  `json:"email" db:"owner_email"`
}

// ApplicantSummary is the slice of a profile joined onto an owner's view of
// the applications to a project.
type ApplicantSummary struct {
	FullName       *string        `json:"full_name" db:"applicant_full_name"`
	Email          string         `json:"email" db:"applicant_email"`
	Skills         pq.StringArray `json:"skills" db:"applicant_skills"`
	Bio            *string        `json:"bio" db:"applicant_bio"`
	WorkExperience *string        `json:"work_experience" db:"applicant_work_experience"`
	Education      *string        `json:"education" db:"applicant_education"`
}

type UpdateProfileInput struct {
	FullName       *string   `json:"full_name,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	Skills         *[]string `json:"skills,omitempty"`
	WorkExperience *string   `json:"work_experience,omitempty"`
	Education      *string   `json:"education,omitempty"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
}

// NormalizeSkills trims labels, drops blanks and collapses duplicates while
// keeping first-seen order.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
