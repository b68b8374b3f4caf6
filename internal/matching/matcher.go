// Package matching computes the fit score between a candidate's skills
// and a job offer's requirements.
package matching

import (
	"math"
	"strings"
)

// Score returns the percentage of requirements covered by the given
// skills, as an integer in [0,100].
//
// Matching is case-insensitive and tolerant of phrasing differences:
// a requirement counts as covered when it contains a skill or a skill
// contains it ("java" covers "Java 17"). An offer without requirements
// scores 0 rather than rewarding an unverifiable perfect match.
// Duplicate requirements stay in the denominator and are matched
// independently.
func Score(skills, requirements []string) int {
	if len(requirements) == 0 {
		return 0
	}

	normalizedSkills := normalize(skills)

	matched := 0
	for _, requirement := range requirements {
		req := strings.ToLower(strings.TrimSpace(requirement))
		for _, skill := range normalizedSkills {
			if strings.Contains(skill, req) || strings.Contains(req, skill) {
				matched++
				break
			}
		}
	}

	return int(math.Round(float64(matched) / float64(len(requirements)) * 100))
}

func normalize(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.ToLower(strings.TrimSpace(item)))
	}
	return out
}
