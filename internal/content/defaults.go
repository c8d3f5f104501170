package content

import (
	_ "embed"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"brightbooks/internal/domain"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults is the static content served when the content tables are missing
type Defaults struct {
	Solutions []domain.Solution `yaml:"solutions"`
	Insights  []domain.Insight  `yaml:"insights"`
	Templates []domain.Template `yaml:"templates"`
	Policies  []domain.Policy   `yaml:"policies"`
}

// LoadDefaults parses the embedded default content
func LoadDefaults() (*Defaults, error) {
	return ParseDefaults(defaultsYAML)
}

// ParseDefaults parses default content from YAML
func ParseDefaults(data []byte) (*Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse default content: %w", err)
	}
	return &d, nil
}

// PublishedSolutions returns published solutions by sort order, then title
func (d *Defaults) PublishedSolutions() []domain.Solution {
	out := make([]domain.Solution, 0, len(d.Solutions))
	for _, s := range d.Solutions {
		if s.Published {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// PublishedInsights returns published insights, newest first. limit <= 0
// means no limit.
func (d *Defaults) PublishedInsights(limit int) []domain.Insight {
	out := make([]domain.Insight, 0, len(d.Insights))
	for _, in := range d.Insights {
		if in.Published {
			out = append(out, in)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return publishedTime(out[i]).After(publishedTime(out[j]))
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// PublishedTemplates returns published templates by sort order
func (d *Defaults) PublishedTemplates() []domain.Template {
	out := make([]domain.Template, 0, len(d.Templates))
	for _, t := range d.Templates {
		if t.Published {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// PublishedPolicies returns published policies
func (d *Defaults) PublishedPolicies() []domain.Policy {
	out := make([]domain.Policy, 0, len(d.Policies))
	for _, p := range d.Policies {
		if p.Published {
			out = append(out, p)
		}
	}
	return out
}

func publishedTime(in domain.Insight) (t time.Time) {
	if in.PublishedAt != nil {
		t = *in.PublishedAt
	}
	return t
}
