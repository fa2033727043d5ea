package seed

import (
	"math/rand"
	"strings"
)

const (
	componentPlaceholder = "{component}"
	featurePlaceholder   = "{feature}"
)

var defaultTemplates = []string{
	"Fix bug in {component}",
	"Add {feature} functionality",
	"Update {component}",
	"Refactor {component} code",
	"Improve {feature} performance",
	"Remove deprecated {component}",
	"Add tests for {feature}",
	"Update documentation for {component}",
	"Fix typo in {component}",
	"Optimize {feature}",
	"Clean up {component}",
	"Enhance {feature}",
	"Fix issue with {component}",
	"Implement {feature}",
	"Resolve merge conflicts",
	"Update dependencies",
	"Add error handling",
	"Improve logging",
	"Fix security issue",
	"Add configuration options",
}

var defaultComponents = []string{
	"auth module", "database", "API", "UI components", "user service",
	"payment processing", "notification system", "cache layer", "middleware",
	"routing", "validation", "error handling", "configuration", "models",
}

var defaultFeatures = []string{
	"user authentication", "data validation", "caching", "API endpoints",
	"search functionality", "filtering", "pagination", "export feature",
	"notifications", "analytics", "reporting", "integration",
}

// Tables holds the commit message vocabulary. Each template contains at
// most one placeholder, either {component} or {feature}, filled from the
// matching word list.
type Tables struct {
	Templates  []string
	Components []string
	Features   []string
}

// DefaultTables returns a copy of the built-in message vocabulary.
func DefaultTables() Tables {
	return Tables{
		Templates:  append([]string(nil), defaultTemplates...),
		Components: append([]string(nil), defaultComponents...),
		Features:   append([]string(nil), defaultFeatures...),
	}
}

// Generate picks a template uniformly at random and fills its placeholder,
// if any, from the matching word list.
func (t Tables) Generate(rng *rand.Rand) string {
	template := t.Templates[rng.Intn(len(t.Templates))]

	switch {
	case strings.Contains(template, componentPlaceholder):
		word := t.Components[rng.Intn(len(t.Components))]
		return strings.ReplaceAll(template, componentPlaceholder, word)
	case strings.Contains(template, featurePlaceholder):
		word := t.Features[rng.Intn(len(t.Features))]
		return strings.ReplaceAll(template, featurePlaceholder, word)
	default:
		return template
	}
}
