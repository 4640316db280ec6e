// Package catalog holds the static table of Danish administrative-data
// registries known to dandata. The table is parsed once from the embedded
// data file at startup and is read-only afterwards.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category classifies a registry by subject area.
type Category string

const (
	CategoryPopulation Category = "Population"
	CategoryLabor      Category = "Labor Market"
	CategoryEducation  Category = "Education"
	CategoryHealth     Category = "Health"
	CategoryIncome     Category = "Income & Tax"
	CategoryBusiness   Category = "Business"
	CategoryHousing    Category = "Housing"
)

// Categories returns the fixed set of registry categories in display order.
func Categories() []Category {
	return []Category{
		CategoryPopulation,
		CategoryLabor,
		CategoryEducation,
		CategoryHealth,
		CategoryIncome,
		CategoryBusiness,
		CategoryHousing,
	}
}

// Variable describes one documented variable within a registry.
type Variable struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type,omitempty"`
	Period      string `yaml:"period,omitempty"`
}

// Paper is a published study known to use a registry.
type Paper struct {
	Title   string `yaml:"title"`
	Authors string `yaml:"authors"`
	Journal string `yaml:"journal,omitempty"`
	Year    string `yaml:"year,omitempty"`
	URL     string `yaml:"url"`
}

// Registry describes one Danish administrative dataset.
type Registry struct {
	ID               string     `yaml:"id"`
	Code             string     `yaml:"code"`
	Name             string     `yaml:"name"`
	Category         Category   `yaml:"category"`
	Description      string     `yaml:"description"`
	DocumentationURL string     `yaml:"documentation_url"`
	KeyVariables     []Variable `yaml:"key_variables"`
	Papers           []Paper    `yaml:"papers"`
}

//go:embed registries.yaml
var registriesYAML []byte

var registries []Registry

func init() {
	parsed, err := parse(registriesYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded registry table is invalid: %v", err))
	}
	registries = parsed
}

func parse(data []byte) ([]Registry, error) {
	var doc struct {
		Registries []Registry `yaml:"registries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Registries) == 0 {
		return nil, fmt.Errorf("no registries defined")
	}
	for _, r := range doc.Registries {
		if r.ID == "" || r.Code == "" || r.Name == "" {
			return nil, fmt.Errorf("registry %q is missing id, code or name", r.Code)
		}
	}
	return doc.Registries, nil
}

// All returns every registry in catalog order. Callers receive a fresh
// slice header so append cannot disturb the catalog, but the records
// themselves are shared and must not be mutated.
func All() []Registry {
	out := make([]Registry, len(registries))
	copy(out, registries)
	return out
}

// ByID looks up a registry by its catalog identifier.
func ByID(id string) (Registry, bool) {
	for _, r := range registries {
		if r.ID == id {
			return r, true
		}
	}
	return Registry{}, false
}

// ByCode looks up a registry by its short code (case-insensitive).
func ByCode(code string) (Registry, bool) {
	for _, r := range registries {
		if strings.EqualFold(r.Code, code) {
			return r, true
		}
	}
	return Registry{}, false
}

// Filter returns the registries whose name, code or category contains
// the search term, case-insensitively. An empty term matches everything.
func Filter(term string) []Registry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return All()
	}
	var out []Registry
	for _, r := range registries {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Code), term) ||
			strings.Contains(strings.ToLower(string(r.Category)), term) {
			out = append(out, r)
		}
	}
	return out
}
