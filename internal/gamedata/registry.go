package gamedata

import (
	"errors"
	"fmt"
)

// DefaultThemeID names the theme used when none is configured.
const DefaultThemeID = "classic"

// ThemeRegistry holds loaded theme definitions and provides lookup utilities.
type ThemeRegistry struct {
	themes map[string]*ThemeDef
	all    []ThemeDef
}

// NewThemeRegistry creates a registry from loaded theme definitions.
func NewThemeRegistry(themes []ThemeDef) *ThemeRegistry {
	registry := &ThemeRegistry{
		themes: make(map[string]*ThemeDef),
		all:    themes,
	}
	for i := range themes {
		registry.themes[themes[i].ID] = &themes[i]
	}
	return registry
}

// LoadThemeRegistry loads and creates a registry from the embedded themes.json.
func LoadThemeRegistry() (*ThemeRegistry, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewThemeRegistry(themes), nil
}

// MustLoadThemeRegistry loads a registry, panicking on error.
func MustLoadThemeRegistry() *ThemeRegistry {
	registry, err := LoadThemeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the theme with the given ID, or nil if not found.
func (r *ThemeRegistry) GetByID(id string) *ThemeDef {
	return r.themes[id]
}

// Select returns the theme with the given ID. An empty ID selects the
// default theme.
func (r *ThemeRegistry) Select(id string) (*ThemeDef, error) {
	if id == "" {
		id = DefaultThemeID
	}
	theme := r.themes[id]
	if theme == nil {
		return nil, fmt.Errorf("unknown theme %q (available: %v)", id, r.IDs())
	}
	return theme, nil
}

// IDs returns the theme IDs in file order.
func (r *ThemeRegistry) IDs() []string {
	ids := make([]string, len(r.all))
	for i := range r.all {
		ids[i] = r.all[i].ID
	}
	return ids
}

// All returns all theme definitions.
func (r *ThemeRegistry) All() []ThemeDef {
	return r.all
}

// Count returns the number of themes in the registry.
func (r *ThemeRegistry) Count() int {
	return len(r.all)
}
