package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyID     = errors.New("template id is empty")
	ErrEmptyName   = errors.New("template name is empty")
	ErrDuplicateID = errors.New("duplicate template id")
)

// Template is a selectable ingredient definition.
type Template struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

// Label is the palette text for the template.
func (t Template) Label() string {
	if t.Icon == "" {
		return t.Name
	}
	return t.Icon + " " + t.Name
}

type Catalog struct {
	templates []Template
	byID      map[string]int
}

// New validates templates and returns a catalog preserving their order.
func New(templates []Template) (*Catalog, error) {
	c := &Catalog{
		templates: make([]Template, 0, len(templates)),
		byID:      make(map[string]int, len(templates)),
	}
	for i, t := range templates {
		t.ID = strings.TrimSpace(t.ID)
		t.Name = strings.TrimSpace(t.Name)
		t.Icon = strings.TrimSpace(t.Icon)
		t.Color = strings.TrimSpace(t.Color)
		if t.ID == "" {
			return nil, fmt.Errorf("template %d: %w", i, ErrEmptyID)
		}
		if t.Name == "" {
			return nil, fmt.Errorf("template %q: %w", t.ID, ErrEmptyName)
		}
		if _, exists := c.byID[t.ID]; exists {
			return nil, fmt.Errorf("template %q: %w", t.ID, ErrDuplicateID)
		}
		c.byID[t.ID] = len(c.templates)
		c.templates = append(c.templates, t)
	}
	return c, nil
}

// Default returns the built-in ingredient catalog.
func Default() *Catalog {
	c, err := New(DefaultTemplates())
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in templates invalid: %v", err))
	}
	return c
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.templates)
}

// Templates returns a copy of the templates in catalog order.
func (c *Catalog) Templates() []Template {
	if c == nil {
		return nil
	}
	return append([]Template(nil), c.templates...)
}

func (c *Catalog) Lookup(id string) (Template, bool) {
	if c == nil {
		return Template{}, false
	}
	idx, ok := c.byID[id]
	if !ok {
		return Template{}, false
	}
	return c.templates[idx], true
}
