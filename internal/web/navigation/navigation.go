// Package navigation provides utilities for managing navigation state and breadcrumbs
// in the admin console.
package navigation

import "strings"

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// SectionLink is a sidebar entry pointing at a content section editor.
type SectionLink struct {
	Name string
	URL  string
}

// Context represents the navigation context for a console page.
type Context struct {
	ActivePage  string
	Breadcrumbs []BreadcrumbItem
	PageTitle   string
	Sections    []SectionLink
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activePage string) *Context {
	return &Context{
		PageTitle:   pageTitle,
		ActivePage:  activePage,
		Breadcrumbs: make([]BreadcrumbItem, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// WithSections fills the sidebar with one editor link per content section.
func (c *Context) WithSections(names []string, editorPathPrefix string) *Context {
	prefix := strings.TrimSuffix(editorPathPrefix, "/")

	c.Sections = make([]SectionLink, 0, len(names))
	for _, name := range names {
		c.Sections = append(c.Sections, SectionLink{
			Name: name,
			URL:  prefix + "/" + name,
		})
	}

	return c
}

// IsActive checks if the given page matches the current context.
func (c *Context) IsActive(page string) bool {
	return c.ActivePage == page
}
