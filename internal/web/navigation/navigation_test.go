package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Dashboard", "dashboard")

	assert.Equal(t, "Dashboard", ctx.PageTitle)
	assert.Equal(t, "dashboard", ctx.ActivePage)
	assert.NotNil(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Sections)
}

func TestContext_AddBreadcrumb(t *testing.T) {
	ctx := NewContext("Dashboard", "dashboard")

	// Add first breadcrumb
	ctx.AddBreadcrumb("Home", "/", false)
	assert.Len(t, ctx.Breadcrumbs, 1)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "/", ctx.Breadcrumbs[0].URL)
	assert.False(t, ctx.Breadcrumbs[0].Active)

	// Add active breadcrumb
	ctx.AddBreadcrumb("Dashboard", "/dashboard", true)
	assert.Len(t, ctx.Breadcrumbs, 2)
	assert.True(t, ctx.Breadcrumbs[1].Active)
}

func TestContext_AddBreadcrumb_Chaining(t *testing.T) {
	ctx := NewContext("Edit hero", "sections").
		AddBreadcrumb("Home", "/", false).
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("hero", "/admin/sections/hero", true)

	assert.Len(t, ctx.Breadcrumbs, 3)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "Dashboard", ctx.Breadcrumbs[1].Title)
	assert.Equal(t, "hero", ctx.Breadcrumbs[2].Title)
	assert.True(t, ctx.Breadcrumbs[2].Active)
}

func TestContext_WithSections(t *testing.T) {
	ctx := NewContext("Dashboard", "dashboard").
		WithSections([]string{"hero", "about"}, "/admin/sections/")

	assert.Len(t, ctx.Sections, 2)
	assert.Equal(t, "hero", ctx.Sections[0].Name)
	assert.Equal(t, "/admin/sections/hero", ctx.Sections[0].URL)
	assert.Equal(t, "/admin/sections/about", ctx.Sections[1].URL)
}

func TestContext_IsActive(t *testing.T) {
	ctx := NewContext("Dashboard", "dashboard")

	assert.True(t, ctx.IsActive("dashboard"))
	assert.False(t, ctx.IsActive("sections"))
}
