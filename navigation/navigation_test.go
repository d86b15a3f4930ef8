package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indivoyage/navigation"
)

func TestGet(t *testing.T) {
	nav := navigation.Get()
	require.NotNil(t, nav)

	assert.Equal(t, "IndiVoyage", nav.Brand.Name)
	assert.Len(t, nav.Header, 3)
	assert.Len(t, nav.Sidebar, 7)
	assert.Len(t, nav.Footer.QuickLinks, 5)
	assert.Equal(t, "support@exploreindia.com", nav.Footer.Email)
	assert.Equal(t, "+91 123 456 7890", nav.Footer.Phone)
}

func TestNavigation_Layout(t *testing.T) {
	nav := navigation.Get()
	require.NotNil(t, nav)

	layout := nav.Layout("/trip-calculator", 2025)

	active := []string{}
	for _, link := range layout.Sidebar {
		if link.Active {
			active = append(active, link.Label)
		}
	}

	assert.Equal(t, []string{"Trip Calculator"}, active)
	assert.True(t, layout.Header[2].Active)
	assert.Equal(t, "© 2025 ExploreIndia. All rights reserved.", layout.Footer.Copyright)

	for _, link := range nav.Sidebar {
		assert.False(t, link.Active, "source navigation must stay untouched")
	}

	none := nav.Layout("/nowhere", 2025)
	for _, link := range none.Sidebar {
		assert.False(t, link.Active)
	}
}

func TestNavigation_Known(t *testing.T) {
	nav := navigation.Get()
	require.NotNil(t, nav)

	assert.True(t, nav.Known("/booking"))
	assert.False(t, nav.Known("/arrange-transport"))
	assert.False(t, nav.Known("/missing"))
}
