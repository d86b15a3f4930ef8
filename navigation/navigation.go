package navigation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed navigation.json
var navigationData []byte

// Link is a navigation entry. Placeholder links point at pages the site does not have yet.
type Link struct {
	Label       string `json:"label"`
	Href        string `json:"href"`
	Placeholder bool   `json:"placeholder,omitempty"`
	Active      bool   `json:"active,omitempty"`
}

type Brand struct {
	Name        string `json:"name"`
	HomeLink    string `json:"homeLink"`
	ProfileLink string `json:"profileLink"`
}

type Footer struct {
	Title      string `json:"title"`
	About      string `json:"about"`
	QuickLinks []Link `json:"quickLinks"`
	Social     []Link `json:"social"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Tagline    string `json:"tagline"`
	Copyright  string `json:"copyright,omitempty"`
}

type Navigation struct {
	Brand   Brand  `json:"brand"`
	Header  []Link `json:"header"`
	Sidebar []Link `json:"sidebar"`
	Footer  Footer `json:"footer"`
}

// Layout returns a copy of the chrome with the entries matching path marked active.
func (n *Navigation) Layout(path string, year int) Navigation {
	layout := Navigation{
		Brand:   n.Brand,
		Header:  markActive(n.Header, path),
		Sidebar: markActive(n.Sidebar, path),
		Footer:  n.Footer,
	}

	layout.Footer.QuickLinks = slices.Clone(n.Footer.QuickLinks)
	layout.Footer.Social = slices.Clone(n.Footer.Social)
	layout.Footer.Copyright = fmt.Sprintf("© %d %s. All rights reserved.", year, n.Footer.Title)

	return layout
}

func markActive(links []Link, path string) []Link {
	out := slices.Clone(links)

	for i := range out {
		out[i].Active = out[i].Href == path
	}

	return out
}

// Known reports whether path is a real page in the sidebar.
func (n *Navigation) Known(path string) bool {
	return slices.ContainsFunc(n.Sidebar, func(link Link) bool {
		return link.Href == path && !link.Placeholder
	})
}

func Get() *Navigation {
	var navigation Navigation

	err := json.Unmarshal(navigationData, &navigation)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded navigation")

		return nil
	}

	log.Info().Int("sidebar", len(navigation.Sidebar)).Msg("Successfully loaded embedded navigation")

	return &navigation
}
