// Package profile holds the portfolio content: who the author is, what they
// built, and where to reach them.
package profile

import "net/url"

// ProjectTab selects which of the two project lists is displayed. The set is
// fixed; there is no third tab.
type ProjectTab int

const (
	TabFeatured ProjectTab = iota
	TabOpenSource
)

type Profile struct {
	About        About
	Projects     Projects
	Certificates []Certificate
	Skills       []SkillGroup
	Experience   []Experience
	Education    []Education
	Contact      Contact
}

// About is the biography section. Body is markdown.
type About struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Resume  string `yaml:"resume"`
	Body    string `yaml:"-"`
}

type Projects struct {
	Featured   []Project `yaml:"featured"`
	OpenSource []Project `yaml:"opensource"`
}

// List returns the project list for the given tab key.
func (p Projects) List(tab ProjectTab) []Project {
	if tab == TabOpenSource {
		return p.OpenSource
	}

	return p.Featured
}

type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url"`
	Tech        []string `yaml:"tech"`
}

type Certificate struct {
	Name   string `yaml:"name"`
	Issuer string `yaml:"issuer"`
	Date   string `yaml:"date"`
	File   string `yaml:"file"`
}

type SkillGroup struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

type Experience struct {
	Role    string   `yaml:"role"`
	Company string   `yaml:"company"`
	Start   string   `yaml:"start"`
	End     string   `yaml:"end"`
	Notes   []string `yaml:"notes"`
}

type Education struct {
	Degree string `yaml:"degree"`
	School string `yaml:"school"`
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
	Note   string `yaml:"note"`
}

type Contact struct {
	Email    string `yaml:"email"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
}

// AssetURL joins a relative asset path (resume, certificate file) onto the
// deployed site base URL. Absolute URLs pass through untouched.
func AssetURL(baseURL string, asset string) string {
	if asset == "" {
		return ""
	}

	if parsed, err := url.Parse(asset); err == nil && parsed.IsAbs() {
		return asset
	}

	joined, errJoin := url.JoinPath(baseURL, asset)
	if errJoin != nil {
		return asset
	}

	return joined
}
