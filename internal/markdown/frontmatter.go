package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// ProjectFrontMatter is the metadata block expected at the top of a project
// markdown file. Locale-invariant fields (slug, urls, tech) only need to be
// present in the default-locale file; translated files just carry the title.
type ProjectFrontMatter struct {
	Title        string   `yaml:"title"`
	Slug         string   `yaml:"slug"`
	Image        string   `yaml:"image"`
	LiveURL      string   `yaml:"live_url"`
	RepoURL      string   `yaml:"repo_url"`
	Tech         []string `yaml:"tech"`
	DisplayOrder int      `yaml:"display_order"`
	Published    bool     `yaml:"published"`
}

// ParseProject extracts the frontmatter and the markdown body from a project
// source file.
func ParseProject(source []byte) (ProjectFrontMatter, []byte, error) {
	var meta ProjectFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return ProjectFrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}
