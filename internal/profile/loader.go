package profile

import (
	"bytes"
	"embed"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/adrg/frontmatter"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed defaults
	defaultContent embed.FS

	ErrProfileRead = errors.New("failed to read profile content")
)

const (
	fileAbout        = "about.md"
	fileProjects     = "projects.yaml"
	fileCertificates = "certificates.yaml"
	fileSkills       = "skills.yaml"
	fileExperience   = "experience.yaml"
	fileEducation    = "education.yaml"
	fileContact      = "contact.yaml"
)

// Load reads the portfolio content from dir. An empty dir loads the embedded
// default content, so the app always has something to show.
func Load(dir string) (Profile, error) {
	if dir == "" {
		defaults, errSub := fs.Sub(defaultContent, "defaults")
		if errSub != nil {
			return Profile{}, errors.Join(errSub, ErrProfileRead)
		}

		return loadFS(defaults)
	}

	return loadFS(os.DirFS(dir))
}

// loadFS reads all section files concurrently. Every file must exist; a
// partial profile would render a page with silently missing sections.
func loadFS(fsys fs.FS) (Profile, error) {
	var (
		profile Profile
		mu      sync.Mutex
		group   errgroup.Group
	)

	group.Go(func() error {
		about, err := loadAbout(fsys)
		if err != nil {
			return err
		}
		mu.Lock()
		profile.About = about
		mu.Unlock()

		return nil
	})

	group.Go(decodeInto(fsys, fileProjects, &mu, &profile.Projects))
	group.Go(decodeInto(fsys, fileCertificates, &mu, &profile.Certificates))
	group.Go(decodeInto(fsys, fileSkills, &mu, &profile.Skills))
	group.Go(decodeInto(fsys, fileExperience, &mu, &profile.Experience))
	group.Go(decodeInto(fsys, fileEducation, &mu, &profile.Education))
	group.Go(decodeInto(fsys, fileContact, &mu, &profile.Contact))

	if err := group.Wait(); err != nil {
		return Profile{}, errors.Join(err, ErrProfileRead)
	}

	return profile, nil
}

// decodeInto returns an errgroup task that decodes one yaml section file.
func decodeInto[T any](fsys fs.FS, name string, mu *sync.Mutex, out *T) func() error {
	return func() error {
		body, errRead := fs.ReadFile(fsys, name)
		if errRead != nil {
			return errors.Join(errRead, ErrProfileRead)
		}

		var value T
		if err := yaml.Unmarshal(body, &value); err != nil {
			return errors.Join(err, ErrProfileRead)
		}

		mu.Lock()
		*out = value
		mu.Unlock()

		return nil
	}
}

func loadAbout(fsys fs.FS) (About, error) {
	body, errRead := fs.ReadFile(fsys, fileAbout)
	if errRead != nil {
		return About{}, errors.Join(errRead, ErrProfileRead)
	}

	var about About
	rest, errParse := frontmatter.Parse(bytes.NewReader(body), &about)
	if errParse != nil {
		return About{}, errors.Join(errParse, ErrProfileRead)
	}

	about.Body = string(rest)

	return about, nil
}
