package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uddipan77/portfolio-tui/internal/profile"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	prof, err := profile.Load("")
	require.NoError(t, err)

	require.Equal(t, "Uddipan Basu Bir", prof.About.Name)
	require.NotEmpty(t, prof.About.Tagline)
	require.NotEmpty(t, prof.About.Body)
	require.Equal(t, "assets/resume.pdf", prof.About.Resume)

	require.NotEmpty(t, prof.Projects.Featured)
	require.NotEmpty(t, prof.Projects.OpenSource)
	require.NotEmpty(t, prof.Certificates)
	require.NotEmpty(t, prof.Skills)
	require.NotEmpty(t, prof.Experience)
	require.NotEmpty(t, prof.Education)
	require.NotEmpty(t, prof.Contact.Email)
}

func TestLoadMissingDir(t *testing.T) {
	_, err := profile.Load(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, profile.ErrProfileRead)
}

func TestLoadPartialDirFails(t *testing.T) {
	dir := t.TempDir()
	// Only the about file exists; a partial profile must not load.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "about.md"),
		[]byte("---\nname: Test\n---\nbody"), 0o600))

	_, err := profile.Load(dir)
	require.ErrorIs(t, err, profile.ErrProfileRead)
}

func TestProjectsList(t *testing.T) {
	projects := profile.Projects{
		Featured:   []profile.Project{{Name: "one"}},
		OpenSource: []profile.Project{{Name: "two"}},
	}

	require.Equal(t, "one", projects.List(profile.TabFeatured)[0].Name)
	require.Equal(t, "two", projects.List(profile.TabOpenSource)[0].Name)
}

func TestAssetURL(t *testing.T) {
	base := "https://uddipan77.github.io/portfolio"

	require.Equal(t, base+"/assets/resume.pdf", profile.AssetURL(base, "assets/resume.pdf"))
	require.Equal(t, "https://example.com/cert.pdf", profile.AssetURL(base, "https://example.com/cert.pdf"))
	require.Equal(t, "", profile.AssetURL(base, ""))
}
