package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/launchkit/internal/application/dto"
	"github.com/reglet-dev/launchkit/internal/domain/values"
)

type stubManifestLoader struct {
	manifest *dto.Manifest
	err      error
}

func (l stubManifestLoader) LoadManifest(string) (*dto.Manifest, error) {
	return l.manifest, l.err
}

func validManifest() *dto.Manifest {
	return &dto.Manifest{
		Version:     "1.0.0",
		FileName:    "mailer",
		Type:        "Application",
		Name:        "Mailer",
		Exec:        "/usr/bin/mailer %u",
		Icon:        "mailer",
		Comment:     "Read mail",
		Terminal:    true,
		Categories:  []string{"NETWORK", "Email"},
		Keywords:    []string{"mail", "inbox"},
		MimeTypes:   []string{"message/rfc822"},
		OnlyShowIn:  []string{"GNOME"},
		NotShowIn:   []string{"kde"},
		GenericName: "Mail Client",
		Localized: &dto.LocalizedStrings{
			Name:    map[string]string{"DE": "Post"},
			Comment: map[string]string{"fr": "Lire le courrier"},
		},
	}
}

func TestManifestService_Build(t *testing.T) {
	svc := NewManifestService(nil, nil)

	entry, err := svc.Build(validManifest())

	require.NoError(t, err)
	assert.Equal(t, "mailer", entry.FileName().String())
	assert.Equal(t, values.EntryTypeApplication, entry.Type())
	assert.True(t, entry.Terminal())
	assert.Equal(t, []values.Category{values.CategoryNetwork, values.CategoryEmail}, entry.Categories())
	assert.Equal(t, []values.DesktopEnvironment{values.DesktopGNOME}, entry.OnlyShowIn())
	assert.Equal(t, []values.DesktopEnvironment{values.DesktopKDE}, entry.NotShowIn())
	assert.Equal(t, "Post", entry.NameLang()[values.MustNewLanguageTag("de")])
	assert.Contains(t, entry.Render(), "Exec=/usr/bin/mailer %u\n")
}

func TestManifestService_Build_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *dto.Manifest)
		wantArg bool
	}{
		{"bad file name", func(m *dto.Manifest) { m.FileName = "Mailer" }, true},
		{"bad type", func(m *dto.Manifest) { m.Type = "Service" }, true},
		{"empty exec", func(m *dto.Manifest) { m.Exec = "" }, true},
		{"bad category", func(m *dto.Manifest) { m.Categories = []string{"Networks"} }, true},
		{"bad environment", func(m *dto.Manifest) { m.OnlyShowIn = []string{"Aqua"} }, true},
		{"bad not-show-in", func(m *dto.Manifest) { m.NotShowIn = []string{"Aqua"} }, true},
		{"bad mime type", func(m *dto.Manifest) { m.MimeTypes = []string{"textplain"} }, true},
		{"bad language tag", func(m *dto.Manifest) { m.Localized.Name = map[string]string{"deutsch": "x"} }, true},
		{"bad generic name tag", func(m *dto.Manifest) {
			m.Localized.GenericName = map[string]string{"x": "y"}
		}, true},
		{"unsupported version", func(m *dto.Manifest) { m.Version = "2.1.0" }, false},
		{"malformed version", func(m *dto.Manifest) { m.Version = "one" }, false},
	}

	svc := NewManifestService(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validManifest()
			tt.mutate(m)

			entry, err := svc.Build(m)

			require.Error(t, err)
			assert.Nil(t, entry)
			assert.Equal(t, tt.wantArg, errors.Is(err, values.ErrInvalidArgument))
		})
	}
}

func TestManifestService_Build_EmptyVersionAccepted(t *testing.T) {
	m := validManifest()
	m.Version = ""

	_, err := NewManifestService(nil, nil).Build(m)

	assert.NoError(t, err)
}

func TestManifestService_Build_Nil(t *testing.T) {
	_, err := NewManifestService(nil, nil).Build(nil)
	assert.Error(t, err)
}

func TestManifestService_Load(t *testing.T) {
	svc := NewManifestService(stubManifestLoader{manifest: validManifest()}, nil)

	entry, err := svc.Load("mailer.yaml")

	require.NoError(t, err)
	assert.Equal(t, "Mailer", entry.Name())
}

func TestManifestService_Load_LoaderError(t *testing.T) {
	svc := NewManifestService(stubManifestLoader{err: errors.New("boom")}, nil)

	_, err := svc.Load("mailer.yaml")

	assert.ErrorContains(t, err, "boom")
}

func TestToManifest_RoundTrip(t *testing.T) {
	svc := NewManifestService(nil, nil)
	entry, err := svc.Build(validManifest())
	require.NoError(t, err)

	again, err := svc.Build(ToManifest(entry))

	require.NoError(t, err)
	assert.Equal(t, entry.Render(), again.Render())
}

func TestToManifest_OmitsEmptyLocalized(t *testing.T) {
	m := validManifest()
	m.Localized = nil
	entry, err := NewManifestService(nil, nil).Build(m)
	require.NoError(t, err)

	out := ToManifest(entry)

	assert.Nil(t, out.Localized)
	assert.Equal(t, CurrentManifestVersion, out.Version)
	assert.Equal(t, []string{"Network", "Email"}, out.Categories)
}
