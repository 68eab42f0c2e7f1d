package services

import (
	"fmt"
	"log/slog"

	"github.com/Masterminds/semver/v3"

	"github.com/reglet-dev/launchkit/internal/application/dto"
	apperrors "github.com/reglet-dev/launchkit/internal/application/errors"
	"github.com/reglet-dev/launchkit/internal/application/ports"
	"github.com/reglet-dev/launchkit/internal/domain/entities"
	"github.com/reglet-dev/launchkit/internal/domain/values"
)

// SupportedManifestVersions is the range of manifest format versions this build reads.
const SupportedManifestVersions = ">=1.0.0, <2.0.0"

// CurrentManifestVersion is written into newly generated manifests.
const CurrentManifestVersion = "1.0.0"

// ManifestService turns launcher manifests into desktop entries.
type ManifestService struct {
	loader     ports.ManifestLoader
	logger     *slog.Logger
	constraint *semver.Constraints
}

// NewManifestService creates a manifest service.
func NewManifestService(loader ports.ManifestLoader, logger *slog.Logger) *ManifestService {
	if logger == nil {
		logger = slog.Default()
	}
	// The constraint is a constant; a parse failure is a programming error.
	constraint, err := semver.NewConstraint(SupportedManifestVersions)
	if err != nil {
		panic(err)
	}
	return &ManifestService{
		loader:     loader,
		logger:     logger,
		constraint: constraint,
	}
}

// Load reads the manifest at path and builds the entry it describes.
func (s *ManifestService) Load(path string) (*entities.DesktopEntry, error) {
	manifest, err := s.loader.LoadManifest(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}

	entry, err := s.Build(manifest)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	s.logger.Debug("manifest loaded", "path", path, "file_name", entry.FileName().String())
	return entry, nil
}

// Build validates a manifest and converts it into a DesktopEntry.
// The first rejected field aborts the conversion.
func (s *ManifestService) Build(m *dto.Manifest) (*entities.DesktopEntry, error) {
	if m == nil {
		return nil, apperrors.NewValidationError("manifest", "manifest is empty")
	}
	if err := s.checkVersion(m.Version); err != nil {
		return nil, err
	}

	kind, err := values.ParseEntryType(m.Type)
	if err != nil {
		return nil, err
	}

	b, err := entities.NewBuilder(m.FileName, kind, m.Name, m.Exec)
	if err != nil {
		return nil, err
	}

	b.TryExec(m.TryExec).
		Icon(m.Icon).
		Comment(m.Comment).
		GenericName(m.GenericName).
		Path(m.Path).
		StartupWMClass(m.StartupWMClass).
		Terminal(m.Terminal).
		NoDisplay(m.NoDisplay).
		StartupNotify(m.StartupNotify).
		AddKeywords(m.Keywords...)

	for _, name := range m.Categories {
		category, err := values.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		b.AddCategory(category)
	}

	for _, name := range m.OnlyShowIn {
		env, err := values.ParseDesktopEnvironment(name)
		if err != nil {
			return nil, err
		}
		b.AddOnlyShowIn(env)
	}

	for _, name := range m.NotShowIn {
		env, err := values.ParseDesktopEnvironment(name)
		if err != nil {
			return nil, err
		}
		b.AddNotShowIn(env)
	}

	for _, mimeType := range m.MimeTypes {
		if err := b.AddMimeType(mimeType); err != nil {
			return nil, err
		}
	}

	if l := m.Localized; l != nil {
		if err := addVariants(l.Name, b.AddNameLang); err != nil {
			return nil, err
		}
		if err := addVariants(l.GenericName, b.AddGenericNameLang); err != nil {
			return nil, err
		}
		if err := addVariants(l.Comment, b.AddCommentLang); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

// checkVersion accepts an empty version as the current one.
func (s *ManifestService) checkVersion(raw string) error {
	if raw == "" {
		return nil
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return apperrors.NewValidationError("version", fmt.Sprintf("%q is not a semantic version", raw))
	}
	if !s.constraint.Check(v) {
		return apperrors.NewValidationError("version",
			fmt.Sprintf("manifest version %s is not supported (want %s)", v, SupportedManifestVersions))
	}
	return nil
}

func addVariants(variants map[string]string, add func(tag, value string) error) error {
	for tag, value := range variants {
		if err := add(tag, value); err != nil {
			return err
		}
	}
	return nil
}

// ToManifest converts an entry back into a manifest, e.g. for saving
// an entry assembled on the command line.
func ToManifest(e *entities.DesktopEntry) *dto.Manifest {
	m := &dto.Manifest{
		Version:        CurrentManifestVersion,
		FileName:       e.FileName().String(),
		Type:           e.Type().String(),
		Name:           e.Name(),
		Exec:           e.Exec(),
		TryExec:        e.TryExec(),
		Icon:           e.Icon(),
		Comment:        e.Comment(),
		GenericName:    e.GenericName(),
		Path:           e.Path(),
		StartupWMClass: e.StartupWMClass(),
		Terminal:       e.Terminal(),
		NoDisplay:      e.NoDisplay(),
		StartupNotify:  e.StartupNotify(),
		Keywords:       e.Keywords(),
		Categories:     stringList(e.Categories()),
		MimeTypes:      stringList(e.MimeTypes()),
		OnlyShowIn:     stringList(e.OnlyShowIn()),
		NotShowIn:      stringList(e.NotShowIn()),
	}

	localized := &dto.LocalizedStrings{
		Name:        stringMap(e.NameLang()),
		GenericName: stringMap(e.GenericNameLang()),
		Comment:     stringMap(e.CommentLang()),
	}
	if localized.Name != nil || localized.GenericName != nil || localized.Comment != nil {
		m.Localized = localized
	}
	return m
}

func stringList[T fmt.Stringer](items []T) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	return out
}

func stringMap(m map[values.LanguageTag]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for tag, v := range m {
		out[tag.String()] = v
	}
	return out
}
