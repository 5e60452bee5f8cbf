package formatter

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed data/locales.yaml
var defaultLocaleDataYAML []byte

// LocaleDataLoader loads locale data from the embedded defaults plus optional files
type LocaleDataLoader struct {
	defaultPath string
	overrides   map[string]string
}

// NewLocaleDataLoader creates a loader. An empty path loads only the embedded defaults.
func NewLocaleDataLoader(defaultPath string) *LocaleDataLoader {
	return &LocaleDataLoader{
		defaultPath: defaultPath,
		overrides:   make(map[string]string),
	}
}

// AddOverride registers a file holding a single LocaleData for locale
func (l *LocaleDataLoader) AddOverride(locale, path string) {
	l.overrides[normalizeLocale(locale)] = path
}

// Load decodes the embedded defaults, merges the user file and overrides, and
// validates every resulting locale.
func (l *LocaleDataLoader) Load() (*LocaleDataSet, error) {
	base, err := decodeLocaleDataSet("locales.yaml", defaultLocaleDataYAML)
	if err != nil {
		return nil, fmt.Errorf("formatter: parse default locale data: %w", err)
	}

	if l.defaultPath != "" {
		data, err := os.ReadFile(l.defaultPath)
		if err != nil {
			return nil, fmt.Errorf("formatter: read %s: %w", l.defaultPath, err)
		}
		user, err := decodeLocaleDataSet(l.defaultPath, data)
		if err != nil {
			return nil, fmt.Errorf("formatter: decode %s: %w", l.defaultPath, err)
		}
		mergeLocaleDataSet(base, user)
	}

	// deterministic order so errors are reproducible
	locales := make([]string, 0, len(l.overrides))
	for locale := range l.overrides {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		if err := l.loadOverride(base, locale, l.overrides[locale]); err != nil {
			return nil, err
		}
	}

	for locale, data := range base.Locales {
		if err := data.validate(); err != nil {
			return nil, err
		}
		base.Locales[locale] = data
	}

	return base, nil
}

func (l *LocaleDataLoader) loadOverride(dest *LocaleDataSet, locale, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("formatter: read override %s for %s: %w", path, locale, err)
	}

	var override LocaleData
	if err := decodeByExtension(path, raw, &override); err != nil {
		return fmt.Errorf("formatter: decode override %s: %w", path, err)
	}
	override.Locale = locale

	mergeLocaleDataSet(dest, &LocaleDataSet{Locales: map[string]LocaleData{locale: override}})
	return nil
}

func mergeLocaleDataSet(dest, source *LocaleDataSet) {
	if source == nil || len(source.Locales) == 0 {
		return
	}
	if dest.Locales == nil {
		dest.Locales = make(map[string]LocaleData, len(source.Locales))
	}
	for locale, data := range source.Locales {
		key := normalizeLocale(locale)
		existing, ok := dest.Locales[key]
		if !ok {
			data.Locale = key
			dest.Locales[key] = data
			continue
		}
		merged := existing.merge(data)
		merged.Locale = key
		dest.Locales[key] = merged
	}
}

func decodeLocaleDataSet(path string, data []byte) (*LocaleDataSet, error) {
	var set LocaleDataSet
	if err := decodeByExtension(path, data, &set); err != nil {
		return nil, err
	}

	normalized := make(map[string]LocaleData, len(set.Locales))
	for locale, entry := range set.Locales {
		key := normalizeLocale(locale)
		if key == "" {
			return nil, fmt.Errorf("formatter: empty locale in %s", path)
		}
		entry.Locale = key
		normalized[key] = entry
	}
	set.Locales = normalized
	return &set, nil
}

func decodeByExtension(path string, data []byte, target any) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return json.Unmarshal(data, target)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, target)
	case ".toml":
		_, err := toml.Decode(string(data), target)
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDataFormat, ext)
	}
}

func embeddedEnglish() LocaleData {
	set, err := decodeLocaleDataSet("locales.yaml", defaultLocaleDataYAML)
	if err != nil {
		return LocaleData{Locale: defaultLocale}
	}
	return set.Locales[defaultLocale]
}
