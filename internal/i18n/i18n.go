package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var embeddedLocales embed.FS

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
	lang     string
}

// NewTranslations loads the embedded message files plus any active.*.toml
// found in localesDir (which may be empty) and selects defaultLang.
func NewTranslations(defaultLang, localesDir string) (*Translations, error) {
	if defaultLang == "" {
		return nil, errors.New("language cannot be empty")
	}
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", defaultLang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if err := loadEmbedded(bundle); err != nil {
		return nil, err
	}

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	return &Translations{
		bundle:   bundle,
		localize: i18n.NewLocalizer(bundle, tag.String()),
		lang:     tag.String(),
	}, nil
}

func loadEmbedded(bundle *i18n.Bundle) error {
	files, err := fs.Glob(embeddedLocales, "locales/active.*.toml")
	if err != nil {
		return fmt.Errorf("error reading embedded locales: %w", err)
	}
	for _, file := range files {
		data, err := embeddedLocales.ReadFile(file)
		if err != nil {
			return fmt.Errorf("error reading locale file %s: %w", file, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(file)); err != nil {
			return fmt.Errorf("error parsing locale file %s: %w", file, err)
		}
	}
	return nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			t.lang = lang
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

// Language returns the active language tag.
func (t *Translations) Language() string {
	return t.lang
}

// GetMessage localizes messageID. count selects the plural form only when it
// is positive; templateData may be a map or a struct.
func (t *Translations) GetMessage(messageID string, count int, templateData interface{}) string {
	cfg := &i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	}
	if count > 0 {
		cfg.PluralCount = count
	}

	localized, err := t.localize.Localize(cfg)
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}
