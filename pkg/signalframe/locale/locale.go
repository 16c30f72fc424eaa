// Package locale provides localized strings for views, backed by go-i18n
// message files embedded in the binary.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/router"
	"github.com/BrandonKowalski/signalframe/pkg/signalframe/views"
)

//go:embed messages/*.toml
var messageFS embed.FS

// ErrUnsupportedLanguage is returned for a language with no message file.
var ErrUnsupportedLanguage = errors.New("locale: unsupported language")

// Supported lists the languages with message files, default first.
var Supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
	language.Russian,
	language.Spanish,
	language.Korean,
}

// NewBundle loads every embedded message file.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(messageFS, "messages")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		p := path.Join("messages", e.Name())
		buf, err := messageFS.ReadFile(p)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(buf, p); err != nil {
			return nil, fmt.Errorf("locale: parse %s: %w", p, err)
		}
	}
	return bundle, nil
}

// Localizer resolves strings in the current language, falling back to
// English for missing messages.
type Localizer struct {
	bundle   *i18n.Bundle
	matcher  language.Matcher
	tag      language.Tag
	current  *i18n.Localizer
	fallback *i18n.Localizer
}

// New creates a Localizer set to lang, a BCP 47 tag such as "en" or "zh-Hans".
func New(lang string) (*Localizer, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	l := &Localizer{
		bundle:   bundle,
		matcher:  language.NewMatcher(Supported),
		fallback: i18n.NewLocalizer(bundle, language.English.String()),
	}
	if err := l.SetLanguage(lang); err != nil {
		return nil, err
	}
	return l, nil
}

// Match returns the supported language closest to lang.
func (l *Localizer) Match(lang string) (language.Tag, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %w", ErrUnsupportedLanguage, lang, err)
	}
	_, idx, conf := l.matcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return Supported[idx], nil
}

// SetLanguage switches the current language.
func (l *Localizer) SetLanguage(lang string) error {
	tag, err := l.Match(lang)
	if err != nil {
		return err
	}
	l.tag = tag
	l.current = i18n.NewLocalizer(l.bundle, tag.String())
	return nil
}

// Language returns the current language.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Text returns the message for id, or id itself if no language has it.
func (l *Localizer) Text(id string) string {
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if s, err := l.current.Localize(cfg); err == nil && s != "" {
		return s
	}
	if s, err := l.fallback.Localize(cfg); err == nil && s != "" {
		return s
	}
	return id
}

// Title returns the localized title of a view.
func (l *Localizer) Title(id router.ViewID) string {
	key := "view_" + views.Name(id)
	if s := l.Text(key); s != key {
		return s
	}
	return views.Name(id)
}
