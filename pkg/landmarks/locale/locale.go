// Package locale resolves UI labels and attraction descriptions for the
// configured language.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Message IDs for UI labels.
const (
	ListTitle     = "list_title"
	ListEmpty     = "list_empty"
	ButtonBack    = "button_back"
	ButtonSelect  = "button_select"
	ButtonOpenMap = "button_open_map"
	ButtonExit    = "button_exit"
	MapOpening    = "map_opening"
	MapFailed     = "map_failed"
	NotFoundTitle = "not_found_title"
	NotFoundBody  = "not_found_body"
	LabelLocation = "label_location"
)

// DefaultLanguage is used when the requested language is not bundled.
var DefaultLanguage = language.English

// Localizer looks up messages for one language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewBundle loads the embedded message files.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(messageFS, "messages/*.toml")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(messageFS, file); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", path.Base(file), err)
		}
	}
	return bundle, nil
}

// New returns a Localizer for the best bundled match of lang
// ("zh-TW", "en-GB", ...). Unknown or malformed tags fall back to English.
func New(lang string) (*Localizer, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	return NewWithBundle(bundle, lang), nil
}

// NewWithBundle is New for a caller-supplied bundle.
func NewWithBundle(bundle *i18n.Bundle, lang string) *Localizer {
	tag := Match(bundle.LanguageTags(), lang)
	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}
}

// Match picks the supported tag closest to lang.
func Match(supported []language.Tag, lang string) language.Tag {
	if len(supported) == 0 {
		return DefaultLanguage
	}
	requested, err := language.Parse(normalize(lang))
	if err != nil {
		return DefaultLanguage
	}
	_, index, confidence := language.NewMatcher(supported).Match(requested)
	if confidence == language.No {
		return DefaultLanguage
	}
	return supported[index]
}

// normalize turns POSIX locale values ("zh_TW.UTF-8", "en_US:en") into BCP 47.
func normalize(lang string) string {
	lang, _, _ = strings.Cut(lang, ":")
	lang, _, _ = strings.Cut(lang, ".")
	return strings.ReplaceAll(lang, "_", "-")
}

// Language returns the tag messages are resolved in.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Lookup resolves id with optional template data. It reports an error wrapping
// ErrMissing when the id is not in the bundle for any language.
func (l *Localizer) Lookup(id string, data map[string]any) (string, error) {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) && s != "" {
			// Found in the default language only.
			return s, nil
		}
		return "", fmt.Errorf("%w: %s: %v", ErrMissing, id, err)
	}
	return s, nil
}

// Text resolves id and falls back to the id itself so a missing message is
// visible on screen rather than blank.
func (l *Localizer) Text(id string) string {
	s, err := l.Lookup(id, nil)
	if err != nil {
		return id
	}
	return s
}

// Format is Text with template data.
func (l *Localizer) Format(id string, data map[string]any) string {
	s, err := l.Lookup(id, data)
	if err != nil {
		return id
	}
	return s
}

// ErrMissing is wrapped by Lookup for unknown message IDs.
var ErrMissing = errors.New("message not found")
