// Package i18n holds the site's language-keyed string tables and the
// per-request Localizer that resolves dotted keys like "nav.home".
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// Language is a supported site language. Only the constants below are valid.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// Default is the base language. Its table is the reference every other
// table is checked against.
const Default = English

// Supported lists the site languages in menu order. Default comes first.
var Supported = []Language{English, Spanish}

var supportedTags = []language.Tag{language.English, language.Spanish}

//go:embed locales/*.yaml
var defaultLocales embed.FS

// Parse maps a language code such as "es" or "es-CO" to a supported Language.
func Parse(code string) (Language, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	lang := Language(base.String())
	return lang, lang.Valid()
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	for _, s := range Supported {
		if l == s {
			return true
		}
	}
	return false
}

func (l Language) String() string { return string(l) }

// Tag returns the BCP 47 tag for l.
func (l Language) Tag() language.Tag {
	return language.Make(string(l))
}

// Name returns the language's own name, capitalized ("English", "Español").
func (l Language) Name() string {
	tag := l.Tag()
	name := display.Self.Name(tag)
	if name == "" {
		return strings.ToUpper(string(l))
	}
	return cases.Title(tag).String(name)
}

// Bundle holds one flat key -> string table per supported language.
type Bundle struct {
	tables  map[Language]map[string]string
	matcher language.Matcher
}

// DefaultBundle loads the tables shipped with the binary.
func DefaultBundle() (*Bundle, error) {
	sub, err := fs.Sub(defaultLocales, "locales")
	if err != nil {
		return nil, err
	}
	return LoadBundle(sub)
}

// LoadBundle reads "<code>.yaml" for every supported language from fsys.
// Nested maps are flattened into dotted keys.
func LoadBundle(fsys fs.FS) (*Bundle, error) {
	b := &Bundle{
		tables:  make(map[Language]map[string]string, len(Supported)),
		matcher: language.NewMatcher(supportedTags),
	}
	for _, lang := range Supported {
		data, err := fs.ReadFile(fsys, string(lang)+".yaml")
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s table: %w", lang, err)
		}
		table, err := parseTable(data)
		if err != nil {
			return nil, fmt.Errorf("i18n: parse %s table: %w", lang, err)
		}
		b.tables[lang] = table
	}
	return b, nil
}

// NewBundle builds a Bundle from in-memory tables. Languages outside
// Supported are ignored.
func NewBundle(tables map[Language]map[string]string) *Bundle {
	b := &Bundle{
		tables:  make(map[Language]map[string]string, len(Supported)),
		matcher: language.NewMatcher(supportedTags),
	}
	for lang, table := range tables {
		if !lang.Valid() {
			continue
		}
		copied := make(map[string]string, len(table))
		for k, v := range table {
			copied[k] = v
		}
		b.tables[lang] = copied
	}
	return b
}

func parseTable(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	if err := flatten("", raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case string:
			out[key] = val
		case nil:
			return fmt.Errorf("key %q has no value", key)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
	return nil
}

// Has reports whether key has a non-empty entry in lang's table.
func (b *Bundle) Has(lang Language, key string) bool {
	return b.tables[lang][key] != ""
}

// Keys returns the sorted keys of lang's table.
func (b *Bundle) Keys(lang Language) []string {
	keys := make([]string, 0, len(b.tables[lang]))
	for k := range b.tables[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Missing returns, per non-default language, the sorted keys present in the
// Default table but absent from that language. Complete languages are omitted.
func (b *Bundle) Missing() map[Language][]string {
	out := make(map[Language][]string)
	for _, lang := range Supported {
		if lang == Default {
			continue
		}
		for _, key := range b.Keys(Default) {
			if !b.Has(lang, key) {
				out[lang] = append(out[lang], key)
			}
		}
	}
	return out
}

// ErrIncomplete is wrapped by Validate when a table lacks default keys.
var ErrIncomplete = errors.New("i18n: incomplete translation table")

// Validate returns an error naming every missing key, or nil.
func (b *Bundle) Validate() error {
	missing := b.Missing()
	if len(missing) == 0 {
		return nil
	}
	var errs []error
	for _, lang := range Supported {
		if keys, ok := missing[lang]; ok {
			errs = append(errs, fmt.Errorf("%w: %s lacks %s", ErrIncomplete, lang, strings.Join(keys, ", ")))
		}
	}
	return errors.Join(errs...)
}

// Negotiate picks the supported language that best matches an
// Accept-Language header value, falling back to Default.
func (b *Bundle) Negotiate(acceptLanguage string) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(Supported) {
		return Default
	}
	return Supported[idx]
}

// Localizer resolves keys for one active language. A Localizer is owned by a
// single request and is not safe for concurrent SetLanguage calls.
type Localizer struct {
	bundle *Bundle
	lang   Language
}

// Localizer returns a Localizer for lang, or for Default when lang is not
// supported.
func (b *Bundle) Localizer(lang Language) *Localizer {
	l := &Localizer{bundle: b, lang: Default}
	l.SetLanguage(lang)
	return l
}

// Language returns the active language.
func (l *Localizer) Language() Language { return l.lang }

// SetLanguage switches the active language. Unsupported values are ignored
// and the previous language stays active.
func (l *Localizer) SetLanguage(lang Language) {
	if !lang.Valid() {
		return
	}
	if _, ok := l.bundle.tables[lang]; !ok {
		return
	}
	l.lang = lang
}

// T returns the string for key in the active language, or key itself when
// the table has no entry. An empty key yields "?" so T never returns "".
func (l *Localizer) T(key string) string {
	if key == "" {
		return "?"
	}
	if s := l.bundle.tables[l.lang][key]; s != "" {
		return s
	}
	return key
}

// Tf formats the translated pattern for key with args.
func (l *Localizer) Tf(key string, args ...any) string {
	return fmt.Sprintf(l.T(key), args...)
}
