// Package i18n resolves dot-path translation keys against per-language
// bundles, falling back to a default language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

type Translator struct {
	bundles  map[string]map[string]any
	fallback string
	langs    []string
	matcher  language.Matcher
}

// New builds a translator over bundles keyed by language code. fallback
// must be one of them.
func New(fallback string, bundles map[string]map[string]any) (*Translator, error) {
	if _, ok := bundles[fallback]; !ok {
		return nil, fmt.Errorf("fallback language %q has no bundle", fallback)
	}

	// The fallback goes first so the matcher defaults to it.
	langs := []string{fallback}
	for lang := range bundles {
		if lang != fallback {
			langs = append(langs, lang)
		}
	}

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("bundle %q: %w", lang, err)
		}
		tags = append(tags, tag)
	}

	return &Translator{
		bundles:  bundles,
		fallback: fallback,
		langs:    langs,
		matcher:  language.NewMatcher(tags),
	}, nil
}

// Load reads every <lang>.yaml file in the root of fsys.
func Load(fsys fs.FS, fallback string) (*Translator, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}

	bundles := make(map[string]map[string]any, len(files))
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var bundle map[string]any
		if err := yaml.Unmarshal(data, &bundle); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		bundles[strings.TrimSuffix(path.Base(name), ".yaml")] = bundle
	}

	return New(fallback, bundles)
}

// Default loads the embedded English and Arabic bundles with English as
// the fallback.
func Default() (*Translator, error) {
	sub, err := fs.Sub(locales, "locales")
	if err != nil {
		return nil, err
	}
	return Load(sub, "en")
}

// T resolves key for lang. A key missing in lang is looked up again in the
// fallback language; if it is missing there too the key itself is returned.
func (t *Translator) T(lang, key string) string {
	if s, ok := lookup(t.bundles[lang], key); ok {
		return s
	}
	if s, ok := lookup(t.bundles[t.fallback], key); ok {
		return s
	}
	return key
}

// Match picks the supported language that best fits an Accept-Language
// header value.
func (t *Translator) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}
	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.fallback
	}
	return t.langs[index]
}

func lookup(bundle map[string]any, key string) (string, bool) {
	if bundle == nil {
		return "", false
	}

	var node any = bundle
	for _, segment := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		if node, ok = m[segment]; !ok {
			return "", false
		}
	}

	s, ok := node.(string)
	return s, ok
}
