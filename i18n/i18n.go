// Package i18n resolves dot-delimited UI strings for the supported locales.
package i18n

import (
	"embed"
	"fmt"
	"log"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Languages lists the locales shipped with the binary.
var Languages = []string{"fr", "en"}

var (
	loadOnce sync.Once
	tables   map[string]map[string]string
)

func load() {
	tables = make(map[string]map[string]string, len(Languages))
	for _, lang := range Languages {
		t, err := loadLocale(lang)
		if err != nil {
			log.Printf("i18n: %v", err)
			continue
		}
		tables[lang] = t
	}
}

func loadLocale(lang string) (map[string]string, error) {
	raw, err := localeFS.ReadFile("locales/" + lang + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("read locale %s: %w", lang, err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("parse locale %s: %w", lang, err)
	}
	flat := make(map[string]string)
	flatten("", tree, flat)
	return flat, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// T returns the string for key in lang, or the key itself when unresolved.
func T(lang, key string) string {
	loadOnce.Do(load)
	if s, ok := tables[strings.ToLower(lang)][key]; ok {
		return s
	}
	return key
}

// Tf resolves key like T, then replaces each {name} placeholder with its
// value. pairs alternates names and values.
func Tf(lang, key string, pairs ...string) string {
	s := T(lang, key)
	for i := 0; i+1 < len(pairs); i += 2 {
		s = strings.ReplaceAll(s, "{"+pairs[i]+"}", pairs[i+1])
	}
	return s
}

// Keys returns every key defined for lang.
func Keys(lang string) []string {
	loadOnce.Do(load)
	keys := make([]string, 0, len(tables[lang]))
	for k := range tables[lang] {
		keys = append(keys, k)
	}
	return keys
}
