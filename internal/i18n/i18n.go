// Package i18n holds the user-facing reply catalog for every language the
// bot speaks. The catalog is embedded at build time so a deployment is a
// single binary.
package i18n

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/elyorka22/-telegram-bot/internal/domain"
)

//go:embed locales.yaml
var rawLocales []byte

var catalog map[domain.Language]map[string]string

func init() {
	if err := yaml.Unmarshal(rawLocales, &catalog); err != nil {
		panic(fmt.Sprintf("i18n: parse embedded catalog: %v", err))
	}
}

// T returns the reply text for the given language and key. Unknown
// languages fall back to English, unknown keys come back verbatim so a
// missing translation never swallows a reply.
func T(lang domain.Language, key string) string {
	if texts, ok := catalog[lang]; ok {
		if text, ok := texts[key]; ok {
			return text
		}
	}
	if text, ok := catalog[domain.DefaultLanguage][key]; ok {
		return text
	}
	return key
}

// Keys returns every key present for the given language. Used by tests to
// check catalog completeness.
func Keys(lang domain.Language) []string {
	keys := make([]string, 0, len(catalog[lang]))
	for k := range catalog[lang] {
		keys = append(keys, k)
	}
	return keys
}
