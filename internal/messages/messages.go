// Package messages centralizes the localized diagnostic strings used by
// the jtd package's CompileError, grounded on the teacher's i18n.go /
// result.go pattern: an embedded locale bundle plus a replace-style
// fallback for callers that never attach a localizer.
package messages

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

var (
	once    sync.Once
	bundle  *i18n.I18n
	loadErr error
)

// Bundle returns the shared, lazily-initialized localization bundle.
func Bundle() (*i18n.I18n, error) {
	once.Do(func() {
		b := i18n.NewBundle(
			i18n.WithDefaultLocale("en"),
			i18n.WithLocales("en", "zh-Hans"),
		)
		loadErr = b.LoadFS(localesFS, "locales/*.json")
		bundle = b
	})
	return bundle, loadErr
}

// Localize resolves code via localizer if provided, else falls back to
// substituting {placeholder} tokens in fallback using vars.
func Localize(localizer *i18n.Localizer, code, fallback string, vars map[string]any) string {
	if localizer != nil {
		return localizer.Get(code, i18n.Vars(vars))
	}
	return replace(fallback, vars)
}

// replace performs simple {key} substitution, mirroring the teacher's
// EvaluationError.Error() fallback formatting.
func replace(template string, vars map[string]any) string {
	if len(vars) == 0 {
		return template
	}
	out := template
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{"+k+"}", toString(v))
	}
	return out
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
