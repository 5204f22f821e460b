// Package i18n renders user-facing messages in a small closed set of
// languages. Message ids map to printf-style templates; unknown
// language codes fall back to the default.
package i18n

import (
	"fmt"

	"finledger/internal/core"
)

// T formats the message id in the given language. Unknown codes and
// ids missing from a translation fall back to the default language.
func T(lang, id string, args ...any) string {
	msgs, ok := catalogs[lang]
	if !ok {
		msgs = catalogs[core.DefaultLanguage]
	}
	tmpl, ok := msgs[id]
	if !ok {
		tmpl, ok = catalogs[core.DefaultLanguage][id]
		if !ok {
			return id
		}
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
