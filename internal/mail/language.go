package mail

import (
	"context"
	"net/http"
	"strings"
	"unicode"

	"rice-shop/internal/model"
	"rice-shop/internal/repository"

	"github.com/rs/zerolog"
)

// LanguageFromHeaders extracts a language hint from the request headers.
// The storefront sets X-User-Language explicitly; Accept-Language is a
// weaker secondary signal. Returns "" when the headers carry no usable
// hint.
func LanguageFromHeaders(h http.Header) string {
	if lang := h.Get("X-User-Language"); model.ValidLanguage(lang) {
		return lang
	}
	if accept := h.Get("Accept-Language"); strings.Contains(accept, "my") {
		return model.LanguageBurmese
	}
	return ""
}

// containsBurmeseScript reports whether s contains characters from the
// Myanmar Unicode block (U+1000..U+109F).
func containsBurmeseScript(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Myanmar, r) {
			return true
		}
	}
	return false
}

// detectLanguage resolves the language for a pre-order send. Precedence:
// explicit header hint, stored per-email preference, Burmese-script
// heuristic on the email string, English.
func detectLanguage(ctx context.Context, prefs repository.PreferenceRepository, logger zerolog.Logger, email, hint string) string {
	if model.ValidLanguage(hint) {
		return hint
	}

	if prefs != nil {
		pref, err := prefs.Get(ctx, email)
		if err != nil {
			// Preference lookup failure falls through to the heuristic.
			logger.Warn().Err(err).Str("email", email).Msg("language preference lookup failed")
		} else if pref != nil && model.ValidLanguage(pref.Language) {
			return pref.Language
		}
	}

	if containsBurmeseScript(email) {
		return model.LanguageBurmese
	}

	return model.LanguageEnglish
}
