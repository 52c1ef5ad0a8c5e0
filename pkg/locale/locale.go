// Package locale maps error codes to stable, user-facing messages so the UI
// can render failures in the caller's language without parsing internals.
package locale

import (
	"strings"

	apperrors "barkeep/pkg/errors"
)

type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	Hebrew  Language = "he"
)

var catalogs = map[Language]map[string]string{
	English: {
		apperrors.CodeNotFound:     "The requested item could not be found.",
		apperrors.CodeInvalidInput: "The request contains invalid data.",
		apperrors.CodeValidation:   "Some fields failed validation.",
		apperrors.CodeConflict:     "The table is already held by someone else.",
		apperrors.CodeUnauthorized: "You are not allowed to perform this action.",
		apperrors.CodeForbidden:    "Access to this resource is denied.",
		apperrors.CodeInternal:     "Something went wrong. Please try again later.",
		apperrors.CodeUnavailable:  "The service is temporarily unavailable.",
	},
	Spanish: {
		apperrors.CodeNotFound:     "No se pudo encontrar el elemento solicitado.",
		apperrors.CodeInvalidInput: "La solicitud contiene datos no válidos.",
		apperrors.CodeValidation:   "Algunos campos no pasaron la validación.",
		apperrors.CodeConflict:     "La mesa ya está reservada por otra persona.",
		apperrors.CodeUnauthorized: "No tienes permiso para realizar esta acción.",
		apperrors.CodeForbidden:    "El acceso a este recurso está denegado.",
		apperrors.CodeInternal:     "Algo salió mal. Inténtalo de nuevo más tarde.",
		apperrors.CodeUnavailable:  "El servicio no está disponible temporalmente.",
	},
	Hebrew: {
		apperrors.CodeNotFound:     "הפריט המבוקש לא נמצא.",
		apperrors.CodeInvalidInput: "הבקשה מכילה נתונים שגויים.",
		apperrors.CodeValidation:   "חלק מהשדות לא עברו אימות.",
		apperrors.CodeConflict:     "השולחן כבר תפוס על ידי מישהו אחר.",
		apperrors.CodeUnauthorized: "אין לך הרשאה לבצע פעולה זו.",
		apperrors.CodeForbidden:    "הגישה למשאב זה נדחתה.",
		apperrors.CodeInternal:     "משהו השתבש. נסה שוב מאוחר יותר.",
		apperrors.CodeUnavailable:  "השירות אינו זמין כרגע.",
	},
}

// Detect picks the best supported language from an Accept-Language header
// value. Quality weights are ignored; first supported tag wins.
func Detect(acceptLanguage string) Language {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(part)
		if i := strings.IndexByte(tag, ';'); i >= 0 {
			tag = tag[:i]
		}
		if i := strings.IndexByte(tag, '-'); i >= 0 {
			tag = tag[:i]
		}
		switch Language(strings.ToLower(tag)) {
		case English:
			return English
		case Spanish:
			return Spanish
		case Hebrew:
			return Hebrew
		}
	}
	return English
}

// Localize returns the user-facing message for an error code. Unknown codes
// fall back to the internal-error message in the requested language.
func Localize(code string, lang Language) string {
	catalog, ok := catalogs[lang]
	if !ok {
		catalog = catalogs[English]
	}
	if msg, ok := catalog[code]; ok {
		return msg
	}
	return catalog[apperrors.CodeInternal]
}
