// Package apierrors builds the JSON error envelope handlers return. Messages
// are resolved through the translation bundle so one code path serves every
// language the API speaks.
package apierrors

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"caretrack/pkg/translator"
)

// JsonErr is the envelope every error response is wrapped in.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("code %d: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError resolves msgKey in the requested language and pairs it with the
// HTTP status code the handler is about to send.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{Code: code, Message: translate(msgKey, lang)}}
}

// translate falls back to English, then to the raw key, so an incomplete
// bundle never blocks an error response.
func translate(msgKey, lang string) string {
	localizer := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("missing translation",
			zap.String("lang", lang),
			zap.String("message_id", msgKey))
		return msgKey
	}
	return msg
}
