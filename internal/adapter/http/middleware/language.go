package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"caretrack/pkg/translator"
)

const langContextKey = "lang"

// LanguageMiddleware picks the response language from the Accept-Language
// header. Only the first tag is considered; quality factors are ignored.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langContextKey, primaryLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langContextKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

func primaryLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	first = strings.TrimSpace(first)
	if first == "" {
		return translator.LanguageEn
	}
	return first
}
