// Package locale localizes the web UI strings with go-i18n.
package locale

import (
	"embed"
	"io/fs"
	"strings"

	"lostfound/logger"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

var (
	i18nBundle   *i18n.Bundle
	localizerWeb *i18n.Localizer
)

func InitLocalizer(i18nFS embed.FS) error {
	i18nBundle = i18n.NewBundle(language.MustParse("en-US"))
	i18nBundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	err := fs.WalkDir(i18nFS, "translation",
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			data, err := i18nFS.ReadFile(path)
			if err != nil {
				return err
			}
			_, err = i18nBundle.ParseMessageFileBytes(data, path)
			return err
		})
	if err != nil {
		return err
	}

	localizerWeb = i18n.NewLocalizer(i18nBundle, "en-US")
	return nil
}

func createTemplateData(params []string) map[string]any {
	templateData := make(map[string]any)
	for _, param := range params {
		parts := strings.SplitN(param, "==", 2)
		if len(parts) == 2 {
			templateData[parts[0]] = parts[1]
		}
	}
	return templateData
}

// I18n localizes key for the current web localizer. Falls back to the
// key itself before InitLocalizer has run.
func I18n(key string, params ...string) string {
	if localizerWeb == nil {
		return key
	}

	msg, err := localizerWeb.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: createTemplateData(params),
	})
	if err != nil {
		logger.Errorf("Failed to localize message: %v", err)
		return key
	}
	return msg
}

// LocalizerMiddleware picks the localizer per request from the "lang"
// cookie or the Accept-Language header.
func LocalizerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if i18nBundle == nil {
			c.Next()
			return
		}

		var lang string
		if cookie, err := c.Request.Cookie("lang"); err == nil {
			lang = cookie.Value
		} else {
			lang = c.GetHeader("Accept-Language")
		}

		localizerWeb = i18n.NewLocalizer(i18nBundle, lang, "en-US")
		c.Next()
	}
}
