package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

const DefaultLanguage = "en"

var bundle *i18n.Bundle

func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), "en.yaml"))
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}

// Localize renders a message of the default language
func Localize(messageID string, data map[string]interface{}) (string, error) {
	return NewLocalizer(DefaultLanguage).Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
}
