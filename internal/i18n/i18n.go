// Package i18n resolves the request locale and looks up response messages and
// validation errors in Turkish or English.
package i18n

import (
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/tr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	tr_translations "github.com/go-playground/validator/v10/translations/tr"
	"golang.org/x/text/language"
)

const (
	LocaleTR = "tr"
	LocaleEN = "en"
)

var matcher = language.NewMatcher([]language.Tag{language.Turkish, language.English})

var supported = []string{LocaleTR, LocaleEN}

type Translator struct {
	uni           *ut.UniversalTranslator
	defaultLocale string
}

// New builds the tr and en translators, registers the validator's default messages
// for both and adds the application dictionary on top.
func New(validate *validator.Validate, defaultLocale string) (*Translator, error) {
	trLocale := tr.New()
	enLocale := en.New()
	uni := ut.New(trLocale, trLocale, enLocale)

	register := map[string]func(*validator.Validate, ut.Translator) error{
		LocaleTR: tr_translations.RegisterDefaultTranslations,
		LocaleEN: en_translations.RegisterDefaultTranslations,
	}

	for locale, registerValidator := range register {
		trans, found := uni.GetTranslator(locale)
		if !found {
			return nil, fmt.Errorf("translator %s not found", locale)
		}
		if validate != nil {
			if err := registerValidator(validate, trans); err != nil {
				return nil, fmt.Errorf("register %s validation messages: %w", locale, err)
			}
		}
		for key, text := range dictionaries[locale] {
			if err := trans.Add(key, text, true); err != nil {
				return nil, fmt.Errorf("add %s message %s: %w", locale, key, err)
			}
		}
	}

	if _, found := uni.GetTranslator(defaultLocale); !found {
		defaultLocale = LocaleTR
	}

	return &Translator{uni: uni, defaultLocale: defaultLocale}, nil
}

func (t *Translator) DefaultLocale() string {
	return t.defaultLocale
}

// Get returns the translator for locale, falling back to the default locale.
func (t *Translator) Get(locale string) ut.Translator {
	trans, found := t.uni.GetTranslator(locale)
	if !found {
		trans, _ = t.uni.GetTranslator(t.defaultLocale)
	}
	return trans
}

// ResolveLocale picks the locale from ?lang=, then Accept-Language, then the default.
func (t *Translator) ResolveLocale(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		if _, found := t.uni.GetTranslator(lang); found {
			return lang
		}
	}

	if header := r.Header.Get("Accept-Language"); header != "" {
		tags, _, err := language.ParseAcceptLanguage(header)
		if err == nil && len(tags) > 0 {
			_, idx, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return supported[idx]
			}
		}
	}

	return t.defaultLocale
}

// T looks key up in trans. Unknown keys come back unchanged.
func T(trans ut.Translator, key string, params ...string) string {
	msg, err := trans.T(key, params...)
	if err != nil {
		return key
	}
	return msg
}
