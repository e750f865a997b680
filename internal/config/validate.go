package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validate checks struct rules and then business rules. Load calls it automatically.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fe.Translate(trans))
		}
		return errors.New(strings.Join(msgs, "; "))
	}

	if c.SRS.ImminentWindow >= c.Study.SessionTTL {
		return fmt.Errorf("srs.imminent_window (%s) must be shorter than study.session_ttl (%s)", c.SRS.ImminentWindow, c.Study.SessionTTL)
	}
	if c.Study.JanitorInterval > c.Study.SessionTTL {
		return fmt.Errorf("study.janitor_interval (%s) must not exceed study.session_ttl (%s)", c.Study.JanitorInterval, c.Study.SessionTTL)
	}

	return nil
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("register default translations: %w", err)
	}

	// Report fields by their yaml path, e.g. "srs.min_ease_factor".
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate, trans, nil
}
