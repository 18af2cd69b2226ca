package greeting

import (
	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/vignesh-goutham/solid/pkg/capability"
)

// Greeter produces a greeting in one language.
type Greeter interface {
	Greet() string
}

// English greets in English.
type English struct{}

func (English) Greet() string { return "Hello" }

// French greets in French.
type French struct{}

func (French) Greet() string { return "Bonjour" }

// Order matters: the matcher reports the index of the supported tag it picked.
var (
	supported = []language.Tag{language.English, language.French}
	greeters  = []Greeter{English{}, French{}}
	matcher   = language.NewMatcher(supported)
)

// ForLocale returns the greeter for a BCP 47 locale such as "en-US" or "fr".
func ForLocale(locale string) (Greeter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.Wrapf(capability.ErrUnsupportedLocale, "parse locale %q", locale)
	}

	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return nil, errors.Wrapf(capability.ErrUnsupportedLocale, "locale %q", locale)
	}

	return greeters[idx], nil
}
