package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/poruru-code/esb-branding-tool/internal/branding"
)

// promptForBrand interactively asks for the brand identifier.
// The answer must derive cleanly into branded tokens.
func promptForBrand(defaultBrand string) (string, error) {
	prompt := &survey.Input{
		Message: "Brand identifier:",
		Default: defaultBrand,
		Help:    "Free-form brand name; slug and env prefix are derived from it (example: Acme Cloud)",
	}

	brandValidator := func(ans interface{}) error {
		value, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected a string value")
		}
		_, err := branding.Derive(value)
		return err
	}

	var result string
	if err := survey.AskOne(prompt, &result,
		survey.WithValidator(survey.Required),
		survey.WithValidator(brandValidator)); err != nil {
		return "", err
	}
	return result, nil
}

// promptForESBBase interactively asks for the optional ESB base reference.
// An empty answer means no base tracking is set up yet.
func promptForESBBase() (string, error) {
	prompt := &survey.Input{
		Message: "ESB base commit/tag (optional):",
		Help:    "Commit hash or tag of the upstream ESB base used for patch tracking",
	}

	var result string
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}
