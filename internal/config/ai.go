package config

type Provider string

const (
	ProviderNone    Provider = "none"
	ProviderCommand Provider = "command"
	ProviderGemini  Provider = "gemini"
)

type Model string

const (
	ModelGemini15Flash Model = "gemini-1.5-flash"
	ModelGemini15Pro   Model = "gemini-1.5-pro"
	ModelGemini20Flash Model = "gemini-2.0-flash"
)

// PromptPlaceholder in generator args is replaced by the whole prompt as a
// single argv element.
const PromptPlaceholder = "{{prompt}}"

func SupportedProviders() []Provider {
	return []Provider{
		ProviderNone,
		ProviderCommand,
		ProviderGemini,
	}
}

func ModelsForProvider(p Provider) []Model {
	switch p {
	case ProviderGemini:
		return []Model{
			ModelGemini15Flash,
			ModelGemini15Pro,
			ModelGemini20Flash,
		}
	default:
		return []Model{}
	}
}

func DefaultModelForProvider(p Provider) Model {
	models := ModelsForProvider(p)
	if len(models) == 0 {
		return ""
	}
	return models[0]
}

func isSupportedProvider(p Provider) bool {
	for _, sp := range SupportedProviders() {
		if sp == p {
			return true
		}
	}
	return false
}
