package config

const (
	LangEN = "en"
	LangES = "es"
	LangPT = "pt"
)

func SupportedLanguages() []string {
	return []string{LangPT, LangEN, LangES}
}

func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages() {
		if l == lang {
			return true
		}
	}
	return false
}
