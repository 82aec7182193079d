package newsapi

// Constant enumerations documented by TheNewsAPI. These never require an
// outbound call; the enumeration tools return them as-is.

// Categories returns the article categories accepted by the categories and
// exclude_categories filters.
func Categories() []string {
	return []string{
		"general",
		"business",
		"tech",
		"science",
		"sports",
		"health",
		"entertainment",
	}
}

// Locales returns the two-letter country codes accepted by the locale filter.
func Locales() []string {
	return []string{
		"ar", "am", "au", "at", "by", "be", "bo", "br", "bg", "ca",
		"cl", "cn", "co", "hr", "cz", "ec", "eg", "fr", "de", "gr",
		"hn", "hk", "in", "id", "ir", "ie", "il", "it", "jp", "kr",
		"mx", "nl", "nz", "ni", "pk", "pa", "pe", "pl", "pt", "qa",
		"ro", "ru", "sa", "za", "es", "ch", "sy", "tw", "th", "tr",
		"ua", "gb", "us", "uy", "ve",
	}
}

// Languages returns the ISO language codes accepted by the language filter.
func Languages() []string {
	return []string{
		"ar", "bg", "bn", "cs", "da", "de", "el", "en", "es", "et",
		"fa", "fi", "fr", "he", "hi", "hr", "hu", "id", "it", "ja",
		"ko", "lt", "multi", "nl", "no", "pl", "pt", "ro", "ru", "sk",
		"sv", "ta", "th", "tr", "uk", "vi", "zh",
	}
}
