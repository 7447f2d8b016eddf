package port

// LanguageProvider bundles the language-specific capabilities of the
// counting pipeline: tokenization, stemming and the stopword set.
type LanguageProvider interface {
	// Code returns the ISO 639-1 code of the language, e.g. "en".
	Code() string

	// Name returns the English name of the language, e.g. "English".
	Name() string

	// Tokenize splits text into an ordered sequence of surface-form tokens.
	Tokenize(text string) []string

	// Stem reduces each token to its stem. The result has the same length
	// and order as the input.
	Stem(tokens []string) []string

	// Stopwords returns the lowercase stopword set of the language. The
	// returned map is shared and must not be modified.
	Stopwords() map[string]struct{}
}

// ProviderResolver resolves language codes to registered providers.
type ProviderResolver interface {
	// Provider returns the provider registered for code. The second return
	// is false when the code is unknown.
	Provider(code string) (LanguageProvider, bool)

	// Codes returns the registered language codes in sorted order.
	Codes() []string
}
