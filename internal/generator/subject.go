package generator

// fallbackSubject is used when no topic is given and no key terms exist.
const fallbackSubject = "the given content"

// ResolveSubject derives the phrase substituted into assignment templates.
// An explicit non-empty topic wins verbatim; otherwise the top-ranked key
// term is wrapped as "the concept of X", with a neutral fallback for text
// that yields no terms.
func (e *Engine) ResolveSubject(text, topic string) string {
	if topic != "" {
		return topic
	}
	terms := e.analyzer.ExtractKeyTerms(text)
	if len(terms) > 0 {
		return "the concept of " + terms[0].Text
	}
	return fallbackSubject
}
