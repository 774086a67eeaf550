package rtltext

import (
	"github.com/riverfjs/rtltext-go/internal/extract"
	"github.com/riverfjs/rtltext-go/internal/types"
)

// 导出类型别名
type Mention = types.Mention
type URL = types.URL

// MentionExtractor finds the @-mentions of a text.
//
// Implementations must be pure: same input, same output, no side effects.
type MentionExtractor interface {
	ExtractMentions(text string) []Mention
}

// URLExtractor finds the URLs of a text. Same purity contract as
// MentionExtractor.
type URLExtractor interface {
	ExtractURLs(text string) []URL
}

// MentionExtractorFunc adapts a plain function to MentionExtractor.
type MentionExtractorFunc func(text string) []Mention

// ExtractMentions calls f(text).
func (f MentionExtractorFunc) ExtractMentions(text string) []Mention {
	return f(text)
}

// URLExtractorFunc adapts a plain function to URLExtractor.
type URLExtractorFunc func(text string) []URL

// ExtractURLs calls f(text).
func (f URLExtractorFunc) ExtractURLs(text string) []URL {
	return f(text)
}

// DefaultMentionExtractor returns the Twitter-style @-mention extractor.
func DefaultMentionExtractor() MentionExtractor {
	return MentionExtractorFunc(extract.Mentions)
}

// DefaultURLExtractor returns the goldmark Linkify based URL extractor.
func DefaultURLExtractor() URLExtractor {
	return URLExtractorFunc(extract.URLs)
}

// ExtractMentions runs the default mention extractor.
func ExtractMentions(text string) []Mention {
	return extract.Mentions(text)
}

// ExtractMentionsOrLists is ExtractMentions plus @user/list-slug references.
func ExtractMentionsOrLists(text string) []Mention {
	return extract.MentionsOrLists(text)
}

// ExtractURLs runs the default URL extractor.
func ExtractURLs(text string) []URL {
	return extract.URLs(text)
}
