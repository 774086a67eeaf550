package rtltext

import "github.com/riverfjs/rtltext-go/internal/util"

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Browser text fields (and Twitter's character counting) measure strings in
// UTF-16 code units, not Go string bytes or runes. Characters outside the
// BMP take 2 units; all others take 1.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}

// IsRTLRune reports whether r is in one of the RTL script blocks:
// U+0590-U+083F, U+08A0-U+08FF, U+FB1D-U+FDFF, U+FE70-U+FEFF.
func IsRTLRune(r rune) bool {
	return util.IsRTL(r)
}

// CountRTL counts the code points of text in the RTL script blocks.
func CountRTL(text string) int {
	return util.CountRTL(text)
}

// EffectiveLength 计算去掉 mention 和 URL 之后的有效长度（UTF-16 code units）
//
// 每个 mention 扣除 len(ScreenName)+MentionPadding，每个 URL 扣除
// len(URL)+URLPadding。结果可能为 0 或负数，调用方自己处理。
//
// 参数：
//   - text: 已去除首尾空白的文本
//   - mentions: text 中的 mention
//   - urls: text 中的链接
//   - cfg: 分类配置，如为 nil 则使用默认配置
func EffectiveLength(text string, mentions []Mention, urls []URL, cfg *Config) int {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return util.UTF16Len(text) - discountedLength(mentions, urls, cfg)
}

// discountedLength sums the lengths attributed to mentions and URLs.
func discountedLength(mentions []Mention, urls []URL, cfg *Config) int {
	total := 0
	for _, m := range mentions {
		total += util.UTF16Len(m.ScreenName) + cfg.MentionPadding
	}
	for _, u := range urls {
		total += util.UTF16Len(u.URL) + cfg.URLPadding
	}
	return total
}
