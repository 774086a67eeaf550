package rtltext

import (
	"strings"

	"github.com/riverfjs/rtltext-go/internal/util"
)

// Rule names the step of the classification that produced the result.
type Rule int

const (
	// RuleEmpty: nothing but whitespace and '#' left, the default direction wins.
	RuleEmpty Rule = iota
	// RuleNoRTL: the text has no RTL characters at all.
	RuleNoRTL
	// RuleNoContent: mentions and URLs account for the whole text.
	RuleNoContent
	// RuleRatio: decided by comparing the RTL ratio with the threshold.
	RuleRatio
)

// String returns the string representation of Rule.
func (r Rule) String() string {
	switch r {
	case RuleEmpty:
		return "empty"
	case RuleNoRTL:
		return "no-rtl"
	case RuleNoContent:
		return "no-content"
	case RuleRatio:
		return "ratio"
	default:
		return "unknown"
	}
}

// Analysis is the outcome of one classification with its intermediate values.
// Lengths are in UTF-16 code units.
type Analysis struct {
	RTL             bool
	Rule            Rule
	RTLCount        int
	TrimmedLength   int
	DiscountLength  int
	EffectiveLength int
	Ratio           float64
	Threshold       float64
	Mentions        []Mention
	URLs            []URL
}

// Direction returns the analysed direction.
func (a Analysis) Direction() Direction {
	return directionOf(a.RTL)
}

// Analyze 判断 text 是否应该以 RTL 方向显示，并返回中间结果
//
// 步骤：
// 1. 在原始文本（未去除 excludedText）中统计 RTL 字符数
// 2. 去除 excludedText 的第一次出现（字面量替换，不是正则）
// 3. 去除首尾空白
// 4. 只剩空白和 '#' 时返回 defaultDir
// 5. 没有 RTL 字符时返回 LTR
// 6. 在剩余文本中提取 mention 和 URL，从长度中扣除
// 7. 有效长度 > 0 且 RTL 比例严格大于阈值时返回 RTL
//
// 参数：
//   - text: 输入框的完整内容，可以为空
//   - defaultDir: 没有文本时使用的方向
//   - excludedText: 调用方之前插入的占位文本，空字符串表示没有
//   - opts: 阈值和 extractor 配置
func Analyze(text string, defaultDir Direction, excludedText string, opts ...Option) Analysis {
	options := applyOptions(opts...)
	cfg := options.Config

	result := Analysis{
		Threshold: cfg.Threshold,
		RTLCount:  util.CountRTL(text),
	}

	plainText := text
	if excludedText != "" {
		plainText = strings.Replace(plainText, excludedText, "", 1)
	}
	trimmedText := util.TrimSpace(plainText)
	result.TrimmedLength = util.UTF16Len(trimmedText)

	if trimmedText == "" || strings.ReplaceAll(trimmedText, "#", "") == "" {
		result.Rule = RuleEmpty
		result.RTL = defaultDir == RTL
		return result
	}

	if result.RTLCount == 0 {
		result.Rule = RuleNoRTL
		return result
	}

	result.Mentions = options.Mentions.ExtractMentions(trimmedText)
	result.URLs = options.URLs.ExtractURLs(trimmedText)
	result.DiscountLength = discountedLength(result.Mentions, result.URLs, cfg)
	result.EffectiveLength = result.TrimmedLength - result.DiscountLength

	if result.EffectiveLength <= 0 {
		result.Rule = RuleNoContent
		return result
	}

	result.Rule = RuleRatio
	result.Ratio = float64(result.RTLCount) / float64(result.EffectiveLength)
	result.RTL = result.Ratio > cfg.Threshold
	return result
}
