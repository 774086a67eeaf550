package extract

import (
	"regexp"
	"strings"

	"github.com/riverfjs/rtltext-go/internal/types"
	"github.com/riverfjs/rtltext-go/internal/util"
)

var (
	// mentionRe 匹配 @screen_name 和 @screen_name/list-slug
	//
	// 分组：1 前导字符（或 RT: 前缀），2 @ 符号，3 screen name，4 /list-slug
	mentionRe = regexp.MustCompile(
		`(^|[^a-zA-Z0-9_!#$%&*@＠]|(?:^|[^a-zA-Z0-9_+~.-])(?:rt|RT):?)` +
			`([@＠])([a-zA-Z0-9_]{1,20})(/[a-zA-Z][a-zA-Z0-9_\-]{0,24})?`,
	)

	// mentionEndRe 匹配 mention 之后不允许出现的内容：另一个 @、带重音的拉丁字母、://
	mentionEndRe = regexp.MustCompile(`^(?:[@＠]|[\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{024F}\x{1E00}-\x{1EFF}]|://)`)
)

// Mentions 按出现顺序返回 text 中所有合法的 @ 提及
//
// @user/list-slug 形式的列表引用不算 mention；需要列表时用 MentionsOrLists。
func Mentions(text string) []types.Mention {
	mentions := make([]types.Mention, 0)
	for _, m := range MentionsOrLists(text) {
		if m.ListSlug == "" {
			mentions = append(mentions, m)
		}
	}
	return mentions
}

// MentionsOrLists 按出现顺序返回 text 中所有 @ 提及和 @user/list-slug 列表引用
func MentionsOrLists(text string) []types.Mention {
	mentions := make([]types.Mention, 0)
	if !strings.ContainsAny(text, "@＠") {
		return mentions
	}

	for _, m := range mentionRe.FindAllStringSubmatchIndex(text, -1) {
		end := m[1]
		if mentionEndRe.MatchString(text[end:]) {
			continue
		}

		atStart := m[4]
		mention := types.Mention{
			ScreenName: text[m[6]:m[7]],
			Offset:     util.UTF16Len(text[:atStart]),
			Length:     util.UTF16Len(text[atStart:end]),
		}
		if m[8] >= 0 {
			// strip the leading '/'
			mention.ListSlug = text[m[8]+1 : m[9]]
		}
		mentions = append(mentions, mention)
	}
	return mentions
}
