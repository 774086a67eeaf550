package types

// Mention 表示文本中的一个 @ 提及
//
// Offset 和 Length 以 UTF-16 code units 计，覆盖包括 @ 在内的整个匹配。
type Mention struct {
	ScreenName string `json:"screen_name"`
	ListSlug   string `json:"list_slug,omitempty"`
	Offset     int    `json:"offset"`
	Length     int    `json:"length"`
}

// URL 表示文本中识别出的一个链接
type URL struct {
	URL    string `json:"url"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// ToDict 将 Mention 转换为 map
func (m Mention) ToDict() map[string]interface{} {
	result := map[string]interface{}{
		"screen_name": m.ScreenName,
		"offset":      m.Offset,
		"length":      m.Length,
	}
	if m.ListSlug != "" {
		result["list_slug"] = m.ListSlug
	}
	return result
}

// ToDict 将 URL 转换为 map
func (u URL) ToDict() map[string]interface{} {
	return map[string]interface{}{
		"url":    u.URL,
		"offset": u.Offset,
		"length": u.Length,
	}
}

// Config 分类配置
type Config struct {
	// Threshold RTL 字符占有效长度的比例，严格大于该值才判定为 RTL
	Threshold float64
	// MentionPadding 每个 mention 在 screen name 之外额外扣除的长度（@ 符号）
	MentionPadding int
	// URLPadding 每个 URL 在链接本身之外额外扣除的长度
	URLPadding int
}

// DefaultClassifyConfig 返回默认分类配置
func DefaultClassifyConfig() *Config {
	return &Config{
		Threshold:      0.3,
		MentionPadding: 1,
		URLPadding:     2,
	}
}
