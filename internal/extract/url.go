package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/rtltext-go/internal/parser"
	"github.com/riverfjs/rtltext-go/internal/types"
	"github.com/riverfjs/rtltext-go/internal/util"
)

var (
	// urlRe 匹配带协议的链接和裸域名
	//
	// 分组：1 协议，2 域名，3 顶级域名，4 端口，5 路径
	urlRe = regexp.MustCompile(
		`(?i)(https?://)?((?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+([a-z]{2,63}))` +
			`(:\d{1,5})?(/[^\s"'<>]*)?`,
	)

	// genericTLDs 不带协议、不带路径也算链接的顶级域名
	genericTLDs = map[string]bool{
		"com": true, "net": true, "org": true, "edu": true, "gov": true,
		"mil": true, "int": true, "info": true, "biz": true, "name": true,
		"io": true, "ai": true, "app": true, "dev": true, "me": true,
		"co": true, "tv": true, "ly": true, "xyz": true, "online": true,
		"site": true, "news": true, "blog": true, "shop": true,
	}
)

// urlSpan 链接在原文中的字节区间
type urlSpan struct {
	start int
	end   int
}

// URLs 按出现顺序返回 text 中识别出的所有链接
//
// 先用 goldmark 的 Linkify 识别（每行去掉行首缩进后解析），再用正则补上
// Linkify 不会触发的位置：紧跟在引号、冒号等字符后面的链接，以及裸域名。
// URL 字段保存原文中匹配到的文本，不补全协议。
func URLs(text string) []types.URL {
	urls := make([]types.URL, 0)
	if text == "" {
		return urls
	}

	spans := linkifySpans(text)
	spans = append(spans, fallbackSpans(text, spans)...)
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	for _, s := range spans {
		urls = append(urls, types.URL{
			URL:    text[s.start:s.end],
			Offset: util.UTF16Len(text[:s.start]),
			Length: util.UTF16Len(text[s.start:s.end]),
		})
	}
	return urls
}

// linkifySpans 把 goldmark 识别出的链接文本按顺序定位回原文
func linkifySpans(text string) []urlSpan {
	spans := make([]urlSpan, 0)
	cursor := 0
	for _, label := range parser.Links(text) {
		if label == "" {
			continue
		}
		idx := strings.Index(text[cursor:], label)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		spans = append(spans, urlSpan{start: start, end: start + len(label)})
		cursor = start + len(label)
	}
	return spans
}

// fallbackSpans 返回正则识别出、且和 known 不重叠的链接
func fallbackSpans(text string, known []urlSpan) []urlSpan {
	spans := make([]urlSpan, 0)
	for _, m := range urlRe.FindAllStringSubmatchIndex(text, -1) {
		start := m[0]
		hasProtocol := m[2] >= 0
		if !validURLPreceding(text[:start], hasProtocol) {
			continue
		}

		end := m[1]
		path := ""
		if m[10] >= 0 {
			path = trimURLPath(text[m[10]:m[11]])
			end = m[10] + len(path)
		}

		if !hasProtocol {
			tld := strings.ToLower(text[m[6]:m[7]])
			if !genericTLDs[tld] && (len(tld) != 2 || path == "") {
				continue
			}
		}

		span := urlSpan{start: start, end: end}
		if overlaps(span, known) {
			continue
		}
		spans = append(spans, span)
	}
	return spans
}

// validURLPreceding 检查链接前一个字符
//
// 字母、数字、@、$、# 后面不算链接；不带协议时 - _ . / 后面也不算。
func validURLPreceding(before string, hasProtocol bool) bool {
	if before == "" {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(before)
	switch {
	case r < utf8.RuneSelf && (isASCIIAlnum(byte(r)) || strings.ContainsRune("@$#", r)):
		return false
	case r == '＠' || r == '＃' || (r >= 0x202A && r <= 0x202E):
		return false
	case !hasProtocol && strings.ContainsRune("-_./", r):
		return false
	}
	return true
}

// trimURLPath 去掉路径末尾的标点；右括号只在不配对时去掉
func trimURLPath(path string) string {
	for {
		trimmed := strings.TrimRight(path, ".,:;!?")
		if strings.HasSuffix(trimmed, ")") && strings.Count(trimmed, "(") < strings.Count(trimmed, ")") {
			trimmed = trimmed[:len(trimmed)-1]
		}
		if trimmed == path {
			return path
		}
		path = trimmed
	}
}

func overlaps(span urlSpan, known []urlSpan) bool {
	for _, k := range known {
		if span.start < k.end && k.start < span.end {
			return true
		}
	}
	return false
}

func isASCIIAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
