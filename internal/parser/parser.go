package parser

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// linkifyParser 共享的解析器实例，goldmark 的 Parser 可以并发复用
var linkifyParser = LinkifyParser()

// LinkifyParser 只识别段落和裸链接的 goldmark 解析器
//
// 输入按纯文本处理：标题、强调等 Markdown 语法都不生效，每一段文本都是普通段落。
func LinkifyParser() parser.Parser {
	return parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(extension.NewLinkifyParser(), 999),
		),
	)
}

// ParseAST 解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	reader := text.NewReader(source)
	return linkifyParser.Parse(reader)
}

// Unindent 去掉每一行行首的空格和 tab
//
// 行首缩进 4 个以上空格的行不会再被当成代码块丢掉。去掉的只是行首空白，
// 链接文本本身在结果中和原文逐字节相同。
func Unindent(text string) string {
	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, " \t")
	}
	return strings.Join(lines, "")
}

// Links 按出现顺序返回 text 中所有 URL 类型 AutoLink 的匹配文本
//
// 邮箱地址（ast.AutoLinkEmail）不算链接，直接跳过。
func Links(text string) []string {
	source := []byte(Unindent(text))
	node := ParseAST(source)
	links := make([]string, 0)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := n.(*ast.AutoLink); ok {
			if link.AutoLinkType == ast.AutoLinkURL {
				links = append(links, string(link.Label(source)))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return links
}
