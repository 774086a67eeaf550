package rtltext

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// maxLineSize 单行最大字节数
const maxLineSize = 1024 * 1024

// LineResult 是批量处理中单条文本的分类结果
type LineResult struct {
	// Line 从 1 开始的行号（ClassifyAll 中为下标 + 1）
	Line      int
	Text      string
	Direction Direction
	Analysis  Analysis
}

// ClassifyAll 逐条分类 texts，每条文本互相独立
//
// ctx 被取消时返回已完成的结果和 ctx.Err()。
func ClassifyAll(
	ctx context.Context,
	texts []string,
	defaultDir Direction,
	excludedText string,
	opts ...Option,
) ([]LineResult, error) {
	results := make([]LineResult, 0, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, classifyLine(i+1, text, defaultDir, excludedText, opts...))
	}
	return results, nil
}

// ClassifyLines 从 r 中按行读取文本并逐行分类
//
// 行尾的 "\r\n" 和 "\n" 会被去掉；非法 UTF-8 字节替换为 U+FFFD 并记录日志。
// ctx 被取消时返回已完成的结果和 ctx.Err()。
func ClassifyLines(
	ctx context.Context,
	r io.Reader,
	defaultDir Direction,
	excludedText string,
	opts ...Option,
) ([]LineResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	results := make([]LineResult, 0)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if !utf8.ValidString(line) {
			Logger.Printf("line %d: invalid UTF-8, replacing bad bytes", lineNo)
			line = strings.ToValidUTF8(line, string(utf8.RuneError))
		}
		results = append(results, classifyLine(lineNo, line, defaultDir, excludedText, opts...))
	}
	if err := scanner.Err(); err != nil {
		return results, fmt.Errorf("read line %d: %w", lineNo+1, err)
	}
	return results, nil
}

// classifyLine 分类单行文本
func classifyLine(lineNo int, text string, defaultDir Direction, excludedText string, opts ...Option) LineResult {
	analysis := Analyze(text, defaultDir, excludedText, opts...)
	return LineResult{
		Line:      lineNo,
		Text:      text,
		Direction: analysis.Direction(),
		Analysis:  analysis,
	}
}
