// Package rtltext 根据 RTL 字符所占比例判断一段用户输入是否应该从右向左显示
//
// 这个包只负责分类：输入框的 keyup/keydown 绑定、手动切换方向、插入方向标记
// 等 UI 逻辑都由调用方完成，调用方拿到结果后设置元素的 dir 属性即可。
//
// 判断规则：
//   - RTL 字符指 Hebrew、Arabic、Syriac、Thaana、N'Ko、Samaritan 及其扩展和
//     presentation forms 区块内的 code point
//   - @mention 和 URL 不算有效内容，从长度中扣除
//   - RTL 字符数 / 有效长度 > 0.3 时判定为 RTL
//   - 输入为空（或只有空白和 #）时使用默认方向
//
// 分类函数是纯函数，没有全局可变状态，可以在任意 goroutine 中并发调用。
//
// 示例：
//
//	if rtltext.ShouldBeRTL(text, rtltext.LTR, placeholder) {
//	    field.SetAttribute("dir", "rtl")
//	}
//
//	dir := rtltext.Detect("מה קורה", rtltext.LTR, "")
//	fmt.Println(dir) // rtl
package rtltext

// ShouldBeRTL 判断 text 是否应该以 RTL 方向显示
//
// 参数：
//   - text: 输入框的完整内容
//   - defaultDir: 没有文本时使用的方向
//   - excludedText: 需要先去掉的占位文本，空字符串表示没有
//   - opts: 可选配置（阈值、extractor）
//
// 返回：
//   - bool: true 表示 RTL
func ShouldBeRTL(text string, defaultDir Direction, excludedText string, opts ...Option) bool {
	return Analyze(text, defaultDir, excludedText, opts...).RTL
}

// Detect is ShouldBeRTL mapped onto a Direction.
func Detect(text string, defaultDir Direction, excludedText string, opts ...Option) Direction {
	return directionOf(ShouldBeRTL(text, defaultDir, excludedText, opts...))
}
