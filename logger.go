package rtltext

import (
	"log"
	"os"
)

// Logger 全局日志记录器
//
// 分类函数本身不写日志，只有批量处理（ClassifyLines 等）会用到。
var Logger = log.New(os.Stderr, "[rtltext] ", log.LstdFlags)

// SetLogger 设置自定义日志记录器
func SetLogger(logger *log.Logger) {
	Logger = logger
}
