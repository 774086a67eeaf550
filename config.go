package rtltext

import (
	"sync"

	"github.com/riverfjs/rtltext-go/internal/types"
)

// 导出类型别名
type Config = types.Config

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default classification configuration (singleton).
//
// Threshold 0.3, MentionPadding 1, URLPadding 2. The returned value is shared;
// copy it before changing fields, or use WithThreshold.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultClassifyConfig()
	})
	return defaultConfig
}
