package client

import (
	"fmt"
	"time"
)

// ===== 网络配置 =====
const (
	// 单条消息上限，长度前缀超过此值视为协议错误
	MaxPacketSize = 1 << 20

	// 建立 TCP 连接的超时
	DialTimeout = 5 * time.Second

	// 默认传输协议
	DefaultProto = "tcp"

	// 默认日志目录，每个玩家一个 AI-<name>.log
	DefaultLogDir = "logs"
)

// Config 客户端配置（来自 YAML 文件与命令行）
type Config struct {
	// Proto 传输协议：tcp 或 kcp
	Proto string `yaml:"proto"`

	// DialRetries 首次连接失败后的重试次数，RetryInterval 为重试间隔
	DialRetries   int           `yaml:"dial_retries"`
	RetryInterval time.Duration `yaml:"retry_interval"`

	LogDir   string `yaml:"log_dir"`
	LogLevel string `yaml:"log_level"`

	// RecordDir 非空时把每回合决策写入 parquet
	RecordDir string `yaml:"record_dir"`
}

// DefaultConfig 返回默认客户端配置
func DefaultConfig() Config {
	return Config{
		Proto:         DefaultProto,
		RetryInterval: time.Second,
		LogDir:        DefaultLogDir,
		LogLevel:      "info",
	}
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	switch c.Proto {
	case "", "tcp", "kcp":
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedProto, c.Proto)
	}
	if c.DialRetries < 0 {
		return fmt.Errorf("dial_retries must not be negative, got %d", c.DialRetries)
	}
	if c.RetryInterval < 0 {
		return fmt.Errorf("retry_interval must not be negative, got %s", c.RetryInterval)
	}
	if _, err := levelOption(c.LogLevel); err != nil {
		return err
	}
	return nil
}
