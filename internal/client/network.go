package client

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	kcp "github.com/xtaci/kcp-go/v5"
	"golang.org/x/time/rate"
)

var (
	// ErrPacketTooLarge 长度前缀超过 MaxPacketSize
	ErrPacketTooLarge = errors.New("packet too large")
	// ErrUnsupportedProto 未知的传输协议
	ErrUnsupportedProto = errors.New("unsupported protocol")
)

// Channel 按 4 字节大端长度前缀收发消息的连接
type Channel struct {
	conn net.Conn

	closeOnce sync.Once
	closeErr  error
}

// NewChannel 包装已建立的连接
func NewChannel(conn net.Conn) *Channel {
	return &Channel{conn: conn}
}

// Dial 连接到服务器
func Dial(ctx context.Context, proto, addr string) (*Channel, error) {
	conn, err := dial(ctx, proto, addr)
	if err != nil {
		return nil, err
	}
	return NewChannel(conn), nil
}

func dial(ctx context.Context, proto, addr string) (net.Conn, error) {
	switch proto {
	case "", "tcp":
		d := net.Dialer{Timeout: DialTimeout}
		return d.DialContext(ctx, "tcp", addr)
	case "kcp":
		conn, err := kcp.DialWithOptions(addr, nil, 0, 0)
		if err != nil {
			return nil, err
		}
		conn.SetStreamMode(true)
		return conn, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProto, proto)
	}
}

// DialWithRetry 连接失败时按 cfg.RetryInterval 重试 cfg.DialRetries 次
func DialWithRetry(ctx context.Context, cfg Config, addr string, logger log.Logger) (*Channel, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	every := rate.Inf
	if cfg.RetryInterval > 0 {
		every = rate.Every(cfg.RetryInterval)
	}
	limiter := rate.NewLimiter(every, 1)

	var lastErr error
	for attempt := 1; attempt <= cfg.DialRetries+1; attempt++ {
		if err := limiter.Wait(ctx); err != nil {
			if lastErr != nil {
				return nil, fmt.Errorf("%w (last dial error: %v)", err, lastErr)
			}
			return nil, err
		}
		ch, err := Dial(ctx, cfg.Proto, addr)
		if err == nil {
			return ch, nil
		}
		if errors.Is(err, ErrUnsupportedProto) {
			return nil, err
		}
		lastErr = err
		_ = level.Warn(logger).Log("msg", "dial failed", "addr", addr, "attempt", attempt, "err", err)
	}
	return nil, lastErr
}

// Read 读取一条完整消息。连接中断或消息被截断都返回错误。
func (c *Channel) Read() ([]byte, error) {
	var length uint32
	if err := binary.Read(c.conn, binary.BigEndian, &length); err != nil {
		return nil, fmt.Errorf("read length: %w", err)
	}
	if length > MaxPacketSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPacketTooLarge, length)
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(c.conn, data); err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

// Write 发送一条消息，长度前缀与消息体一次写出
func (c *Channel) Write(data []byte) error {
	if len(data) > MaxPacketSize {
		return fmt.Errorf("%w: %d bytes", ErrPacketTooLarge, len(data))
	}
	frame := make([]byte, 4+len(data))
	binary.BigEndian.PutUint32(frame, uint32(len(data)))
	copy(frame[4:], data)
	if _, err := c.conn.Write(frame); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Close 关闭连接，可重复调用
func (c *Channel) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

func (c *Channel) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}
