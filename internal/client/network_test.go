package client

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-kit/log/level"
)

func TestChannelFraming(t *testing.T) {
	a, b := net.Pipe()
	left, right := NewChannel(a), NewChannel(b)
	defer left.Close()
	defer right.Close()

	payloads := [][]byte{[]byte("hello"), {}, bytes.Repeat([]byte{0xAB}, 70000)}
	go func() {
		for _, p := range payloads {
			if err := left.Write(p); err != nil {
				t.Errorf("Write: %v", err)
				return
			}
		}
	}()
	for i, want := range payloads {
		got, err := right.Read()
		if err != nil {
			t.Fatalf("Read %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("payload %d: got %d bytes, want %d", i, len(got), len(want))
		}
	}
}

func TestChannelRejectsOversizedFrame(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	ch := NewChannel(b)
	defer ch.Close()

	go func() {
		var hdr [4]byte
		binary.BigEndian.PutUint32(hdr[:], MaxPacketSize+1)
		_, _ = a.Write(hdr[:])
	}()
	if _, err := ch.Read(); !errors.Is(err, ErrPacketTooLarge) {
		t.Fatalf("err = %v, want ErrPacketTooLarge", err)
	}

	if err := ch.Write(make([]byte, MaxPacketSize+1)); !errors.Is(err, ErrPacketTooLarge) {
		t.Fatalf("Write err = %v, want ErrPacketTooLarge", err)
	}
}

func TestChannelShortReadIsAnError(t *testing.T) {
	a, b := net.Pipe()
	ch := NewChannel(b)
	defer ch.Close()

	go func() {
		var hdr [4]byte
		binary.BigEndian.PutUint32(hdr[:], 10)
		_, _ = a.Write(hdr[:])
		_, _ = a.Write([]byte("abc"))
		_ = a.Close()
	}()
	if _, err := ch.Read(); err == nil {
		t.Fatalf("expected an error for a truncated body")
	}
}

func TestDialWithRetry(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			_ = conn.Close()
		}
	}()

	cfg := DefaultConfig()
	ch, err := DialWithRetry(context.Background(), cfg, ln.Addr().String(), nil)
	if err != nil {
		t.Fatalf("DialWithRetry: %v", err)
	}
	_ = ch.Close()
}

func TestDialWithRetryGivesUp(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	cfg := DefaultConfig()
	cfg.DialRetries = 2
	cfg.RetryInterval = time.Millisecond
	var buf bytes.Buffer
	logger := level.NewFilter(newTestLogger(&buf), level.AllowAll())

	if _, err := DialWithRetry(context.Background(), cfg, addr, logger); err == nil {
		t.Fatalf("expected dial to fail")
	}
	if n := strings.Count(buf.String(), "dial failed"); n != 3 {
		t.Fatalf("logged %d failures, want 3:\n%s", n, buf.String())
	}

	cfg.Proto = "carrier-pigeon"
	if _, err := DialWithRetry(context.Background(), cfg, addr, nil); !errors.Is(err, ErrUnsupportedProto) {
		t.Fatalf("err = %v, want ErrUnsupportedProto", err)
	}
}

func TestConfigValidate(t *testing.T) {
	good := DefaultConfig()
	if err := good.Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}
	for name, mutate := range map[string]func(*Config){
		"proto":    func(c *Config) { c.Proto = "udp" },
		"retries":  func(c *Config) { c.DialRetries = -1 },
		"interval": func(c *Config) { c.RetryInterval = -time.Second },
		"level":    func(c *Config) { c.LogLevel = "loud" },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected a validation error", name)
		}
	}
}

func TestNewPlayerLogger(t *testing.T) {
	dir := t.TempDir()
	logger, closer, err := NewPlayerLogger(dir, "bob", "info")
	if err != nil {
		t.Fatalf("NewPlayerLogger: %v", err)
	}
	_ = level.Debug(logger).Log("msg", "hidden")
	_ = level.Info(logger).Log("msg", "move sent", "took_ms", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "AI-bob.log"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `msg="move sent"`) || !strings.Contains(out, "took_ms=3") {
		t.Fatalf("log file missing entry:\n%s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry written at info level:\n%s", out)
	}

	if _, _, err := NewPlayerLogger(dir, "bob", "shout"); err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
	if got := LogFileName("team/a"); got != "AI-team_a.log" {
		t.Fatalf("LogFileName = %q", got)
	}
}
