package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-kit/log/level"

	"bombman/internal/client"
	"bombman/internal/config"
	"bombman/internal/record"
	"bombman/pkg/ai"
)

const usage = "Usage: client [flags] <host> <port> <playername>"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML 配置文件")
	proto := fs.String("proto", "", "传输协议 tcp / kcp（覆盖配置文件）")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 3 {
		fmt.Fprintln(stdout, usage)
		return 2
	}
	host, name := fs.Arg(0), fs.Arg(2)
	port, err := strconv.Atoi(fs.Arg(1))
	if err != nil || port <= 0 || port > 65535 {
		fmt.Fprintf(stderr, "invalid port %q\n", fs.Arg(1))
		fmt.Fprintln(stdout, usage)
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "load config: %v\n", err)
			return 1
		}
	}
	if *proto != "" {
		cfg.Client.Proto = *proto
		if err := cfg.Client.Validate(); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	fmt.Fprintf(stdout, "Starting client, my name is %s\n", name)
	logger, closer, err := client.NewPlayerLogger(cfg.Client.LogDir, name, cfg.Client.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "open log: %v\n", err)
		return 1
	}
	defer closer.Close()

	policy, err := ai.NewPolicy(&cfg.AI, logger)
	if err != nil {
		_ = level.Error(logger).Log("msg", "build policy", "err", err)
		fmt.Fprintf(stderr, "build policy: %v\n", err)
		return 1
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	ch, err := client.DialWithRetry(ctx, cfg.Client, addr, logger)
	if err != nil {
		_ = level.Error(logger).Log("msg", "unexpected error when opening channel", "addr", addr, "err", err)
		fmt.Fprintf(stdout, "Cannot connect to %s at port %d. Please make sure the server is running.\n", host, port)
		return 1
	}
	_ = level.Info(logger).Log("msg", "connected", "addr", ch.RemoteAddr(), "proto", cfg.Client.Proto, "preset", cfg.Preset)

	var opts []client.BotOption
	if cfg.Client.RecordDir != "" {
		opts = append(opts, client.WithRecorder(record.NewRecorder(cfg.Client.RecordDir)))
	}
	bot := client.NewBot(name, ch, policy, logger, opts...)
	if err := bot.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}
		_ = level.Error(logger).Log("msg", "session ended", "turns", bot.Turns(), "err", err)
		fmt.Fprintf(stderr, "session ended: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, "closing connection")
	return 0
}
