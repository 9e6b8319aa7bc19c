package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nstehr/tactician/agent"
	"github.com/nstehr/tactician/ipc"
	"github.com/nstehr/tactician/rules"
)

const banner = `
 _             _   _      _
| |_ __ _  ___| |_(_) ___(_) __ _ _ __
| __/ _' |/ __| __| |/ __| |/ _' | '_ \
| || (_| | (__| |_| | (__| | (_| | | | |
 \__\__,_|\___|\__|_|\___|_|\__,_|_| |_|

Turn-Based Hero Tactics`

func main() {
	socketPath := flag.String("socket", "/tmp/tactician.sock", "unix socket to listen on")
	configPath := flag.String("config", "", "YAML tuning file (defaults when empty)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(*logLevel),
	}))
	slog.SetDefault(logger)

	fmt.Println(banner)

	slog.Info("starting tactician")

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	engine, err := rules.NewEngine(cfg)
	if err != nil {
		slog.Error("failed to compile rules", "error", err)
		os.Exit(1)
	}

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(*socketPath); err != nil {
		slog.Error("failed to clean up socket", "path", *socketPath, "error", err)
		os.Exit(1)
	}

	listener, err := net.Listen("unix", *socketPath)
	if err != nil {
		slog.Error("failed to listen on socket", "path", *socketPath, "error", err)
		os.Exit(1)
	}
	defer listener.Close()
	defer os.Remove(*socketPath)

	slog.Info("listening on domain socket", "path", *socketPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// SIGHUP reloads the tuning file without dropping connections.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				cfg, err := loadConfig(*configPath)
				if err != nil {
					slog.Error("config reload failed", "path", *configPath, "error", err)
					continue
				}
				if err := engine.Reconfigure(cfg); err != nil {
					slog.Error("rule reload failed", "error", err)
				}
			}
		}
	}()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			slog.Info("new connection accepted")
			go handleConn(conn, engine)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}

func handleConn(conn net.Conn, engine *rules.Engine) {
	c := ipc.NewConnection(conn, nil)
	a := agent.New(c, engine)
	c.RegisterHandler(ipc.TypeHello, a.HandleHello)
	c.RegisterHandler(ipc.TypeGameState, a.HandleGameState)
	c.ReadLoop()
}

func loadConfig(path string) (rules.Config, error) {
	if path == "" {
		return rules.DefaultConfig(), nil
	}
	return rules.LoadConfig(path)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
