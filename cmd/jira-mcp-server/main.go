package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SunWooBang/jira-mcp-server/internal/config"
	"github.com/SunWooBang/jira-mcp-server/internal/jira"
	"github.com/SunWooBang/jira-mcp-server/internal/mcp"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	configPath := flag.String(
		"config", config.DefaultConfigPath(), "path to the config file",
	)
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	// stdout carries the MCP protocol; everything else goes to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	client := jira.NewClient(cfg.BaseURL, cfg.Email, cfg.APIToken, log)
	svc := jira.NewService(client)

	// Best-effort credential check; the tracker may be briefly
	// unreachable while the stdio transport is already usable.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if me, err := svc.Myself(ctx); err != nil {
		log.Warn("connection validation failed", "error", err)
	} else {
		log.Info("connected to jira",
			"base_url", cfg.BaseURL,
			"user", me.DisplayName,
		)
	}
	cancel()

	s := mcp.NewServer(svc, cfg, log, version)
	if err := mcp.Serve(s); err != nil {
		log.Error("server terminated", "error", err)
		os.Exit(1)
	}
}
