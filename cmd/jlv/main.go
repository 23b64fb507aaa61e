package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jlv/internal/config"
	"jlv/internal/ui"
	"jlv/internal/util/logx"
	"jlv/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Println("jlv", version.String())
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logx.Infof("starting jlv %s: %s", version.String(), cfg.String())
	if err := ui.Run(ctx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
