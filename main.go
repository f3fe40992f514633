package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tupyy/parcm/cmd"
	"github.com/tupyy/parcm/internal/config"
)

func main() {
	cfg := config.NewConfigurationWithOptionsAndDefaults()

	if err := cmd.NewRootCommand(cfg).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_ = zap.L().Sync()
}
