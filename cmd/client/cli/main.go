package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/draftkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/draftkeeper/internal/client/cli"
	"github.com/dmitrijs2005/draftkeeper/internal/client/config"
	"github.com/dmitrijs2005/draftkeeper/internal/filex"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logPath, err := filex.EnsureParentDir(cfg.LogFile)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger, closer := logging.NewFileLogger(logging.FileOptions{
		Path:       logPath,
		MaxSizeMB:  10,
		MaxBackups: 3,
		Level:      slog.LevelInfo,
	})
	defer closer.Close()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
