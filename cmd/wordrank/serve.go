package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordrank/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve msgpack requests over stdin/stdout",
	Long: `serve trains the classifier and then answers classify, analyze and
compare requests read from stdin, writing one msgpack response per request to
stdout. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		showStartupInfo(env)
		srv := server.NewServer(env.classifier, env.config, os.Stdin, os.Stdout)
		return srv.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(env *environment) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println(" WordRank ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("corpus files: %d", len(env.files))
	log.Infof("classifier words: %d", env.classifier.Count())
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
