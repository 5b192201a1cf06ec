// Package cmd command line of gdeque
package cmd

import (
	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/Laisky/go-deque/config"
	"github.com/Laisky/go-deque/log"
)

var rootCmd = &cobra.Command{
	Use:   "gdeque",
	Short: "double-ended queues and the sorts that feed them",
	Long: `gdeque benchmarks the deque stores and the sorting algorithms,
and reverses items through a reversible deque.

	gdeque bench sort --lengths 10,100,1000
	gdeque reverse --store linked a b c`,
	Args:              NoExtraArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setupRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		_ = log.Shared.Sync()
	}()

	if err := rootCmd.Execute(); err != nil {
		log.Shared.Fatal("run command", zap.Error(err))
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "debug")
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file, yaml or json with comments")
	if err := config.Shared.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.Shared.Panic("bind flags", zap.Error(err))
	}
}

// setupRoot load config file and set logger level,
// runs after flags are parsed
func setupRoot(_ *cobra.Command, _ []string) error {
	if fpath := config.Shared.GetString("config"); fpath != "" {
		if err := config.Shared.LoadFromFile(fpath); err != nil {
			return errors.Wrap(err, "load config")
		}
	}

	if config.Shared.GetBool("debug") {
		if err := log.Shared.ChangeLevel(log.LevelDebug); err != nil {
			return errors.Wrap(err, "change logger level to debug")
		}
	}

	return nil
}

// NoExtraArgs make sure every args has been processed
//
// do not allow any un processed args
func NoExtraArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return errors.Errorf("unknown args `%v`", args)
	}

	return nil
}
