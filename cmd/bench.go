package cmd

import (
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/Laisky/go-deque/bench"
	"github.com/Laisky/go-deque/common"
	"github.com/Laisky/go-deque/config"
	"github.com/Laisky/go-deque/log"
)

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.AddCommand(benchSortCmd, benchDequeCmd)

	benchCmd.PersistentFlags().StringP("output", "o", string(bench.OutputText), "report format, text, json, yaml or msgpack")
	benchSortCmd.Flags().IntSlice("lengths", bench.DefaultLengths, "input lengths")
	benchSortCmd.Flags().Int64("seed", 0, "seed of random inputs, current time if not set")
	benchSortCmd.Flags().Bool("desc", false, "sort descending")
	benchSortCmd.Flags().StringSlice("sorters", nil, "only run these sorters")
	benchDequeCmd.Flags().Int("ops", bench.DefaultOps, "operations per workload")

	for key, c := range map[string]*cobra.Command{
		"output":        benchCmd,
		"bench.lengths": benchSortCmd,
		"bench.seed":    benchSortCmd,
		"bench.desc":    benchSortCmd,
		"bench.sorters": benchSortCmd,
		"bench.ops":     benchDequeCmd,
	} {
		if err := bindFlag(key, c); err != nil {
			log.Shared.Panic("bind flag", zap.String("key", key), zap.Error(err))
		}
	}
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "time sorts and deque stores",
	Args:  NoExtraArgs,
}

var benchSortCmd = &cobra.Command{
	Use:   "sort",
	Short: "time every sort against random, ascending and descending inputs",
	Long: `time every sort against random, ascending and descending inputs,
one column per sorter, in microseconds.

	gdeque bench sort --lengths 5,10,50 --seed 42 -o json`,
	Args: NoExtraArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		optfs := []bench.SortOptFunc{
			bench.WithLengths(config.Shared.GetIntSlice("bench.lengths")...),
		}
		if config.Shared.IsSet("bench.seed") {
			optfs = append(optfs, bench.WithSeed(config.Shared.GetInt64("bench.seed")))
		}
		if config.Shared.GetBool("bench.desc") {
			optfs = append(optfs, bench.WithSortOrder(common.SortOrderDesc))
		}
		if config.Shared.IsSet("bench.sorters") {
			optfs = append(optfs, bench.WithSorters(config.Shared.GetStringSlice("bench.sorters")...))
		}

		report, err := bench.RunSort(cmd.Context(), optfs...)
		if err != nil {
			return errors.Wrap(err, "run sort benchmark")
		}

		log.Shared.Debug("sort benchmark done", zap.Int("measurements", len(report.Measurements)))
		return bench.Write(cmd.OutOrStdout(), report, bench.Output(config.Shared.GetString("output")))
	},
}

var benchDequeCmd = &cobra.Command{
	Use:   "deque",
	Short: "time fifo, lifo, churn and reverse workloads on every store",
	Args:  NoExtraArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		report, err := bench.RunDeque(cmd.Context(), bench.WithOps(config.Shared.GetInt("bench.ops")))
		if err != nil {
			return errors.Wrap(err, "run deque benchmark")
		}

		log.Shared.Debug("deque benchmark done", zap.Int("measurements", len(report.Measurements)))
		return bench.Write(cmd.OutOrStdout(), report, bench.Output(config.Shared.GetString("output")))
	},
}

// bindFlag bind the flag named by the last segment of key
func bindFlag(key string, cmd *cobra.Command) error {
	name := key[strings.LastIndex(key, ".")+1:]
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return errors.Errorf("flag %q not found", name)
	}

	return config.Shared.BindPFlag(key, flag)
}
