package cmd

import (
	"fmt"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/Laisky/go-deque/config"
	"github.com/Laisky/go-deque/deque"
	"github.com/Laisky/go-deque/log"
)

func init() {
	rootCmd.AddCommand(reverseCmd)
	reverseCmd.Flags().StringP("store", "s", string(deque.KindArray), "backing store, array, linked or ring")
	if err := config.Shared.BindPFlag("reverse.store", reverseCmd.Flags().Lookup("store")); err != nil {
		log.Shared.Panic("bind flag", zap.String("key", "reverse.store"), zap.Error(err))
	}
}

var reverseCmd = &cobra.Command{
	Use:   "reverse [items...]",
	Short: "reverse items through a reversible deque",
	Long: `load items into the chosen store, reverse it in place,
then print the items before and after.

	gdeque reverse --store ring 1 2 3`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := deque.Kind(config.Shared.GetString("reverse.store"))
		before, after, err := reverseItems(kind, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "before: %s\n", strings.Join(before, " "))
		fmt.Fprintf(out, "after:  %s\n", strings.Join(after, " "))
		return nil
	},
}

// reverseItems push items into a reversible deque of kind,
// return its forward order before and after Reverse
func reverseItems(kind deque.Kind, items []string) (before, after []string, err error) {
	capacity := 0
	if kind == deque.KindArray {
		capacity = max(len(items), 1)
	}

	inner, err := deque.New[string](kind, capacity)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "new %s deque", kind)
	}

	d, err := deque.NewReversible(inner)
	if err != nil {
		return nil, nil, errors.Wrap(err, "new reversible deque")
	}

	for _, item := range items {
		if err = d.PushRight(item); err != nil {
			return nil, nil, errors.Wrapf(err, "push %q", item)
		}
	}

	before = deque.Collect(d.Iterator())
	if err = d.Reverse(); err != nil {
		return nil, nil, errors.Wrap(err, "reverse")
	}

	log.Shared.Debug("reversed", zap.String("store", kind.String()), zap.Int("size", d.Size()))
	return before, deque.Collect(d.Iterator()), nil
}
