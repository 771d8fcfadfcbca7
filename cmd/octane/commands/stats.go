package commands

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fivetwenty-io/octane-zsr/pkg/octane"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command group.
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Aggregate stats",
		Long:  "Aggregate one stat over players or teams",
	}

	cmd.AddCommand(newStatsPlayersCommand())
	cmd.AddCommand(newStatsTeamsCommand())

	return cmd
}

func newStatsPlayersCommand() *cobra.Command {
	var (
		filters   filterFlags
		stat      string
		breakdown string
	)

	cmd := &cobra.Command{
		Use:   "players",
		Short: "Aggregate player stats",
		Long:  "Aggregate one stat over players, optionally broken down by events, opponents or teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			split, err := octane.ParseStatsBreakdown(breakdown)
			if err != nil {
				return err
			}

			builder := octane.NewPlayerStats(stat).Breakdown(split)

			err = filters.apply(cmd, filterApplier{
				event:     func(v octane.EventID) { builder.Event(v) },
				stage:     func(v octane.StageID) { builder.Stage(v) },
				match:     func(v octane.MatchID) { builder.Match(v) },
				player:    func(v octane.PlayerID) { builder.Player(v) },
				team:      func(v octane.TeamID) { builder.Team(v) },
				tier:      func(v octane.Tier) { builder.Tier(v) },
				region:    func(v octane.Region) { builder.Region(v) },
				mode:      func(v octane.Mode) { builder.Mode(v) },
				group:     func(v string) { builder.Group(v) },
				bestOf:    func(v octane.BestOf) { builder.BestOf(v) },
				before:    func(v time.Time) { builder.Before(v) },
				after:     func(v time.Time) { builder.After(v) },
				qualifier: func(v bool) { builder.Qualifier(v) },
				winner:    func(v bool) { builder.Winner(v) },
			})
			if err != nil {
				return err
			}

			ep, err := builder.Build()
			if err != nil {
				return fmt.Errorf("invalid filters: %w", err)
			}

			return runStats(cmd, ep, stat)
		},
	}

	filters.register(cmd, filterEvent|filterStage|filterMatch|filterPlayer|filterTeam|filterTier|
		filterRegion|filterMode|filterGroup|filterBestOf|filterBefore|filterAfter|filterQualifier|filterWinner)
	cmd.Flags().StringVar(&stat, "stat", "", "stat to aggregate, e.g. goals (required)")
	cmd.Flags().StringVar(&breakdown, "breakdown", "", "split by events, opponents or teams")
	_ = cmd.MarkFlagRequired("stat")

	return cmd
}

func newStatsTeamsCommand() *cobra.Command {
	var (
		filters   filterFlags
		stat      string
		breakdown string
	)

	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Aggregate team stats",
		Long:  "Aggregate one stat over teams, optionally broken down by events or opponents",
		RunE: func(cmd *cobra.Command, args []string) error {
			split, err := octane.ParseStatsBreakdown(breakdown)
			if err != nil {
				return err
			}

			builder := octane.NewTeamStats(stat).Breakdown(split)

			err = filters.apply(cmd, filterApplier{
				event:     func(v octane.EventID) { builder.Event(v) },
				stage:     func(v octane.StageID) { builder.Stage(v) },
				match:     func(v octane.MatchID) { builder.Match(v) },
				team:      func(v octane.TeamID) { builder.Team(v) },
				tier:      func(v octane.Tier) { builder.Tier(v) },
				region:    func(v octane.Region) { builder.Region(v) },
				mode:      func(v octane.Mode) { builder.Mode(v) },
				group:     func(v string) { builder.Group(v) },
				bestOf:    func(v octane.BestOf) { builder.BestOf(v) },
				before:    func(v time.Time) { builder.Before(v) },
				after:     func(v time.Time) { builder.After(v) },
				qualifier: func(v bool) { builder.Qualifier(v) },
				winner:    func(v bool) { builder.Winner(v) },
			})
			if err != nil {
				return err
			}

			ep, err := builder.Build()
			if err != nil {
				return fmt.Errorf("invalid filters: %w", err)
			}

			return runStats(cmd, ep, stat)
		},
	}

	filters.register(cmd, filterEvent|filterStage|filterMatch|filterTeam|filterTier|filterRegion|
		filterMode|filterGroup|filterBestOf|filterBefore|filterAfter|filterQualifier|filterWinner)
	cmd.Flags().StringVar(&stat, "stat", "", "stat to aggregate, e.g. goals (required)")
	cmd.Flags().StringVar(&breakdown, "breakdown", "", "split by events or opponents")
	_ = cmd.MarkFlagRequired("stat")

	return cmd
}

func runStats(cmd *cobra.Command, ep zsr.Endpoint, stat string) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	stats, err := zsr.Query[zsr.Collection[octane.StatsEntry]](commandContext(cmd), ep, client)
	if err != nil {
		return fmt.Errorf("failed to aggregate stats: %w", err)
	}

	return render(cmd, stats.Inner, func(w io.Writer) error {
		if len(stats.Inner) == 0 {
			_, _ = fmt.Fprintln(w, "No stats found")

			return nil
		}

		rows := make([][]string, 0, len(stats.Inner))
		for _, entry := range stats.Inner {
			value := ""
			if v, ok := entry.Stat(stat); ok {
				value = strconv.FormatFloat(v, 'f', 2, 64)
			}

			rows = append(rows, []string{entryName(entry), value})
		}

		return renderTable(w, []string{"Name", stat}, rows)
	})
}

func entryName(entry octane.StatsEntry) string {
	switch {
	case entry.Player != nil:
		return entry.Player.Tag
	case entry.Team != nil:
		return entry.Team.Name
	default:
		return ""
	}
}
