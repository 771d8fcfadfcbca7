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

// NewRecordsCommand creates the records command group.
func NewRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"record"},
		Short:   "Record performances",
		Long:    "List the best single game or series performances",
	}

	cmd.AddCommand(newRecordsPlayersCommand())
	cmd.AddCommand(newRecordsTeamsCommand())
	cmd.AddCommand(newRecordsSeriesCommand())

	return cmd
}

func newRecordsPlayersCommand() *cobra.Command {
	var (
		filters     filterFlags
		stat        string
		aggregation string
	)

	cmd := &cobra.Command{
		Use:   "players",
		Short: "Player records",
		Long:  "List the best player performances for one stat",
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := octane.ParseAggregationType(aggregation)
			if err != nil {
				return err
			}

			builder := octane.NewPlayerRecords(agg, stat)

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

			return runRecords(cmd, ep)
		},
	}

	filters.register(cmd, filterEvent|filterStage|filterMatch|filterPlayer|filterTeam|filterTier|
		filterRegion|filterMode|filterGroup|filterBestOf|filterBefore|filterAfter|filterQualifier|filterWinner)
	cmd.Flags().StringVar(&stat, "stat", "", "stat to rank by, e.g. score (required)")
	cmd.Flags().StringVar(&aggregation, "type", "game", "aggregate per game or series")
	_ = cmd.MarkFlagRequired("stat")

	return cmd
}

func newRecordsTeamsCommand() *cobra.Command {
	var (
		filters     filterFlags
		stat        string
		aggregation string
	)

	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Team records",
		Long:  "List the best team performances for one stat",
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := octane.ParseAggregationType(aggregation)
			if err != nil {
				return err
			}

			builder := octane.NewTeamRecords(agg, stat)

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

			return runRecords(cmd, ep)
		},
	}

	filters.register(cmd, filterEvent|filterStage|filterMatch|filterTeam|filterTier|filterRegion|
		filterMode|filterGroup|filterBestOf|filterBefore|filterAfter|filterQualifier|filterWinner)
	cmd.Flags().StringVar(&stat, "stat", "", "stat to rank by, e.g. goals (required)")
	cmd.Flags().StringVar(&aggregation, "type", "game", "aggregate per game or series")
	_ = cmd.MarkFlagRequired("stat")

	return cmd
}

func newRecordsSeriesCommand() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Series records",
		Long:  "List the longest series",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := octane.NewSeriesRecords()

			err := filters.apply(cmd, filterApplier{
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
			})
			if err != nil {
				return err
			}

			ep, err := builder.Build()
			if err != nil {
				return fmt.Errorf("invalid filters: %w", err)
			}

			return runRecords(cmd, ep)
		},
	}

	filters.register(cmd, filterEvent|filterStage|filterMatch|filterPlayer|filterTeam|filterTier|
		filterRegion|filterMode|filterGroup|filterBestOf|filterBefore|filterAfter|filterQualifier)

	return cmd
}

func runRecords(cmd *cobra.Command, ep zsr.Endpoint) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	records, err := zsr.Query[zsr.Collection[octane.Record]](commandContext(cmd), ep, client)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	return render(cmd, records.Inner, func(w io.Writer) error {
		if len(records.Inner) == 0 {
			_, _ = fmt.Fprintln(w, "No records found")

			return nil
		}

		rows := make([][]string, 0, len(records.Inner))
		for i, record := range records.Inner {
			holder := ""

			switch {
			case record.Player != nil:
				holder = record.Player.Tag
			case record.Team != nil:
				holder = record.Team.Name
			}

			opponent := ""
			if record.Opponent != nil {
				opponent = record.Opponent.Name
			}

			date := ""
			if record.Game != nil {
				date = formatDate(record.Game.Date)
			} else if record.Match != nil {
				date = formatDate(record.Match.Date)
			}

			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				holder,
				strconv.FormatFloat(record.Stat, 'f', -1, 64),
				opponent,
				date,
			})
		}

		return renderTable(w, []string{"Rank", "Holder", "Stat", "Opponent", "Date"}, rows)
	})
}
