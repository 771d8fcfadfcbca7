package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/fivetwenty-io/octane-zsr/pkg/octane"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/spf13/cobra"
)

// NewMatchesCommand creates the matches command group.
func NewMatchesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "matches",
		Aliases: []string{"match"},
		Short:   "Browse matches",
		Long:    "List and inspect series between two teams",
	}

	cmd.AddCommand(newMatchesListCommand())
	cmd.AddCommand(newMatchesGetCommand())
	cmd.AddCommand(newMatchesGamesCommand())
	cmd.AddCommand(newMatchesScanCommand())

	return cmd
}

func newMatchesListCommand() *cobra.Command {
	var (
		list                listFlags
		filters             filterFlags
		sort                string
		reverseSweep        bool
		reverseSweepAttempt bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List matches",
		Long:  "List matches matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := octane.NewListMatches()

			if sort != "" {
				key, direction, err := parseSort(sort)
				if err != nil {
					return err
				}

				builder.Sort(octane.MatchSort(key), direction)
			}

			if cmd.Flags().Changed("reverse-sweep") {
				builder.ReverseSweep(reverseSweep)
			}

			if cmd.Flags().Changed("reverse-sweep-attempt") {
				builder.ReverseSweepAttempt(reverseSweepAttempt)
			}

			err := filters.apply(cmd, filterApplier{
				event:     func(v octane.EventID) { builder.Event(v) },
				stage:     func(v octane.StageID) { builder.Stage(v) },
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

			matches, err := fetchList[octane.Match](commandContext(cmd), ep, &list)
			if err != nil {
				return err
			}

			return render(cmd, matches, func(w io.Writer) error {
				return matchesTable(w, matches)
			})
		},
	}

	list.register(cmd)
	filters.register(cmd, filterEvent|filterStage|filterPlayer|filterTeam|filterTier|filterRegion|
		filterMode|filterGroup|filterBestOf|filterBefore|filterAfter|filterQualifier)
	cmd.Flags().StringVar(&sort, "sort", "", "sort field with optional direction, e.g. date:desc")
	cmd.Flags().BoolVar(&reverseSweep, "reverse-sweep", false, "only reverse sweeps")
	cmd.Flags().BoolVar(&reverseSweepAttempt, "reverse-sweep-attempt", false, "only reverse sweep attempts")

	return cmd
}

func newMatchesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MATCH_ID",
		Short: "Get match details",
		Long:  "Display detailed information about a specific match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := octane.NewGetMatch(octane.MatchID(args[0]))
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			match, err := zsr.Query[octane.Match](commandContext(cmd), ep, client)
			if err != nil {
				return fmt.Errorf("failed to get match: %w", err)
			}

			return render(cmd, match, func(w io.Writer) error {
				_, _ = fmt.Fprintf(w, "Match: %s vs %s\n", match.Blue.TeamName(), match.Orange.TeamName())
				_, _ = fmt.Fprintf(w, "  ID:     %s\n", match.ID)
				_, _ = fmt.Fprintf(w, "  Date:   %s\n", formatDate(match.Date))

				if match.Event != nil {
					_, _ = fmt.Fprintf(w, "  Event:  %s\n", match.Event.Name)
				}

				if match.Format != nil {
					_, _ = fmt.Fprintf(w, "  Format: %s\n", match.Format)
				}

				_, _ = fmt.Fprintf(w, "  Score:  %s\n", score(match.Blue, match.Orange))

				if len(match.Games) == 0 {
					return nil
				}

				_, _ = fmt.Fprintln(w)

				rows := make([][]string, 0, len(match.Games))
				for i, game := range match.Games {
					overtime := ""
					if game.Overtime {
						overtime = "yes"
					}

					rows = append(rows, []string{
						fmt.Sprint(i + 1),
						fmt.Sprintf("%d - %d", game.Blue, game.Orange),
						formatInt(game.Duration),
						overtime,
					})
				}

				return renderTable(w, []string{"Game", "Score", "Duration", "Overtime"}, rows)
			})
		},
	}
}

func newMatchesGamesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "games MATCH_ID",
		Short: "List the games of a match",
		Long:  "List every game played in a specific match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := octane.NewMatchGames(octane.MatchID(args[0]))
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			games, err := zsr.Query[zsr.Collection[octane.Game]](commandContext(cmd), ep, client)
			if err != nil {
				return fmt.Errorf("failed to list match games: %w", err)
			}

			return render(cmd, games.Inner, func(w io.Writer) error {
				return gamesTable(w, games.Inner)
			})
		},
	}
}

func score(blue, orange *octane.Side) string {
	var b, o int64

	if blue != nil && blue.Score != nil {
		b = *blue.Score
	}

	if orange != nil && orange.Score != nil {
		o = *orange.Score
	}

	return fmt.Sprintf("%d - %d", b, o)
}

func matchesTable(w io.Writer, matches []octane.Match) error {
	if len(matches) == 0 {
		_, _ = fmt.Fprintln(w, "No matches found")

		return nil
	}

	rows := make([][]string, 0, len(matches))
	for _, match := range matches {
		event := ""
		if match.Event != nil {
			event = match.Event.Name
		}

		rows = append(rows, []string{
			string(match.ID),
			formatDate(match.Date),
			event,
			match.Blue.TeamName(),
			score(match.Blue, match.Orange),
			match.Orange.TeamName(),
		})
	}

	return renderTable(w, []string{"ID", "Date", "Event", "Blue", "Score", "Orange"}, rows)
}
