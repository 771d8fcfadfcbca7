package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/fivetwenty-io/octane-zsr/pkg/octane"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/spf13/cobra"
)

// NewGamesCommand creates the games command group.
func NewGamesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "games",
		Aliases: []string{"game"},
		Short:   "Browse games",
		Long:    "List and inspect single games",
	}

	cmd.AddCommand(newGamesListCommand())
	cmd.AddCommand(newGamesGetCommand())

	return cmd
}

func newGamesListCommand() *cobra.Command {
	var (
		list    listFlags
		filters filterFlags
		sort    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games",
		Long:  "List games matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := octane.NewListGames()

			if sort != "" {
				key, direction, err := parseSort(sort)
				if err != nil {
					return err
				}

				builder.Sort(octane.GameSort(key), direction)
			}

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

			games, err := fetchList[octane.Game](commandContext(cmd), ep, &list)
			if err != nil {
				return err
			}

			return render(cmd, games, func(w io.Writer) error {
				return gamesTable(w, games)
			})
		},
	}

	list.register(cmd)
	filters.register(cmd, filterEvent|filterStage|filterMatch|filterPlayer|filterTeam|filterTier|
		filterRegion|filterMode|filterGroup|filterBestOf|filterBefore|filterAfter|filterQualifier)
	cmd.Flags().StringVar(&sort, "sort", "", "sort field with optional direction, e.g. date:desc")

	return cmd
}

func newGamesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get GAME_ID",
		Short: "Get game details",
		Long:  "Display detailed information about a specific game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := octane.NewGetGame(octane.GameID(args[0]))
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			game, err := zsr.Query[octane.Game](commandContext(cmd), ep, client)
			if err != nil {
				return fmt.Errorf("failed to get game: %w", err)
			}

			return render(cmd, game, func(w io.Writer) error {
				_, _ = fmt.Fprintf(w, "Game %d: %s vs %s\n", game.Number, game.Blue.TeamName(), game.Orange.TeamName())
				_, _ = fmt.Fprintf(w, "  ID:       %s\n", game.ID)
				_, _ = fmt.Fprintf(w, "  Date:     %s\n", formatDate(game.Date))
				_, _ = fmt.Fprintf(w, "  Score:    %s\n", score(game.Blue, game.Orange))
				_, _ = fmt.Fprintf(w, "  Duration: %s\n", formatInt(game.Duration))

				if game.Map != nil {
					_, _ = fmt.Fprintf(w, "  Map:      %s\n", game.Map.Name)
				}

				return playersTable(w, game.Blue, game.Orange)
			})
		},
	}
}

func playersTable(w io.Writer, sides ...*octane.Side) error {
	var rows [][]string

	for _, side := range sides {
		if side == nil {
			continue
		}

		for _, info := range side.Players {
			row := []string{side.TeamName(), info.Player.Tag, "", "", "", ""}
			if info.Stats != nil {
				core := info.Stats.Core
				row[2] = fmt.Sprintf("%.0f", core.Score)
				row[3] = fmt.Sprint(core.Goals)
				row[4] = fmt.Sprint(core.Assists)
				row[5] = fmt.Sprint(core.Saves)
			}

			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return nil
	}

	_, _ = fmt.Fprintln(w)

	return renderTable(w, []string{"Team", "Player", "Score", "Goals", "Assists", "Saves"}, rows)
}

func gamesTable(w io.Writer, games []octane.Game) error {
	if len(games) == 0 {
		_, _ = fmt.Fprintln(w, "No games found")

		return nil
	}

	rows := make([][]string, 0, len(games))
	for _, game := range games {
		rows = append(rows, []string{
			string(game.ID),
			fmt.Sprint(game.Number),
			formatDate(game.Date),
			game.Blue.TeamName(),
			score(game.Blue, game.Orange),
			game.Orange.TeamName(),
		})
	}

	return renderTable(w, []string{"ID", "Number", "Date", "Blue", "Score", "Orange"}, rows)
}
