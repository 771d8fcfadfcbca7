package commands

import (
	"fmt"
	"io"

	"github.com/fivetwenty-io/octane-zsr/pkg/octane"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/spf13/cobra"
)

// NewPlayersCommand creates the players command group.
func NewPlayersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "players",
		Aliases: []string{"player"},
		Short:   "Browse players",
		Long:    "List and inspect players",
	}

	cmd.AddCommand(newPlayersListCommand())
	cmd.AddCommand(newPlayersGetCommand())

	return cmd
}

func newPlayersListCommand() *cobra.Command {
	var (
		list    listFlags
		tag     string
		country string
		team    string
		sort    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players",
		Long:  "List players by tag, country or team",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := octane.NewListPlayers()

			if tag != "" {
				builder.Tag(tag)
			}

			if country != "" {
				builder.Country(country)
			}

			if team != "" {
				builder.Team(octane.TeamID(team))
			}

			if sort != "" {
				key, direction, err := parseSort(sort)
				if err != nil {
					return err
				}

				builder.Sort(octane.PlayerSort(key), direction)
			}

			ep, err := builder.Build()
			if err != nil {
				return fmt.Errorf("invalid filters: %w", err)
			}

			players, err := fetchList[octane.Player](commandContext(cmd), ep, &list)
			if err != nil {
				return err
			}

			return render(cmd, players, func(w io.Writer) error {
				if len(players) == 0 {
					_, _ = fmt.Fprintln(w, "No players found")

					return nil
				}

				rows := make([][]string, 0, len(players))
				for _, player := range players {
					team := ""
					if player.Team != nil {
						team = player.Team.Name
					}

					rows = append(rows, []string{string(player.ID), player.Tag, player.Name, player.Country, team})
				}

				return renderTable(w, []string{"ID", "Tag", "Name", "Country", "Team"}, rows)
			})
		},
	}

	list.register(cmd)
	cmd.Flags().StringVar(&tag, "tag", "", "filter by tag")
	cmd.Flags().StringVar(&country, "country", "", "filter by country code")
	cmd.Flags().StringVar(&team, "team", "", "filter by team id")
	cmd.Flags().StringVar(&sort, "sort", "", "sort field with optional direction, e.g. tag:asc")

	return cmd
}

func newPlayersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PLAYER_ID",
		Short: "Get player details",
		Long:  "Display detailed information about a specific player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := octane.NewGetPlayer(octane.PlayerID(args[0]))
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			player, err := zsr.Query[octane.Player](commandContext(cmd), ep, client)
			if err != nil {
				return fmt.Errorf("failed to get player: %w", err)
			}

			return render(cmd, player, func(w io.Writer) error {
				_, _ = fmt.Fprintf(w, "Player: %s\n", player.Tag)
				_, _ = fmt.Fprintf(w, "  ID:      %s\n", player.ID)
				_, _ = fmt.Fprintf(w, "  Name:    %s\n", player.Name)
				_, _ = fmt.Fprintf(w, "  Country: %s\n", player.Country)

				if player.Team != nil {
					_, _ = fmt.Fprintf(w, "  Team:    %s\n", player.Team.Name)
				}

				for _, account := range player.Accounts {
					_, _ = fmt.Fprintf(w, "  Account: %s %s\n", account.Platform, account.ID)
				}

				return nil
			})
		},
	}
}
