package commands

import (
	"fmt"
	"io"

	"github.com/fivetwenty-io/octane-zsr/pkg/octane"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/spf13/cobra"
)

// NewTeamsCommand creates the teams command group.
func NewTeamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "teams",
		Aliases: []string{"team"},
		Short:   "Browse teams",
		Long:    "List and inspect teams",
	}

	cmd.AddCommand(newTeamsListCommand())
	cmd.AddCommand(newTeamsGetCommand())
	cmd.AddCommand(newTeamsActiveCommand())

	return cmd
}

func newTeamsListCommand() *cobra.Command {
	var (
		list listFlags
		name string
		sort string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teams",
		Long:  "List teams, optionally filtered by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := octane.NewListTeams()

			if name != "" {
				builder.Name(name)
			}

			if sort != "" {
				key, direction, err := parseSort(sort)
				if err != nil {
					return err
				}

				builder.Sort(octane.TeamSort(key), direction)
			}

			ep, err := builder.Build()
			if err != nil {
				return fmt.Errorf("invalid filters: %w", err)
			}

			teams, err := fetchList[octane.Team](commandContext(cmd), ep, &list)
			if err != nil {
				return err
			}

			return render(cmd, teams, func(w io.Writer) error {
				return teamsTable(w, teams)
			})
		},
	}

	list.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().StringVar(&sort, "sort", "", "sort field with optional direction, e.g. name:asc")

	return cmd
}

func newTeamsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TEAM_ID",
		Short: "Get team details",
		Long:  "Display detailed information about a specific team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := octane.NewGetTeam(octane.TeamID(args[0]))
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			team, err := zsr.Query[octane.Team](commandContext(cmd), ep, client)
			if err != nil {
				return fmt.Errorf("failed to get team: %w", err)
			}

			return render(cmd, team, func(w io.Writer) error {
				return teamsTable(w, []octane.Team{team})
			})
		},
	}
}

func newTeamsActiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "List active teams",
		Long:  "List the teams currently competing, with their rosters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			active, err := zsr.Query[zsr.Collection[octane.Participant]](commandContext(cmd), octane.ListActiveTeams{}, client)
			if err != nil {
				return fmt.Errorf("failed to list active teams: %w", err)
			}

			teams := make([]octane.Team, 0, len(active.Inner))
			for _, entry := range active.Inner {
				teams = append(teams, entry.Team)
			}

			return render(cmd, active.Inner, func(w io.Writer) error {
				return teamsTable(w, teams)
			})
		},
	}
}

func teamsTable(w io.Writer, teams []octane.Team) error {
	if len(teams) == 0 {
		_, _ = fmt.Fprintln(w, "No teams found")

		return nil
	}

	rows := make([][]string, 0, len(teams))
	for _, team := range teams {
		rows = append(rows, []string{
			string(team.ID),
			team.Name,
			enumString(team.Region.Valid(), team.Region.Wire()),
		})
	}

	return renderTable(w, []string{"ID", "Name", "Region"}, rows)
}
