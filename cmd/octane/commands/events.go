package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fivetwenty-io/octane-zsr/pkg/octane"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/spf13/cobra"
)

// NewEventsCommand creates the events command group.
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event"},
		Short:   "Browse events",
		Long:    "List and inspect Rocket League esports events",
	}

	cmd.AddCommand(newEventsListCommand())
	cmd.AddCommand(newEventsGetCommand())
	cmd.AddCommand(newEventsMatchesCommand())
	cmd.AddCommand(newEventsParticipantsCommand())

	return cmd
}

func newEventsListCommand() *cobra.Command {
	var (
		list    listFlags
		filters filterFlags
		name    string
		sort    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long:  "List events matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := octane.NewListEvents()

			if name != "" {
				builder.Name(name)
			}

			if sort != "" {
				key, direction, err := parseSort(sort)
				if err != nil {
					return err
				}

				builder.Sort(octane.EventSort(key), direction)
			}

			err := filters.apply(cmd, filterApplier{
				tier:   func(v octane.Tier) { builder.Tier(v) },
				region: func(v octane.Region) { builder.Region(v) },
				mode:   func(v octane.Mode) { builder.Mode(v) },
				group:  func(v string) { builder.Group(v) },
				before: func(v time.Time) { builder.Before(v) },
				after:  func(v time.Time) { builder.After(v) },
			})
			if err != nil {
				return err
			}

			ep, err := builder.Build()
			if err != nil {
				return fmt.Errorf("invalid filters: %w", err)
			}

			events, err := fetchList[octane.Event](commandContext(cmd), ep, &list)
			if err != nil {
				return err
			}

			return render(cmd, events, func(w io.Writer) error {
				return eventsTable(w, events)
			})
		},
	}

	list.register(cmd)
	filters.register(cmd, filterTier|filterRegion|filterMode|filterGroup|filterBefore|filterAfter)
	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().StringVar(&sort, "sort", "", "sort field with optional direction, e.g. name:desc")

	return cmd
}

func newEventsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EVENT_ID",
		Short: "Get event details",
		Long:  "Display detailed information about a specific event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := octane.NewGetEvent(octane.EventID(args[0]))
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			event, err := zsr.Query[octane.Event](commandContext(cmd), ep, client)
			if err != nil {
				return fmt.Errorf("failed to get event: %w", err)
			}

			return render(cmd, event, func(w io.Writer) error {
				_, _ = fmt.Fprintf(w, "Event: %s\n", event.Name)
				_, _ = fmt.Fprintf(w, "  ID:      %s\n", event.ID)
				_, _ = fmt.Fprintf(w, "  Tier:    %s\n", enumString(event.Tier.Valid(), event.Tier.String()))
				_, _ = fmt.Fprintf(w, "  Region:  %s\n", enumString(event.Region.Valid(), event.Region.String()))
				_, _ = fmt.Fprintf(w, "  Mode:    %s\n", enumString(event.Mode.Valid(), event.Mode.String()))
				_, _ = fmt.Fprintf(w, "  Start:   %s\n", formatDate(event.StartDate))
				_, _ = fmt.Fprintf(w, "  End:     %s\n", formatDate(event.EndDate))

				if event.Prize != nil {
					_, _ = fmt.Fprintf(w, "  Prize:   %s\n", event.Prize)
				}

				if len(event.Stages) == 0 {
					return nil
				}

				_, _ = fmt.Fprintln(w)

				rows := make([][]string, 0, len(event.Stages))
				for _, stage := range event.Stages {
					lan := ""
					if stage.LAN {
						lan = "yes"
					}

					rows = append(rows, []string{stage.ID.String(), stage.Name, stage.Format, formatDate(stage.StartDate), lan})
				}

				return renderTable(w, []string{"Stage", "Name", "Format", "Start", "LAN"}, rows)
			})
		},
	}
}

func newEventsMatchesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "matches EVENT_ID",
		Short: "List the matches of an event",
		Long:  "List every match played at a specific event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := octane.NewEventMatches(octane.EventID(args[0]))
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			matches, err := zsr.Query[zsr.Collection[octane.Match]](commandContext(cmd), ep, client)
			if err != nil {
				return fmt.Errorf("failed to list event matches: %w", err)
			}

			return render(cmd, matches.Inner, func(w io.Writer) error {
				return matchesTable(w, matches.Inner)
			})
		},
	}
}

func newEventsParticipantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "participants EVENT_ID",
		Short: "List the participants of an event",
		Long:  "List the teams and rosters taking part in a specific event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := octane.NewEventParticipants(octane.EventID(args[0]))
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			participants, err := zsr.Query[zsr.Collection[octane.Participant]](commandContext(cmd), ep, client)
			if err != nil {
				return fmt.Errorf("failed to list participants: %w", err)
			}

			return render(cmd, participants.Inner, func(w io.Writer) error {
				rows := make([][]string, 0, len(participants.Inner))
				for _, participant := range participants.Inner {
					tags := make([]string, 0, len(participant.Players))
					for _, player := range participant.Players {
						tags = append(tags, player.Tag)
					}

					rows = append(rows, []string{participant.Team.Name, strings.Join(tags, ", ")})
				}

				return renderTable(w, []string{"Team", "Players"}, rows)
			})
		},
	}
}

func eventsTable(w io.Writer, events []octane.Event) error {
	if len(events) == 0 {
		_, _ = fmt.Fprintln(w, "No events found")

		return nil
	}

	rows := make([][]string, 0, len(events))
	for _, event := range events {
		rows = append(rows, []string{
			string(event.ID),
			event.Name,
			enumString(event.Tier.Valid(), event.Tier.String()),
			enumString(event.Region.Valid(), event.Region.Wire()),
			enumString(event.Mode.Valid(), event.Mode.String()),
			formatDate(event.StartDate),
		})
	}

	return renderTable(w, []string{"ID", "Name", "Tier", "Region", "Mode", "Start"}, rows)
}
