package commands

import (
	"context"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/octane-zsr/internal/constants"
	"github.com/fivetwenty-io/octane-zsr/pkg/octane"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/spf13/cobra"
)

// MatchSummary is one row of a match scan.
type MatchSummary struct {
	ID        octane.MatchID `json:"id"        yaml:"id"`
	Date      *time.Time     `json:"date"      yaml:"date"`
	Blue      string         `json:"blue"      yaml:"blue"`
	Orange    string         `json:"orange"    yaml:"orange"`
	Games     int            `json:"games"     yaml:"games"`
	Overtimes int            `json:"overtimes" yaml:"overtimes"`
	Duration  int64          `json:"duration"  yaml:"duration"`
}

func newMatchesScanCommand() *cobra.Command {
	var (
		filters     filterFlags
		perPage     int
		limit       int
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Summarize the games of many matches",
		Long: `Stream every match matching the filters and fetch the games of each one
concurrently, reporting game count, overtimes and total play time per match.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := octane.NewListMatches()

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

			client, err := createAsyncClient()
			if err != nil {
				return err
			}

			var opts []zsr.TraversalOption
			if perPage > 0 {
				opts = append(opts, zsr.WithPerPage(perPage))
			}

			summaries, err := scanMatches(commandContext(cmd), client,
				take(zsr.Stream[octane.Match](commandContext(cmd), ep, client, opts...), limit), concurrency)
			if err != nil {
				return err
			}

			return render(cmd, summaries, func(w io.Writer) error {
				return summariesTable(w, summaries)
			})
		},
	}

	filters.register(cmd, filterEvent|filterStage|filterPlayer|filterTeam|filterTier|filterRegion|
		filterMode|filterGroup|filterBestOf|filterBefore|filterAfter|filterQualifier)
	cmd.Flags().IntVar(&perPage, "per-page", 0, "matches fetched per page")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many matches (0 scans everything)")
	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultConcurrencyLimit,
		"matches whose games are fetched at once")

	return cmd
}

func scanMatches(
	ctx context.Context,
	client zsr.AsyncClient,
	matches iter.Seq2[octane.Match, error],
	concurrency int,
) ([]MatchSummary, error) {
	var (
		mu        sync.Mutex
		summaries []MatchSummary
	)

	err := zsr.ForEachConcurrent(ctx, matches, concurrency, func(ctx context.Context, match octane.Match) error {
		ep, err := octane.NewMatchGames(match.ID)
		if err != nil {
			return err
		}

		games, err := zsr.QueryAsync[zsr.Collection[octane.Game]](ctx, ep, client)
		if err != nil {
			return fmt.Errorf("failed to list games of match %s: %w", match.ID, err)
		}

		summary := MatchSummary{
			ID:     match.ID,
			Date:   match.Date,
			Blue:   match.Blue.TeamName(),
			Orange: match.Orange.TeamName(),
			Games:  len(games.Inner),
		}

		for _, game := range games.Inner {
			if game.Overtime != nil && *game.Overtime {
				summary.Overtimes++
			}

			if game.Duration != nil {
				summary.Duration += *game.Duration
			}
		}

		mu.Lock()
		summaries = append(summaries, summary)
		mu.Unlock()

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(summaries, func(a, b MatchSummary) int {
		switch {
		case a.Date == nil && b.Date == nil:
		case a.Date == nil:
			return -1
		case b.Date == nil:
			return 1
		default:
			if c := a.Date.Compare(*b.Date); c != 0 {
				return c
			}
		}

		return strings.Compare(string(a.ID), string(b.ID))
	})

	return summaries, nil
}

// take stops seq after n items; n <= 0 passes everything through.
func take[T any](seq iter.Seq2[T, error], n int) iter.Seq2[T, error] {
	if n <= 0 {
		return seq
	}

	return func(yield func(T, error) bool) {
		count := 0

		for item, err := range seq {
			if !yield(item, err) || err != nil {
				return
			}

			count++
			if count >= n {
				return
			}
		}
	}
}

func summariesTable(w io.Writer, summaries []MatchSummary) error {
	if len(summaries) == 0 {
		_, _ = fmt.Fprintln(w, "No matches found")

		return nil
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			string(s.ID),
			formatDate(s.Date),
			s.Blue,
			s.Orange,
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Overtimes),
			strconv.FormatInt(s.Duration, 10),
		})
	}

	return renderTable(w, []string{"ID", "Date", "Blue", "Orange", "Games", "Overtimes", "Seconds"}, rows)
}
