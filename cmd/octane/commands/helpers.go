package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/octane-zsr/internal/constants"
	"github.com/fivetwenty-io/octane-zsr/internal/logging"
	"github.com/fivetwenty-io/octane-zsr/pkg/octane"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
	"github.com/fivetwenty-io/octane-zsr/pkg/zsrclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Viper keys.
const (
	keyBaseURL   = "base_url"
	keyOutput    = "output"
	keyVerbose   = "verbose"
	keyUserAgent = "user_agent"
	keyRetryMax  = "retry_max"
	keyTimeout   = "timeout"
)

// createClient builds a blocking client from the merged configuration.
func createClient() (zsr.Client, error) {
	client, err := zsrclient.New(clientConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// createAsyncClient builds an async client from the merged configuration.
func createAsyncClient() (zsr.AsyncClient, error) {
	client, err := zsrclient.NewAsync(clientConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func clientConfig() *zsrclient.Config {
	config := zsrclient.DefaultConfig()

	if baseURL := viper.GetString(keyBaseURL); baseURL != "" {
		config.BaseURL = baseURL
	}

	if userAgent := viper.GetString(keyUserAgent); userAgent != "" {
		config.UserAgent = userAgent
	}

	if timeout := viper.GetDuration(keyTimeout); timeout > 0 {
		config.HTTPTimeout = timeout
	}

	config.RetryMax = viper.GetInt(keyRetryMax)

	if viper.GetBool(keyVerbose) {
		config.Debug = true
		config.Logger = logging.NewZerologAdapter(logging.New(logging.Config{
			Level:  logging.LevelDebug,
			Pretty: true,
			Output: os.Stderr,
		}))
	}

	return config
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// outputFormat returns the configured format. Without one, terminals get a
// table and pipes get JSON.
func outputFormat(w io.Writer) (string, error) {
	format := strings.ToLower(viper.GetString(keyOutput))

	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return format, nil
	case "":
		if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) { //nolint:gosec
			return constants.FormatTable, nil
		}

		return constants.FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}
}

// render writes value as JSON or YAML, or calls table for table output.
func render(cmd *cobra.Command, value any, table func(w io.Writer) error) error {
	w := cmd.OutOrStdout()

	format, err := outputFormat(w)
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(value)
	default:
		return table(w)
	}
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(cells(header)...)

	for _, row := range rows {
		err := table.Append(cells(row)...)
		if err != nil {
			return fmt.Errorf("failed to build table: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func cells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

// listFlags are the pagination flags shared by list commands.
type listFlags struct {
	page    int
	perPage int
	all     bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "page to fetch")
	cmd.Flags().IntVar(&f.perPage, "per-page", 0, "results per page (server default when 0)")
	cmd.Flags().BoolVar(&f.all, "all", false, "fetch every page starting at --page")
}

func (f *listFlags) validate() error {
	if f.perPage < 0 || f.perPage > constants.MaxPerPage {
		return fmt.Errorf("%w: --per-page must be between 1 and %d", constants.ErrInvalidFlag, constants.MaxPerPage)
	}

	return nil
}

// fetchList returns one page, or every page from f.page on when --all is set.
func fetchList[T any](ctx context.Context, ep zsr.Pageable, f *listFlags) ([]T, error) {
	err := f.validate()
	if err != nil {
		return nil, err
	}

	client, err := createClient()
	if err != nil {
		return nil, err
	}

	if f.all {
		opts := []zsr.TraversalOption{zsr.WithStartPage(f.page)}
		if f.perPage > 0 {
			opts = append(opts, zsr.WithPerPage(f.perPage))
		}

		items, err := zsr.Iter[T](ctx, ep, client, opts...).All()
		if err != nil {
			return items, fmt.Errorf("failed to fetch all pages: %w", err)
		}

		return items, nil
	}

	page := zsr.NewPage(ep).Page(f.page).PerPage(f.perPage).Build()

	collection, err := zsr.QueryPage[T](ctx, page, client)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page %d: %w", f.page, err)
	}

	return collection.Inner, nil
}

// filterFlags holds the raw filter flag values shared by list, stats and
// records commands. Enum values are parsed when the descriptor is built.
type filterFlags struct {
	event     string
	stage     int
	match     string
	player    string
	team      string
	tier      string
	region    string
	mode      string
	group     string
	bestOf    string
	before    string
	after     string
	qualifier bool
	winner    bool
}

type filterSet uint

const (
	filterEvent filterSet = 1 << iota
	filterStage
	filterMatch
	filterPlayer
	filterTeam
	filterTier
	filterRegion
	filterMode
	filterGroup
	filterBestOf
	filterBefore
	filterAfter
	filterQualifier
	filterWinner
)

func (f *filterFlags) register(cmd *cobra.Command, set filterSet) {
	flags := cmd.Flags()

	if set&filterEvent != 0 {
		flags.StringVar(&f.event, "event", "", "event id")
	}

	if set&filterStage != 0 {
		flags.IntVar(&f.stage, "stage", 0, "stage id within the event")
	}

	if set&filterMatch != 0 {
		flags.StringVar(&f.match, "match", "", "match id")
	}

	if set&filterPlayer != 0 {
		flags.StringVar(&f.player, "player", "", "player id")
	}

	if set&filterTeam != 0 {
		flags.StringVar(&f.team, "team", "", "team id")
	}

	if set&filterTier != 0 {
		flags.StringVar(&f.tier, "tier", "", "tier (S, A, B, C, D, Monthly, Weekly, Show Match, Qualifier)")
	}

	if set&filterRegion != 0 {
		flags.StringVar(&f.region, "region", "", "region (NA, EU, OCE, SAM, ASIA, ME, INT, AF)")
	}

	if set&filterMode != 0 {
		flags.StringVar(&f.mode, "mode", "", "mode (1v1, 2v2, 3v3)")
	}

	if set&filterGroup != 0 {
		flags.StringVar(&f.group, "group", "", "event group")
	}

	if set&filterBestOf != 0 {
		flags.StringVar(&f.bestOf, "best-of", "", "series length (3, 5, 7)")
	}

	if set&filterBefore != 0 {
		flags.StringVar(&f.before, "before", "", "only before this date (RFC3339 or YYYY-MM-DD)")
	}

	if set&filterAfter != 0 {
		flags.StringVar(&f.after, "after", "", "only after this date (RFC3339 or YYYY-MM-DD)")
	}

	if set&filterQualifier != 0 {
		flags.BoolVar(&f.qualifier, "qualifier", false, "only qualifier stages")
	}

	if set&filterWinner != 0 {
		flags.BoolVar(&f.winner, "winner", false, "only winning sides")
	}
}

// filterApplier routes parsed filter flags to a builder's setters. A nil
// setter means the builder has no such filter.
type filterApplier struct {
	event     func(octane.EventID)
	stage     func(octane.StageID)
	match     func(octane.MatchID)
	player    func(octane.PlayerID)
	team      func(octane.TeamID)
	tier      func(octane.Tier)
	region    func(octane.Region)
	mode      func(octane.Mode)
	group     func(string)
	bestOf    func(octane.BestOf)
	before    func(time.Time)
	after     func(time.Time)
	qualifier func(bool)
	winner    func(bool)
}

//nolint:gocognit,cyclop,funlen
func (f *filterFlags) apply(cmd *cobra.Command, set filterApplier) error {
	changed := cmd.Flags().Changed

	if f.event != "" && set.event != nil {
		set.event(octane.EventID(f.event))
	}

	if changed("stage") && set.stage != nil {
		set.stage(octane.StageID(f.stage))
	}

	if f.match != "" && set.match != nil {
		set.match(octane.MatchID(f.match))
	}

	if f.player != "" && set.player != nil {
		set.player(octane.PlayerID(f.player))
	}

	if f.team != "" && set.team != nil {
		set.team(octane.TeamID(f.team))
	}

	if f.tier != "" && set.tier != nil {
		tier, err := octane.ParseTier(f.tier)
		if err != nil {
			return fmt.Errorf("%w: --tier: %w", constants.ErrInvalidFlag, err)
		}

		set.tier(tier)
	}

	if f.region != "" && set.region != nil {
		region, err := octane.ParseRegion(f.region)
		if err != nil {
			return fmt.Errorf("%w: --region: %w", constants.ErrInvalidFlag, err)
		}

		set.region(region)
	}

	if f.mode != "" && set.mode != nil {
		mode, err := octane.ParseMode(f.mode)
		if err != nil {
			return fmt.Errorf("%w: --mode: %w", constants.ErrInvalidFlag, err)
		}

		set.mode(mode)
	}

	if f.group != "" && set.group != nil {
		set.group(f.group)
	}

	if f.bestOf != "" && set.bestOf != nil {
		bestOf, err := octane.ParseBestOf(f.bestOf)
		if err != nil {
			return fmt.Errorf("%w: --best-of: %w", constants.ErrInvalidFlag, err)
		}

		set.bestOf(bestOf)
	}

	if f.before != "" && set.before != nil {
		before, err := parseDate(f.before)
		if err != nil {
			return fmt.Errorf("%w: --before: %w", constants.ErrInvalidFlag, err)
		}

		set.before(before)
	}

	if f.after != "" && set.after != nil {
		after, err := parseDate(f.after)
		if err != nil {
			return fmt.Errorf("%w: --after: %w", constants.ErrInvalidFlag, err)
		}

		set.after(after)
	}

	if changed("qualifier") && set.qualifier != nil {
		set.qualifier(f.qualifier)
	}

	if changed("winner") && set.winner != nil {
		set.winner(f.winner)
	}

	return nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}

	return t, nil
}

// parseSort parses "key" or "key:asc|desc".
func parseSort(s string) (string, zsr.Direction, error) {
	key, dir, found := strings.Cut(s, ":")
	if !found {
		return key, zsr.Asc, nil
	}

	direction, err := zsr.ParseDirection(dir)
	if err != nil {
		return "", zsr.Asc, fmt.Errorf("%w: --sort: %w", constants.ErrInvalidFlag, err)
	}

	return key, direction, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(time.DateOnly)
}

func formatInt(n *int64) string {
	if n == nil {
		return ""
	}

	return strconv.FormatInt(*n, 10)
}

func enumString(valid bool, s string) string {
	if !valid {
		return ""
	}

	return s
}
