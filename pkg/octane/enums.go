package octane

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Tier is an event tier.
type Tier int

const (
	TierS Tier = iota + 1
	TierA
	TierB
	TierC
	TierD
	TierMonthly
	TierWeekly
	TierShowMatch
	TierQualifier
)

//nolint:gochecknoglobals
var tierWire = map[Tier]string{
	TierS:         "S",
	TierA:         "A",
	TierB:         "B",
	TierC:         "C",
	TierD:         "D",
	TierMonthly:   "Monthly",
	TierWeekly:    "Weekly",
	TierShowMatch: "Show Match",
	TierQualifier: "Qualifier",
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	_, ok := tierWire[t]

	return ok
}

// Wire returns the token the API uses.
func (t Tier) Wire() string {
	return tierWire[t]
}

func (t Tier) String() string {
	if wire, ok := tierWire[t]; ok {
		return wire
	}

	return "Tier(" + strconv.Itoa(int(t)) + ")"
}

// ParseTier accepts a wire token, case-insensitively.
func ParseTier(s string) (Tier, error) {
	for tier, wire := range tierWire {
		if strings.EqualFold(wire, s) {
			return tier, nil
		}
	}

	return 0, fmt.Errorf("%w: tier %q", ErrUnknownValue, s)
}

// EncodeValues writes the wire token.
func (t Tier) EncodeValues(key string, v *url.Values) error {
	return encodeWire(key, v, t.Wire(), "tier", int(t))
}

// MarshalJSON implements json.Marshaler.
func (t Tier) MarshalJSON() ([]byte, error) {
	return marshalWire(t.Wire(), "tier", int(t))
}

// MarshalYAML writes the wire token.
func (t Tier) MarshalYAML() (any, error) {
	return t.Wire(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tier) UnmarshalJSON(data []byte) error {
	return unmarshalWire(data, ParseTier, t)
}

// Region is an event region.
type Region int

const (
	RegionNorthAmerica Region = iota + 1
	RegionEurope
	RegionOceania
	RegionSouthAmerica
	RegionAsia
	RegionMiddleEast
	RegionInternational
	RegionAfrica
)

//nolint:gochecknoglobals
var regionWire = map[Region]string{
	RegionNorthAmerica:  "NA",
	RegionEurope:        "EU",
	RegionOceania:       "OCE",
	RegionSouthAmerica:  "SAM",
	RegionAsia:          "ASIA",
	RegionMiddleEast:    "ME",
	RegionInternational: "INT",
	RegionAfrica:        "AF",
}

//nolint:gochecknoglobals
var regionNames = map[Region]string{
	RegionNorthAmerica:  "North America",
	RegionEurope:        "Europe",
	RegionOceania:       "Oceania",
	RegionSouthAmerica:  "South America",
	RegionAsia:          "Asia",
	RegionMiddleEast:    "Middle East",
	RegionInternational: "International",
	RegionAfrica:        "Africa",
}

// Valid reports whether r is a known region.
func (r Region) Valid() bool {
	_, ok := regionWire[r]

	return ok
}

// Wire returns the token the API uses.
func (r Region) Wire() string {
	return regionWire[r]
}

// String returns the display name.
func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}

	return "Region(" + strconv.Itoa(int(r)) + ")"
}

// ParseRegion accepts a wire token or a display name, case-insensitively.
func ParseRegion(s string) (Region, error) {
	for region, wire := range regionWire {
		if strings.EqualFold(wire, s) || strings.EqualFold(regionNames[region], s) {
			return region, nil
		}
	}

	return 0, fmt.Errorf("%w: region %q", ErrUnknownValue, s)
}

// EncodeValues writes the wire token.
func (r Region) EncodeValues(key string, v *url.Values) error {
	return encodeWire(key, v, r.Wire(), "region", int(r))
}

// MarshalJSON implements json.Marshaler.
func (r Region) MarshalJSON() ([]byte, error) {
	return marshalWire(r.Wire(), "region", int(r))
}

// MarshalYAML writes the wire token.
func (r Region) MarshalYAML() (any, error) {
	return r.Wire(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Region) UnmarshalJSON(data []byte) error {
	return unmarshalWire(data, ParseRegion, r)
}

// Mode is the team size of an event: 1v1, 2v2 or 3v3.
type Mode int

const (
	ModeOne   Mode = 1
	ModeTwo   Mode = 2
	ModeThree Mode = 3
)

func (m Mode) String() string {
	return strconv.Itoa(int(m)) + "v" + strconv.Itoa(int(m))
}

// Valid reports whether m is 1, 2 or 3.
func (m Mode) Valid() bool {
	return m >= ModeOne && m <= ModeThree
}

// ParseMode accepts "1".."3" or "1v1".."3v3".
func ParseMode(s string) (Mode, error) {
	n, err := strconv.Atoi(strings.SplitN(strings.ToLower(s), "v", 2)[0]) //nolint:mnd
	if err != nil || !Mode(n).Valid() {
		return 0, fmt.Errorf("%w: mode %q", ErrUnknownValue, s)
	}

	return Mode(n), nil
}

// EncodeValues writes the numeric wire form.
func (m Mode) EncodeValues(key string, v *url.Values) error {
	if !m.Valid() {
		return fmt.Errorf("%w: mode %d", ErrUnknownValue, int(m))
	}

	v.Set(key, strconv.Itoa(int(m)))

	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var n int

	err := json.Unmarshal(data, &n)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !Mode(n).Valid() {
		return fmt.Errorf("%w: mode %d", ErrUnknownValue, n)
	}

	*m = Mode(n)

	return nil
}

// BestOf is a series length.
type BestOf int

const (
	BestOfThree BestOf = 3
	BestOfFive  BestOf = 5
	BestOfSeven BestOf = 7
)

func (b BestOf) String() string {
	return "Bo" + strconv.Itoa(int(b))
}

// Valid reports whether b is 3, 5 or 7.
func (b BestOf) Valid() bool {
	return b == BestOfThree || b == BestOfFive || b == BestOfSeven
}

// ParseBestOf accepts "3", "5", "7" or "bo3", "bo5", "bo7".
func ParseBestOf(s string) (BestOf, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(s), "bo"))
	if err != nil || !BestOf(n).Valid() {
		return 0, fmt.Errorf("%w: best of %q", ErrUnknownValue, s)
	}

	return BestOf(n), nil
}

// EncodeValues writes the numeric wire form.
func (b BestOf) EncodeValues(key string, v *url.Values) error {
	if !b.Valid() {
		return fmt.Errorf("%w: best of %d", ErrUnknownValue, int(b))
	}

	v.Set(key, strconv.Itoa(int(b)))

	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BestOf) UnmarshalJSON(data []byte) error {
	var n int

	err := json.Unmarshal(data, &n)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !BestOf(n).Valid() {
		return fmt.Errorf("%w: best of %d", ErrUnknownValue, n)
	}

	*b = BestOf(n)

	return nil
}

// AggregationType selects whether records aggregate per game or per series.
type AggregationType int

const (
	AggregateGame AggregationType = iota + 1
	AggregateSeries
)

func (a AggregationType) String() string {
	switch a {
	case AggregateGame:
		return "game"
	case AggregateSeries:
		return "series"
	default:
		return ""
	}
}

// Valid reports whether a is game or series.
func (a AggregationType) Valid() bool {
	return a == AggregateGame || a == AggregateSeries
}

// ParseAggregationType accepts "game" or "series".
func ParseAggregationType(s string) (AggregationType, error) {
	switch strings.ToLower(s) {
	case "game":
		return AggregateGame, nil
	case "series":
		return AggregateSeries, nil
	default:
		return 0, fmt.Errorf("%w: aggregation type %q", ErrUnknownValue, s)
	}
}

// EncodeValues writes the wire token.
func (a AggregationType) EncodeValues(key string, v *url.Values) error {
	return encodeWire(key, v, a.String(), "aggregation type", int(a))
}

func encodeWire(key string, v *url.Values, wire, kind string, raw int) error {
	if wire == "" {
		return fmt.Errorf("%w: %s %d", ErrUnknownValue, kind, raw)
	}

	v.Set(key, wire)

	return nil
}

func marshalWire(wire, kind string, raw int) ([]byte, error) {
	if wire == "" {
		return nil, fmt.Errorf("%w: %s %d", ErrUnknownValue, kind, raw)
	}

	return json.Marshal(wire) //nolint:wrapcheck
}

func unmarshalWire[T any](data []byte, parse func(string) (T, error), target *T) error {
	var s string

	err := json.Unmarshal(data, &s)
	if err != nil {
		return err //nolint:wrapcheck
	}

	value, err := parse(s)
	if err != nil {
		return err
	}

	*target = value

	return nil
}
