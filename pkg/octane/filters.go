package octane

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
)

// Static errors for err113 compliance.
var (
	ErrMissingField = errors.New("missing required field")
	ErrUnknownValue = errors.New("unknown value")
	ErrInvalidField = errors.New("invalid field")
)

// Filters holds the filter fields shared by the collection descriptors.
// Each builder exposes only the fields its endpoint understands; nil fields
// are not sent.
type Filters struct {
	Name                *string    `url:"name,omitempty"`
	Tag                 *string    `url:"tag,omitempty"`
	Country             *string    `url:"country,omitempty"`
	Event               *EventID   `url:"event,omitempty"`
	Stage               *StageID   `url:"stage,omitempty"`
	Match               *MatchID   `url:"match,omitempty"`
	Qualifier           *bool      `url:"qualifier,omitempty"`
	Winner              *bool      `url:"winner,omitempty"`
	Nationality         *string    `url:"nationality,omitempty"`
	Tier                *Tier      `url:"tier,omitempty"                validate:"omitempty,known"`
	Region              *Region    `url:"region,omitempty"              validate:"omitempty,known"`
	Mode                *Mode      `url:"mode,omitempty"                validate:"omitempty,known"`
	Group               *string    `url:"group,omitempty"`
	Before              *time.Time `url:"before,omitempty"`
	After               *time.Time `url:"after,omitempty"`
	Date                *time.Time `url:"date,omitempty"`
	BestOf              *BestOf    `url:"bestOf,omitempty"              validate:"omitempty,known"`
	ReverseSweep        *bool      `url:"reverseSweep,omitempty"`
	ReverseSweepAttempt *bool      `url:"reverseSweepAttempt,omitempty"`
	Player              *PlayerID  `url:"player,omitempty"`
	Team                *TeamID    `url:"team,omitempty"`
}

type validEnum interface {
	Valid() bool
}

//nolint:gochecknoglobals
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("known", func(fl validator.FieldLevel) bool {
		enum, ok := fl.Field().Interface().(validEnum)

		return ok && enum.Valid()
	})

	return v
}

// checkParams runs the `validate` tags of a descriptor's parameters and
// maps failures onto ErrMissingField and ErrUnknownValue.
func checkParams(descriptor string, params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%s: %w: %w", descriptor, ErrInvalidField, err)
	}

	first := fieldErrs[0]

	switch first.Tag() {
	case "required":
		return fmt.Errorf("%s: %w: %s", descriptor, ErrMissingField, first.Field())
	case "known":
		return fmt.Errorf("%s: %w: %s %v", descriptor, ErrUnknownValue, first.Field(), first.Value())
	default:
		return fmt.Errorf("%s: %w: %s", descriptor, ErrInvalidField, first.Field())
	}
}

func utc(t time.Time) *time.Time {
	u := t.UTC()

	return &u
}

func requireID(descriptor, id string) error {
	if id == "" {
		return fmt.Errorf("%s: %w: id", descriptor, ErrMissingField)
	}

	return nil
}

func escapeID(id string) string {
	return url.PathEscape(id)
}
