package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

// Output layouts shared with the JSON projections.
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
)

var dateTimeLayouts = []string{time.RFC3339, DateTimeLayout, "2006-01-02T15:04:05", DateLayout}

var timeOfDayLayouts = []string{TimeLayout, "15:04:05"}

// parseDateTime accepts the date and date-time forms the frontend sends.
func parseDateTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeTimeOfDay rewrites a valid time as HH:MM and leaves anything else
// untouched for the validator to reject.
func normalizeTimeOfDay(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(TimeLayout)
		}
	}
	return raw
}

// normalizePrice formats a decimal with two digits.
func normalizePrice(raw string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%.2f", f)
}

// mergeDate applies a date input to dst, recording a violation for bad input.
func mergeDate(field string, raw *string, dst **time.Time, violations *[]string) {
	if raw == nil {
		return
	}
	if strings.TrimSpace(*raw) == "" {
		*dst = nil
		return
	}
	t, ok := parseDateTime(*raw)
	if !ok {
		*violations = append(*violations, field+": This value is not a valid date.")
		return
	}
	*dst = &t
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// setOptional applies src to an optional field. An empty string clears it.
func setOptional(dst **string, src *string) {
	if src == nil {
		return
	}
	if *src == "" {
		*dst = nil
		return
	}
	v := *src
	*dst = &v
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// present turns an empty required field back into "absent" for notnull rules.
func present(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func notFound(kind string) error {
	return &entity.NotFoundError{Kind: kind}
}

// orNotFound replaces a repository miss with the public not found error for kind.
func orNotFound(kind string, err error) error {
	if errors.Is(err, entity.ErrNotFound) {
		return notFound(kind)
	}
	return err
}

func now() time.Time {
	return time.Now().Truncate(time.Second)
}
