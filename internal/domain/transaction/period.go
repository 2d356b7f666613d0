package transaction

import (
	"strings"
	"time"

	appErrors "Caixa/internal/errors"
)

// Period é uma janela fechada sobre createdAt. Start depois de End é aceito e
// não casa com nada.
type Period struct {
	Start time.Time
	End   time.Time
}

var periodLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func ParsePeriod(start, end string) (*Period, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" || end == "" {
		return nil, appErrors.ErrMissingPeriod
	}

	startDate, err := parseTimestamp(start)
	if err != nil {
		return nil, appErrors.ErrInvalidPeriod.WithDetails(map[string]interface{}{"start": start}).WithError(err)
	}
	endDate, err := parseTimestamp(end)
	if err != nil {
		return nil, appErrors.ErrInvalidPeriod.WithDetails(map[string]interface{}{"end": end}).WithError(err)
	}

	return &Period{Start: startDate, End: endDate}, nil
}

// Datas sem fuso são lidas como UTC.
func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range periodLayouts {
		parsed, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return parsed.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (p *Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}
