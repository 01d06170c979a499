package jsonstore

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

// encodeProfile writes the on-disk document: profile fields at the top level
// and one ISO-date key per day record beside them.
func encodeProfile(p *domain.Profile) ([]byte, error) {
	base, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	doc := make(map[string]json.RawMessage)
	if err := json.Unmarshal(base, &doc); err != nil {
		return nil, err
	}
	for key, day := range p.Days {
		raw, err := json.Marshal(day)
		if err != nil {
			return nil, fmt.Errorf("encode day %s: %w", key, err)
		}
		doc[key] = raw
	}
	return json.MarshalIndent(doc, "", "  ")
}

// decodeProfile is the inverse of encodeProfile. A day entry that does not
// decode is dropped with a warning; the rest of the document still loads.
func decodeProfile(data []byte, log *slog.Logger) (*domain.Profile, error) {
	var p domain.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	p.Days = make(map[string]*domain.DayRecord)
	for key, raw := range doc {
		if !domain.IsDayKey(key) {
			continue
		}
		day := domain.NewDayRecord()
		if err := json.Unmarshal(raw, day); err != nil {
			log.Warn("skipping damaged day record", "day", key, "error", err)
			continue
		}
		p.Days[key] = day
	}
	p.Normalize()
	return &p, nil
}
