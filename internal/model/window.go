package model

import "time"

// TimeRange identifies the dashboard time window.
type TimeRange string

const (
	Range24h TimeRange = "24h"
	Range3d  TimeRange = "3d"
	Range1w  TimeRange = "1w"
	Range1m  TimeRange = "1m"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Duration returns the window length. Unknown ranges fall back to 24h.
func (r TimeRange) Duration() time.Duration {
	switch r {
	case Range3d:
		return 3 * 24 * time.Hour
	case Range1w:
		return 7 * 24 * time.Hour
	case Range1m:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// StartTime returns the unix cutoff for the range relative to now.
func (r TimeRange) StartTime(now time.Time) int64 {
	return now.Unix() - int64(r.Duration()/time.Second)
}

// WindowRequest asks for one page of blocks inside a time range.
type WindowRequest struct {
	TimeRange TimeRange
	Page      uint64
	Limit     uint64
}

// Normalize fills in default page and limit.
func (r WindowRequest) Normalize(defaultLimit uint64) WindowRequest {
	if r.Page == 0 {
		r.Page = DefaultPage
	}
	if defaultLimit == 0 {
		defaultLimit = DefaultLimit
	}
	if r.Limit == 0 {
		r.Limit = defaultLimit
	}
	return r
}

// Heights returns the walk bounds for the page: heights in (end, start].
// Both bounds are clamped at zero.
func (r WindowRequest) Heights(tip uint64) (start, end uint64) {
	if r.Page == 0 || r.Limit == 0 {
		return 0, 0
	}
	offset := (r.Page - 1) * r.Limit
	if offset/r.Limit != r.Page-1 || offset >= tip {
		return 0, 0
	}
	start = tip - offset
	if start > r.Limit {
		end = start - r.Limit
	}
	return start, end
}

// EndOfData reports whether a page result signals there are no more pages.
func EndOfData(blocks []EnrichedBlock, limit uint64) bool {
	return uint64(len(blocks)) < limit
}
