package accounting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
)

const day = 24 * time.Hour

// AgingPolicy holds the inclusive upper day bounds of the 1-30, 31-60 and 61-90 buckets.
type AgingPolicy struct {
	Edges [3]int
}

// DefaultAgingPolicy returns the standard 30/60/90 day buckets.
func DefaultAgingPolicy() AgingPolicy {
	return AgingPolicy{Edges: [3]int{30, 60, 90}}
}

// ParseAgingPolicy parses a comma separated list of three day edges, e.g. "30,60,90".
func ParseAgingPolicy(s string) (AgingPolicy, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return AgingPolicy{}, fmt.Errorf("aging buckets must list exactly three day edges, got %q", s)
	}
	var p AgingPolicy
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return AgingPolicy{}, fmt.Errorf("invalid aging bucket edge %q: %w", part, err)
		}
		p.Edges[i] = n
	}
	if err := p.Validate(); err != nil {
		return AgingPolicy{}, err
	}
	return p, nil
}

// Validate checks the edges are positive and strictly increasing.
func (p AgingPolicy) Validate() error {
	prev := 0
	for _, e := range p.Edges {
		if e <= prev {
			return fmt.Errorf("aging bucket edges must be positive and strictly increasing, got %v", p.Edges)
		}
		prev = e
	}
	return nil
}

// Bucket classifies a non-negative day count. Buckets are closed intervals with no gaps.
func (p AgingPolicy) Bucket(daysOverdue int) domain.AgingBucket {
	switch {
	case daysOverdue <= 0:
		return domain.BucketCurrent
	case daysOverdue <= p.Edges[0]:
		return domain.Bucket1To30
	case daysOverdue <= p.Edges[1]:
		return domain.Bucket31To60
	case daysOverdue <= p.Edges[2]:
		return domain.Bucket61To90
	default:
		return domain.BucketOver90
	}
}

// Aging is the age of a single due date at a point in time.
type Aging struct {
	DaysOverdue int
	Bucket      domain.AgingBucket
}

// DaysOverdue returns the whole days elapsed since dueDate, never negative.
func DaysOverdue(dueDate, now time.Time) int {
	days := int(now.Sub(dueDate) / day)
	if days < 0 {
		return 0
	}
	return days
}

// Age computes days overdue and the owning bucket. now is injected so callers can age as of any instant.
func (p AgingPolicy) Age(dueDate, now time.Time) Aging {
	days := DaysOverdue(dueDate, now)
	return Aging{DaysOverdue: days, Bucket: p.Bucket(days)}
}
