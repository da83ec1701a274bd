package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Bucket selects the period size of categorical cash flow
type Bucket string

const (
	BucketYear    Bucket = "year"
	BucketQuarter Bucket = "quarter"
)

var ErrInvalidBucket = errors.New("bucket must be year or quarter")

// ParseBucket validates a bucket name
func ParseBucket(s string) (Bucket, error) {
	switch Bucket(s) {
	case BucketYear, BucketQuarter:
		return Bucket(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBucket, s)
	}
}

// QuarterOf returns ceil(month/3), 1 to 4
func QuarterOf(t time.Time) int {
	return (int(t.Month()) + 2) / 3
}

// FirstOfMonth returns the first day of the month t falls in
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// SameMonth compares year and month
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// PeriodKey identifies a year or a quarter of a year. Quarter is 0 for yearly keys.
type PeriodKey struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter,omitempty"`
}

// PeriodKeyOf builds the key of the bucket t falls in
func PeriodKeyOf(t time.Time, bucket Bucket) PeriodKey {
	if bucket == BucketQuarter {
		return PeriodKey{Year: t.Year(), Quarter: QuarterOf(t)}
	}
	return PeriodKey{Year: t.Year()}
}

// Value encodes the key as a sortable number: the year, or year + quarter/4.
// Q4 therefore encodes as the following whole year; use Quarter, not the
// fraction, to label a period.
func (k PeriodKey) Value() decimal.Decimal {
	value := decimal.NewFromInt(int64(k.Year))
	if k.Quarter == 0 {
		return value
	}
	return value.Add(decimal.NewFromInt(int64(k.Quarter)).Div(decimal.NewFromInt(4)))
}

// IsQuarter reports whether the key names a quarter
func (k PeriodKey) IsQuarter() bool {
	return k.Quarter != 0
}

func (k PeriodKey) String() string {
	if k.Quarter == 0 {
		return fmt.Sprintf("%d", k.Year)
	}
	return fmt.Sprintf("%d-Q%d", k.Year, k.Quarter)
}
