package core

import (
	"errors"
	"fmt"

	"github.com/huangsam/concord/schema"
)

// Sentinel errors matched through errors.Is.
var (
	ErrEmptySource      = errors.New("empty source")
	ErrInvalidYear      = errors.New("invalid source year")
	ErrDegenerateWeight = errors.New("degenerate weights")
)

// EmptySourceError reports a source file that is empty or has a header but no data rows.
type EmptySourceError struct {
	Source schema.SourceKey
	Path   string
}

func (e *EmptySourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s has no data rows", e.Source)
	}
	return fmt.Sprintf("%s (%s) has no data rows", e.Source, e.Path)
}

// Is matches ErrEmptySource.
func (e *EmptySourceError) Is(target error) bool {
	return target == ErrEmptySource
}

// InvalidYearError reports a source year after the reference year, which leaves
// the recency weight undefined or negative.
type InvalidYearError struct {
	Source        schema.SourceKey
	SourceYear    int
	ReferenceYear int
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("%s year %d is after reference year %d", e.Source, e.SourceYear, e.ReferenceYear)
}

// Is matches ErrInvalidYear.
func (e *InvalidYearError) Is(target error) bool {
	return target == ErrInvalidYear
}

// DegenerateWeightError reports raw weights that cannot be normalized.
type DegenerateWeightError struct {
	Source schema.SourceKey // Set when a single raw weight is at fault
	Sum    float64
}

func (e *DegenerateWeightError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("raw weight for %s is negative or not finite", e.Source)
	}
	return fmt.Sprintf("raw weights sum to %v, cannot normalize", e.Sum)
}

// Is matches ErrDegenerateWeight.
func (e *DegenerateWeightError) Is(target error) bool {
	return target == ErrDegenerateWeight
}
