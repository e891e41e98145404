// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package slug

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/unionsimple/union-service/internal/logging"
	"github.com/unionsimple/union-service/internal/monitoring"
	"github.com/unionsimple/union-service/internal/tracing"
)

// maxCounterAttempts bounds the suffix probing before falling back to a
// timestamp suffix, which is unique enough in practice.
const maxCounterAttempts = 500

var (
	invalidChars   = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	hyphenRuns     = regexp.MustCompile(`-+`)
)

// Normalize derives the candidate base slug from a union display name:
// lower-cased, trimmed, punctuation stripped, whitespace and hyphen runs
// collapsed into single hyphens, outer hyphens removed. The empty string is
// a legal result for names made of punctuation only.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

type Allocator struct {
	checker CheckerInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAllocator(checker CheckerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Allocator {
	return &Allocator{
		checker: checker,
		now:     time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Allocate returns a slug for the given name that was unused at check time.
// Collisions are resolved with -1, -2, ... counter suffixes; a failing
// existence check short-circuits to a timestamp suffix so allocation always
// terminates. The result is a candidate only: the unions table carries the
// unique constraint that settles races, and callers must retry on a
// uniqueness violation at insert time.
func (a *Allocator) Allocate(ctx context.Context, name string) (string, error) {
	ctx, span := a.tracer.Start(ctx, "slug.Allocator.Allocate")
	defer span.End()

	base := Normalize(name)
	candidate := base
	start := 1

	// Punctuation-only names normalize to nothing; the bare empty slug is
	// not addressable, so probing begins at the first counter suffix.
	if base == "" {
		candidate = "-1"
		start = 2
	}

	for i := start; i <= maxCounterAttempts; i++ {
		exists, err := a.checker.UnionSlugExists(ctx, candidate)
		if err != nil {
			a.logger.Warnf("slug existence check failed, falling back to timestamp suffix: %v", err)
			return a.Timestamped(base), nil
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	return a.Timestamped(base), nil
}

// Timestamped suffixes the base with the current unix milliseconds. Used as
// the terminal fallback when counter probing is exhausted or unavailable.
func (a *Allocator) Timestamped(base string) string {
	return fmt.Sprintf("%s-%d", base, a.now().UnixMilli())
}
