// Copyright 2025 Brandloom Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/brandloom/brandrag/vector"
)

// retryable reports whether another attempt can change the outcome.
// Embedding and storage failures are transient (provider restarts,
// compaction stalls); anything else, like a dimension mismatch or an
// unrecognized record, fails the same way every time.
func retryable(err error) bool {
	return errors.Is(err, vector.ErrEmbeddingFailed) ||
		errors.Is(err, vector.ErrStorageFailed)
}

// RetryWithBackoff runs operation up to maxAttempts times, doubling
// baseDelay after each failed attempt. Permanent errors are returned
// immediately without burning the attempt budget; when the budget runs
// out, the last error is returned.
func RetryWithBackoff(ctx context.Context, logger *slog.Logger, operation func() error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}
	if logger == nil {
		logger = slog.Default()
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				logger.Debug("vectorization succeeded after retry", "attempt", attempt)
			}
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
		if attempt == maxAttempts {
			break
		}

		delay := baseDelay << (attempt - 1)
		logger.Debug("vectorization attempt failed",
			"attempt", attempt, "maxAttempts", maxAttempts, "retryIn", delay, "err", lastErr)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}
