// Package errors provides standardized error handling patterns for FeedStreams components.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable), and
// Fatal (unrecoverable, stop processing).
//
// This classification enables informed decisions about retries, graceful
// degradation, and failure recovery without hardcoded error string matching.
// A key domain rule: content-generation failures are never Fatal. A feed rule
// that names an unknown generator family degrades to a default value; it must
// not take down a publish loop.
//
// # Error Classification
//
// Errors are classified based on their type or content:
//
//   - Transient: network timeouts, broker connection issues, temporary unavailability (retry recommended)
//   - Invalid: malformed feed rules, validation failures, bad field paths (do not retry)
//   - Fatal: unusable configuration, unrecoverable states (stop processing)
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for common conditions:
//
//	if !brokerAvailable {
//	    return errors.ErrConnectionTimeout
//	}
//
// Wrap errors with context for debugging:
//
//	if err := scheduler.Start(eventName); err != nil {
//	    return errors.Wrap(err, "StreamScheduler", "Start", "start publish loop")
//	}
//
// Check classification for retry logic:
//
//	if err := publish(); err != nil {
//	    if errors.IsTransient(err) {
//	        config := errors.DefaultRetryConfig()
//	        if config.ShouldRetry(err, attempt) {
//	            time.Sleep(config.BackoffDelay(attempt))
//	            // retry operation
//	        }
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")  // For retryable errors
//	errors.WrapInvalid(err, "Component", "Method", "action")    // For validation errors
//	errors.WrapFatal(err, "Component", "Method", "action")      // For unrecoverable errors
//
// The generic Wrap() function preserves the original error's classification:
//
//	errors.Wrap(err, "Component", "Method", "action")
//
// # Standard Error Variables
//
// Pre-defined error variables for common conditions, organized by category:
//
//   - Component lifecycle: ErrAlreadyStarted, ErrNotStarted, ErrAlreadyStopped
//   - Broker connection: ErrConnectionLost, ErrConnectionTimeout, ErrPublishFailed
//   - Feed rules: ErrInvalidData, ErrParsingFailed, ErrUnknownRuleGroup, ErrFieldNotFound
//   - Stream scheduling: ErrStreamNotFound, ErrStreamActive, ErrStreamStopped
//   - Configuration: ErrInvalidConfig, ErrMissingConfig, ErrConfigNotFound
//
// Use these variables instead of creating custom error messages for
// consistency.
//
// # Retry Configuration
//
// The package includes built-in retry support with exponential backoff:
//
//	config := errors.DefaultRetryConfig()
//
//	for attempt := 0; attempt < config.MaxRetries; attempt++ {
//	    if err := operation(); err != nil {
//	        if !config.ShouldRetry(err, attempt) {
//	            return err
//	        }
//	        time.Sleep(config.BackoffDelay(attempt))
//	        continue
//	    }
//	    return nil
//	}
//
// The retry configuration converts to the retry package's Config type:
//
//	retryConfig := errorConfig.ToRetryConfig()
//
// # Context Cancellation
//
// Context errors (context.DeadlineExceeded, context.Canceled) are classified
// as Transient, so context-based timeouts flow through the same retry
// decisions as network timeouts.
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access. ClassifiedError is safe to
// share across goroutines after creation.
//
// # Architecture Integration
//
// The errors package integrates with other FeedStreams components:
//
//   - natsclient: uses standard connection error variables and circuit breaker sentinels
//   - scheduler: classifies per-firing failures to isolate them from the loop
//   - feed: wraps schema and parse failures as Invalid, naming the offending event
//   - retry: uses error classification for retry decisions
package errors
