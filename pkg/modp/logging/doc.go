// Package logging provides a minimal logging facade for the modp library.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow applications to provide custom implementations for testing, redaction,
// or integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/cryptonum/modp-go/pkg/modp/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// Discard() returns a no-op Logger. Library operations that take an optional
// Logger fall back to it, so leaving the field nil silences the operation.
//
// # Redaction Support
//
// The package provides utilities for redacting sensitive information:
//
//	// Mark an attribute as redacted
//	logger.Info(ctx, "key pair generated", logging.Redacted("private_exponent"))
//	// Logs: private_exponent=[redacted]
//
//	// Get the redaction placeholder
//	placeholder := logging.Placeholder() // Returns "[redacted]"
//
// # Usage in Search Loops
//
// Loggers can be passed to the long-running searches (group generation) for
// progress observability:
//
//	logger := logging.New(nil)
//	group, err := elgamal.GenerateGroup(&elgamal.GroupParams{
//	    Random: rand.Reader,
//	    Bits:   2048,
//	    Logger: logger,
//	})
//
// # Security Considerations
//
//   - Never log private exponents, ephemeral values, or other secret integers
//   - Use logging.Redacted() to mark sensitive attributes
//   - Public values such as bit lengths and attempt counts are safe to log
//   - Ensure log storage is secure and access-controlled
package logging
