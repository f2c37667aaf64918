// Package middleware provides request/response middleware for mcp-core
// servers.
//
// Middleware follows the standard pattern where each middleware wraps the
// next handler in the chain, allowing pre- and post-processing of
// requests:
//
//	chain := middleware.Chain(
//	    middleware.Recover(),
//	    middleware.RequestID(),
//	    middleware.Logging(logger),
//	)
//	handler := chain(baseHandler)
//
// # Available Middleware
//
//   - Recover: catches handler panics and converts them to
//     internal-category errors before they cross the protocol boundary
//   - RequestID: injects a unique request ID into the context
//   - Timeout: enforces a request deadline
//   - Logging: structured request logging via zap
//   - RateLimit: token-bucket rate limiting via fortify
//   - OTel: OpenTelemetry tracing and metrics
//
// # Default Stacks
//
//	// Recover + RequestID + Logging
//	stack := middleware.DefaultStack(logger)
//
//	// Recover + RequestID + Timeout + Logging
//	stack := middleware.DefaultStackWithTimeout(logger, 30*time.Second)
package middleware
