// Package logger provides logging facilities for the gitseed application.
//
// This package defines the logging interface used throughout the application
// and its standard implementation. Structured events are emitted through
// zerolog, while user-facing messages are written directly to the terminal,
// keeping a clear separation between the two surfaces.
//
// # Core Components
//
// - Logger: The main interface for logging used throughout the application
// - DefaultLogger: Standard implementation backed by zerolog
//
// # Message Surfaces
//
// The logger supports the following distinct message types:
//
// - Info: General information, log file only
// - InfoToUser: Important information displayed to the user
// - Warning: Potential issues, log file only (echoed when verbose)
// - WarningToUser: Important warnings displayed to the user
// - Error: Failures, logged and always shown to the user
// - Success: Success messages for completed operations
// - StatusMessage: Plain status lines such as progress and summaries
//
// # Usage
//
// Basic usage pattern:
//
//	// Create a new logger
//	logger := logger.New(true, "/path/to/log.file", true)
//
//	// Log different types of messages
//	logger.Info("Debug-only information: %v", details)
//	logger.InfoToUser("Important information: %v", userInfo)
//	logger.Warning("Potential issue: %v", warning)
//	logger.Error("An error occurred: %v", err)
//	logger.Success("Operation completed: %v", result)
//
// # Usage With Dependency Injection
//
// The Logger interface is typically injected into components that need logging capabilities:
//
//	type MyComponent struct {
//	    logger logger.Logger
//	    // other fields
//	}
//
//	func NewMyComponent(logger logger.Logger) *MyComponent {
//	    return &MyComponent{
//	        logger: logger,
//	    }
//	}
//
// # File Logging
//
// When debug logging is enabled, all structured events (regardless of
// verbosity settings) are written to the log file as JSON lines with
// timestamps. Without a log file, events at warning level and above go to
// stderr through zerolog's console writer.
//
// # Resource Management
//
// The Logger interface provides a Close method that should be called before
// application termination to ensure all buffered logs are flushed to disk:
//
//	defer logger.Close()
//
// # Thread Safety
//
// The DefaultLogger implementation is safe for concurrent use by multiple
// goroutines. All logging methods can be called from different goroutines
// without additional synchronization.
package logger
