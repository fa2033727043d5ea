// Package common provides shared interfaces used throughout the gitseed application.
//
// This package contains core interfaces that are reused across different
// components of the gitseed system. It serves as a central location for
// application-wide contracts that help standardize interactions between
// packages without introducing dependency cycles.
//
// # Core Components
//
// - Logger: Interface defining standardized logging methods used throughout the application
//
// # Logger Interface
//
// The Logger interface provides a standardized way for components to emit log
// messages at different levels of importance and visibility. It separates
// internal logging from user-facing messages so packages that consume it do
// not depend on the concrete logger implementation.
//
// # Usage
//
// The Logger interface is typically injected into components that need logging capabilities:
//
//	type MyComponent struct {
//	    logger common.Logger
//	    // other fields
//	}
//
//	func NewMyComponent(logger common.Logger) *MyComponent {
//	    return &MyComponent{
//	        logger: logger,
//	    }
//	}
//
// # Design Principles
//
// This package follows these design principles:
//
// - Minimal Dependencies: The common package should have no dependencies on other internal packages
// - Interface-Based Design: Favors interfaces over concrete implementations
// - Separation of Concerns: Clearly separates user-facing and internal functionality
package common
