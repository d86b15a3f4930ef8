// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     timezone.Init(cfg)
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "02 Jan 2006")
//
//  3. Parsing times in app timezone:
//     t, err := timezone.Parse("2006-01-02", "2025-01-10")
//
// The timezone is configured via the APP_TIMEZONE environment variable (Asia/Kolkata by default)
// and is loaded when Init is called during startup. Until then every helper works in UTC.
package timezone
