// Package timezone keeps the application clock in one location.
//
// Booking dates are whole days, so most callers want Today or DateOf:
//
//	today := timezone.Today()              // midnight of the current day
//	day := timezone.DateOf(someTimestamp)  // same instant truncated to its day
//	d, err := timezone.ParseDate("2024-01-10")
//
// The location comes from APP_TIMEZONE (IANA names such as "UTC" or
// "America/Asuncion") and falls back to UTC.
package timezone
