// Package timezone keeps every timestamp the service writes in the configured
// application timezone (APP_TIMEZONE, an IANA name such as "Asia/Tehran").
//
//	now := timezone.Now()
//	formatted := timezone.Format(created, time.RFC3339)
//	t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// An empty or unknown name falls back to UTC.
package timezone
