// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// CORS). AppConfig is everything specific to TowDesk: the MongoDB connection,
// the admin credential lists, session cookies, SMTP, and the map tile key.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64

	// Admin credentials. Parallel comma-separated lists; position i in one
	// corresponds to position i in the other. There is no admin user
	// collection; these lists are the whole identity store.
	AdminEmails    string
	AdminPasswords string

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: towdesk-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Email/SMTP configuration
	MailSMTPHost string
	MailSMTPPort int
	MailSMTPUser string
	MailSMTPPass string
	MailFrom     string // From email address (e.g., noreply@towdesk.app)
	MailFromName string // From display name (e.g., TowDesk)

	// ContactTo receives contact form submissions.
	ContactTo string

	// MapTileKey authorizes static map requests for the live activity screen.
	// Blank disables map rendering; the screen lists positions instead.
	MapTileKey string

	// FeedInterval is how often the live activity feed pushes a snapshot.
	FeedInterval time.Duration

	// Handler DB timeout overrides. Zero keeps the built-in defaults.
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration

	// Base URL for links in outbound email.
	BaseURL string
}
