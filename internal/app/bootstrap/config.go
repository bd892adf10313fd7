// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/towdeskhq/towdesk/internal/app/system/credentials"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for TowDesk.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: TOWDESK_MONGO_URI, TOWDESK_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "towdesk", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},

	// Admin credentials (parallel comma-separated lists)
	{Name: "admin_emails", Default: "", Desc: "Comma-separated admin email list"},
	{Name: "admin_passwords", Default: "", Desc: "Comma-separated admin password list, parallel to admin_emails"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "towdesk-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "localhost", Desc: "SMTP server host"},
	{Name: "mail_smtp_port", Default: 1025, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@towdesk.app", Desc: "From email address"},
	{Name: "mail_from_name", Default: "TowDesk", Desc: "From display name"},
	{Name: "contact_to", Default: "", Desc: "Recipient for contact form submissions"},

	// Live activity screen
	{Name: "map_tile_key", Default: "", Desc: "Static map tile API key (blank disables map images)"},
	{Name: "feed_interval", Default: "5s", Desc: "Live activity feed push interval (e.g., 5s, 10s)"},

	// Handler DB timeouts
	{Name: "timeout_short", Default: "", Desc: "Override for single-document DB reads (e.g., 5s)"},
	{Name: "timeout_medium", Default: "", Desc: "Override for list queries and simple writes (e.g., 10s)"},
	{Name: "timeout_long", Default: "", Desc: "Override for multi-collection writes (e.g., 30s)"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL for links in outbound email"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have access
// to configuration before any backends or handlers are built. WAFFLE's
// config.LoadWithAppConfig merges .env files, config files, environment
// variables (WAFFLE_* for core, TOWDESK_* for app), and command-line flags,
// with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TOWDESK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),

		AdminEmails:    appValues.String("admin_emails"),
		AdminPasswords: appValues.String("admin_passwords"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),
		ContactTo:    appValues.String("contact_to"),

		MapTileKey:   appValues.String("map_tile_key"),
		FeedInterval: appValues.Duration("feed_interval", 5*time.Second),

		TimeoutShort:  appValues.Duration("timeout_short", 0),
		TimeoutMedium: appValues.Duration("timeout_medium", 0),
		TimeoutLong:   appValues.Duration("timeout_long", 0),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// TowDesk validates the MongoDB URI format and the admin credential lists
// up front. A credential misconfiguration is still tolerated at startup
// (the store fails closed and login surfaces a server error), but it is
// logged loudly here so it is caught before anyone tries to sign in.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if creds, err := credentials.New(appCfg.AdminEmails, appCfg.AdminPasswords); err != nil {
		logger.Error("admin credential lists are misconfigured; all logins will fail",
			zap.Error(err))
	} else {
		logger.Info("admin credentials loaded", zap.Int("pairs", creds.Len()))
	}

	if appCfg.ContactTo == "" {
		logger.Warn("contact_to is not set; contact form delivery will fail until it is")
	}

	return nil
}
