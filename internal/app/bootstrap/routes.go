// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	activityfeature "github.com/towdeskhq/towdesk/internal/app/features/activity"
	apicontactfeature "github.com/towdeskhq/towdesk/internal/app/features/apicontact"
	apiloginfeature "github.com/towdeskhq/towdesk/internal/app/features/apilogin"
	contactfeature "github.com/towdeskhq/towdesk/internal/app/features/contact"
	dashboardfeature "github.com/towdeskhq/towdesk/internal/app/features/dashboard"
	driversfeature "github.com/towdeskhq/towdesk/internal/app/features/drivers"
	errorsfeature "github.com/towdeskhq/towdesk/internal/app/features/errors"
	healthfeature "github.com/towdeskhq/towdesk/internal/app/features/health"
	homefeature "github.com/towdeskhq/towdesk/internal/app/features/home"
	loginfeature "github.com/towdeskhq/towdesk/internal/app/features/login"
	logoutfeature "github.com/towdeskhq/towdesk/internal/app/features/logout"
	notificationsfeature "github.com/towdeskhq/towdesk/internal/app/features/notifications"
	payoutsfeature "github.com/towdeskhq/towdesk/internal/app/features/payouts"
	privacyfeature "github.com/towdeskhq/towdesk/internal/app/features/privacy"
	promosfeature "github.com/towdeskhq/towdesk/internal/app/features/promos"
	supportfeature "github.com/towdeskhq/towdesk/internal/app/features/support"
	termsfeature "github.com/towdeskhq/towdesk/internal/app/features/terms"
	tripsfeature "github.com/towdeskhq/towdesk/internal/app/features/trips"
	usersfeature "github.com/towdeskhq/towdesk/internal/app/features/users"
	contactstore "github.com/towdeskhq/towdesk/internal/app/store/contactmsgs"
	"github.com/towdeskhq/towdesk/internal/app/system/auth"
	"github.com/towdeskhq/towdesk/internal/app/system/contactrelay"
	"github.com/towdeskhq/towdesk/internal/app/system/credentials"
	"github.com/towdeskhq/towdesk/internal/app/system/livefeed"
	"github.com/towdeskhq/towdesk/internal/app/system/mailer"
	"github.com/towdeskhq/towdesk/internal/app/system/staticmap"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	// Imported for their template set registration.
	_ "github.com/towdeskhq/towdesk/internal/app/features/activity/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/contact/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/dashboard/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/drivers/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/home/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/login/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/notifications/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/payouts/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/privacy/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/promos/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/shared/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/support/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/terms/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/trips/views"
	_ "github.com/towdeskhq/towdesk/internal/app/features/users/views"
)

// feedCancel stops the live activity hub during shutdown.
var feedCancel context.CancelFunc

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It initializes the session store and
// template engine, mounts the public marketing site and the two JSON
// endpoints, and gates the admin console behind the session middleware.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	// The credential store fails closed on a bad configuration: it is still
	// constructed and every check returns a server error, so the console
	// stays up with a clear failure mode instead of crashing at boot.
	creds, err := credentials.New(appCfg.AdminEmails, appCfg.AdminPasswords)
	if err != nil {
		logger.Error("admin credential store misconfigured; logins will fail", zap.Error(err))
	}

	mailCfg := mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		User:     appCfg.MailSMTPUser,
		Pass:     appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}
	mail := mailer.New(mailCfg, logger)

	relay := &contactrelay.Relay{
		Mailer:   mail,
		MailCfg:  mailCfg,
		To:       appCfg.ContactTo,
		Messages: contactstore.New(deps.MongoDatabase),
		Log:      logger,
	}

	// Live activity feed: one hub polling the snapshot provider, fanned out
	// to admin browsers over websockets.
	snapshots := activityfeature.NewSnapshotProvider(deps.MongoDatabase)
	feed := livefeed.NewHub(snapshots.Snapshot, appCfg.FeedInterval, logger)
	feedCtx, cancel := context.WithCancel(context.Background())
	feedCancel = cancel
	go feed.Run(feedCtx)

	r := chi.NewRouter()

	// Global auth middleware: loads the signed-in admin into context.
	r.Use(auth.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	contactHandler := contactfeature.NewHandler(relay, errLog, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	privacyHandler := privacyfeature.NewHandler()
	r.Mount("/privacy", privacyfeature.Routes(privacyHandler))

	termsHandler := termsfeature.NewHandler()
	r.Mount("/terms", termsfeature.Routes(termsHandler))

	// JSON endpoints used by the marketing site and external callers
	apiLoginHandler := apiloginfeature.NewHandler(creds, logger)
	r.Mount("/api/admin/login", apiloginfeature.Routes(apiLoginHandler))

	apiContactHandler := apicontactfeature.NewHandler(relay, logger)
	r.Mount("/api/contact", apicontactfeature.Routes(apiContactHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(creds, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Admin console, gated on a signed-in session.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)

		dashboardHandler := dashboardfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

		usersHandler := usersfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		r.Mount("/users", usersfeature.Routes(usersHandler))

		driversHandler := driversfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		r.Mount("/drivers", driversfeature.Routes(driversHandler))

		tripsHandler := tripsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		r.Mount("/trips", tripsfeature.Routes(tripsHandler))

		payoutsHandler := payoutsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		r.Mount("/payouts", payoutsfeature.Routes(payoutsHandler))

		promosHandler := promosfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		r.Mount("/promos", promosfeature.Routes(promosHandler))

		notificationsHandler := notificationsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		r.Mount("/notifications", notificationsfeature.Routes(notificationsHandler))

		supportHandler := supportfeature.NewHandler(deps.MongoDatabase, mail, errLog, logger)
		r.Mount("/support", supportfeature.Routes(supportHandler))

		activityHandler := &activityfeature.Handler{
			Snapshots: snapshots,
			Feed:      feed,
			Maps:      staticmap.New(appCfg.MapTileKey),
			Log:       logger,
			ErrLog:    errLog,
		}
		r.Mount("/activity", activityfeature.Routes(activityHandler))
	})

	return r, nil
}
