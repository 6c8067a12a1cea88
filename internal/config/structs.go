package config

import (
	"time"

	"github.com/aikya-dev/aikya/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// SiteTheme selects which of the two marketing themes the server renders.
type SiteTheme string

const (
	// ThemeBuilder is the real-estate builder themed site.
	ThemeBuilder SiteTheme = "builder"
	// ThemeStudio is the AI venture studio themed site.
	ThemeStudio SiteTheme = "studio"
)

// Site holds the public site settings.
type Site struct {
	Name  string    // company name rendered in titles and the footer
	Theme SiteTheme // builder or studio
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Site      Site
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool    // use clean path middleware to allow multi slash requests
	DisableRecover bool    // disable recover middleware
	Domain         string  // domain name for the webserver
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	JWTSecret      string  // signing secret for API bearer tokens
	Session        Session // session settings
}
