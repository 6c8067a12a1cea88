// Package main provides the entry point for the Aikya marketing site and
// content management service. It runs a web server using the Fiber framework
// that serves the public marketing pages, a REST API for authentication and
// CMS content sections, and an authenticated admin console for editing those
// sections. The application uses gorm for data persistence and ships a small
// CLI client that manages a device-local login session.
package main
