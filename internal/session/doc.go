// Package session implements the durable login session of a device.
//
// A session is a (token, profile) pair: an opaque bearer credential issued by
// the authentication API and the profile of the signed-in user. The pair is
// written together and cleared together; a session with only one of the two
// is never trusted and is normalized back to empty.
//
// Persistence goes through the gofiber storage interface so the medium can be
// swapped without touching the callers: a SQLite file under the user config
// directory is the default, the OS keychain and a process-local memory store
// are bundled as alternatives. A store whose medium is unavailable degrades
// to ErrStorageUnavailable, which callers treat as a warning; the login then
// lives only for the current process.
package session
