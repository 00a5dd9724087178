// Package config loads the launcher's configuration from the process
// environment and an optional .env file.
//
// The recognized variables mirror the container contract of the tracking
// server image:
//
//	HOST      backend database host; presence selects the remote backend
//	PORT      backend database port
//	USERNAME  backend database user
//	PASSWORD  backend database password
//	DATABASE  backend database name
//	BUCKET    default artifact root (object storage location)
//
// Backend values are forwarded to the launched server as-is: the launcher
// performs no validation or connectivity checks on them. A malformed value
// surfaces as a startup error of the tracking server, not of the launcher.
package config
