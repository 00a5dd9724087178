// Package launch builds the tracking-server command line and executes it
// in the foreground. The launcher hands the console to the server for the
// rest of the process lifetime: stdout and stderr pass through, and the
// launcher's exit code is the server's exit code.
package launch
