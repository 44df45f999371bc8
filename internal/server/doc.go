// Package server runs the loopback HTTP API: startup, signal handling and
// graceful shutdown.
package server
