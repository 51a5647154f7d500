// Package server runs the Cuide.me backend: the HTTP server and the
// background workers, under one lifecycle that ends on SIGINT, SIGTERM or
// SIGQUIT.
package server
