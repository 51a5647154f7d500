// Package http implements the REST API and live channel of the Cuide.me
// backend on top of chi.
//
// Authentication, request tracing, access logging and response compression
// are middleware. WhatsApp notifications are checked against their
// X-Hub-Signature-256 header before the webhook handler runs, and the
// scheduler endpoint requires the cron secret.
package http
