// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPHandler is returned by NewServer without a router or a listen
// address. The API and the webhook share the one HTTP server.
var errNoHTTPHandler = errors.New("http handler or listen address is missing")
