// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal dashboard runtime.
//
// It wires the local session store, the HTTP and live adapters, the client
// services and the screens into a single process lifecycle.
package client
