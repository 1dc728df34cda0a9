// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the booking client process lifecycle.
//
// It restores the previous session or runs the login flow, shows the main
// page and starts over after every logout.
package client
