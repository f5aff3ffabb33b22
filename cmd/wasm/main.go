// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

//go:build js && wasm

// Command wasm is the browser client. It binds the recommendation form on the
// page served by cmd/server and submits it to /recommend on the same origin.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o web/static/cinerec.wasm ./cmd/wasm
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/static/
package main

import (
	"context"
	"net/http"
	"syscall/js"
	"time"

	"github.com/tomtom215/cinerec/internal/controller"
	"github.com/tomtom215/cinerec/internal/dom"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/upstream"
)

const requestTimeout = 30 * time.Second

func main() {
	// stderr is forwarded to the browser console by wasm_exec.js.
	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})

	global := js.Global()
	view, err := dom.Bind(global)
	if err != nil {
		logging.Error().Err(err).Msg("Recommendation form not found, client disabled")
		return
	}

	origin := global.Get("location").Get("origin").String()
	client := upstream.NewClientWithHTTP(origin, &http.Client{Timeout: requestTimeout})

	release := view.OnSubmit(context.Background(), controller.New(client, view))
	defer release()

	logging.Info().Str("origin", origin).Msg("Recommendation form bound")
	select {}
}
