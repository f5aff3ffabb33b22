// Cinerec - Movie Recommendation Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package dom binds the recommendation form controller to a browser page.
// It is only built for GOOS=js GOARCH=wasm.
//
// Bind looks every element up once by id; the returned View implements
// controller.View with textContent and createElement only, so upstream text
// is never parsed as markup.
//
//	v, err := dom.Bind(js.Global())
//	if err != nil {
//	    return err
//	}
//	release := v.OnSubmit(ctx, controller.New(recommender, v))
//	defer release()
package dom
