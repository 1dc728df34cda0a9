// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-travel-booking/models"
)

// ImageEncoder turns an uploaded profile picture into a data URL.
type ImageEncoder interface {
	Encode(ctx context.Context, img models.ProfileImage) (string, error)
}

type encodeResult struct {
	dataURL string
	err     error
}

type dataURLEncoder struct{}

// NewDataURLEncoder returns an ImageEncoder that produces
// "data:<mime>;base64,<payload>" strings. Encoding runs on its own
// goroutine; Encode returns as soon as either the result or ctx is done.
func NewDataURLEncoder() ImageEncoder {
	return dataURLEncoder{}
}

func (dataURLEncoder) Encode(ctx context.Context, img models.ProfileImage) (string, error) {
	// buffered so the goroutine never blocks after the caller gave up
	done := make(chan encodeResult, 1)

	go func() {
		if len(img.Data) == 0 {
			done <- encodeResult{err: errors.New("image is empty")}
			return
		}
		done <- encodeResult{
			dataURL: "data:" + img.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(img.Data),
		}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrImageEncoding, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("%w: %w", ErrImageEncoding, res.err)
		}
		return res.dataURL, nil
	}
}
