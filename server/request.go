package server

import (
	"fmt"
	"net/url"
	"strconv"

	"dangian/generation"
)

// LayoutRequest overrides the server's default options. Nil fields keep the default.
type LayoutRequest struct {
	Iterations *int     `json:"iterations,omitempty"`
	Width      *float64 `json:"width,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	TileSize   *float64 `json:"tileSize,omitempty"`
	RatioX     *float64 `json:"ratioX,omitempty"`
	RatioY     *float64 `json:"ratioY,omitempty"`
	Seed       *int64   `json:"seed,omitempty"`
	Snap       *bool    `json:"snap,omitempty"`
}

// Options merges the request onto defaults
func (r LayoutRequest) Options(defaults generation.Options) generation.Options {
	opts := defaults
	if r.Iterations != nil {
		opts.Iterations = *r.Iterations
	}
	if r.Width != nil {
		opts.Size.X = *r.Width
	}
	if r.Height != nil {
		opts.Size.Y = *r.Height
	}
	if r.TileSize != nil {
		opts.TileSize = *r.TileSize
	}
	if r.RatioX != nil {
		opts.RatioToDiscard.X = *r.RatioX
	}
	if r.RatioY != nil {
		opts.RatioToDiscard.Y = *r.RatioY
	}
	if r.Snap != nil {
		opts.SnapToTiles = *r.Snap
	}
	return opts
}

// ParseLayoutQuery reads a LayoutRequest from URL query parameters
func ParseLayoutQuery(values url.Values) (LayoutRequest, error) {
	var req LayoutRequest
	var err error

	if req.Iterations, err = queryInt(values, "iterations"); err != nil {
		return req, err
	}
	if req.Width, err = queryFloat(values, "width"); err != nil {
		return req, err
	}
	if req.Height, err = queryFloat(values, "height"); err != nil {
		return req, err
	}
	if req.TileSize, err = queryFloat(values, "tileSize"); err != nil {
		return req, err
	}
	if req.RatioX, err = queryFloat(values, "ratioX"); err != nil {
		return req, err
	}
	if req.RatioY, err = queryFloat(values, "ratioY"); err != nil {
		return req, err
	}
	if v := values.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, fmt.Errorf("%w: seed %q", generation.ErrInvalidOptions, v)
		}
		req.Seed = &seed
	}
	if v := values.Get("snap"); v != "" {
		snap, err := strconv.ParseBool(v)
		if err != nil {
			return req, fmt.Errorf("%w: snap %q", generation.ErrInvalidOptions, v)
		}
		req.Snap = &snap
	}

	return req, nil
}

func queryInt(values url.Values, key string) (*int, error) {
	v := values.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", generation.ErrInvalidOptions, key, v)
	}
	return &n, nil
}

func queryFloat(values url.Values, key string) (*float64, error) {
	v := values.Get(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", generation.ErrInvalidOptions, key, v)
	}
	return &f, nil
}
