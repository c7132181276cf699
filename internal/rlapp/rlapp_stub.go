//go:build !raylib

package rlapp

import (
	"errors"

	"sandtris/internal/app"
	"sandtris/internal/sims/sand"
)

// ErrNoRaylib is returned by Run when the binary was built without raylib.
var ErrNoRaylib = errors.New("rlapp: built without the 'raylib' tag")

// Run reports that the raylib frontend is unavailable in this build.
func Run(*sand.World, *app.Options) error { return ErrNoRaylib }
