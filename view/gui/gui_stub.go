//go:build !ebiten

package gui

import (
	"context"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/RdeBiotec/Game-of-Life/sim"
)

// ErrNotBuilt is returned when the binary was built without the ebiten tag.
var ErrNotBuilt = errors.New("the desktop front end requires building with -tags ebiten")

// Run reports that the desktop front end is not compiled in.
func Run(context.Context, *sim.Controller, int, int, log.Interface) error {
	return errors.WithStack(ErrNotBuilt)
}
