//go:build !ebiten

package gui

import (
	"context"
	"testing"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

func TestRunWithoutTag(t *testing.T) {
	err := Run(context.Background(), nil, 8, 60, log.Log)
	if errors.Cause(err) != ErrNotBuilt {
		t.Fatalf("err = %v, want ErrNotBuilt", err)
	}
}
