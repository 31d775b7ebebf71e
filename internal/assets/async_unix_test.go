//go:build unix

package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"
)

func TestDecodeAsyncCancelDuringRead(t *testing.T) {
	// Opening a FIFO for reading blocks until a writer shows up
	path := filepath.Join(t.TempDir(), "earth.jpg")
	if err := syscall.Mkfifo(path, 0o600); err != nil {
		t.Skipf("mkfifo: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	results := DecodeAsync(ctx, path, false)
	cancel()

	select {
	case res := <-results:
		if !errors.Is(res.Err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %+v", res)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Expected cancellation to end the wait while the read was blocked")
	}

	// Let the blocked reader see EOF so its goroutine exits
	w, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	w.Close()
}
