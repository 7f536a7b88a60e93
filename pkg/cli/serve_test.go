package cli

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/statusboard/pkg/cli/config"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	gt.NoError(t, err)
	addr := ln.Addr().String()
	gt.NoError(t, ln.Close())
	return addr
}

func waitHealthy(t *testing.T, url string) []byte {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			body, readErr := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			if readErr == nil && resp.StatusCode == http.StatusOK {
				return body
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("service at %s did not become healthy", url)
	return nil
}

func TestServe_ListensAndShutsDown(t *testing.T) {
	cfg := &config.Server{Addr: freeAddr(t), AllowAnyOrigin: true, ServeFrontend: true}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	result := make(chan error, 1)
	go func() {
		result <- serve(ctx, cfg, cfg.Options()...)
	}()

	body := waitHealthy(t, "http://"+cfg.Addr+"/api/health")
	gt.Equal(t, string(body), `{"status":"ok"}`)

	cancel()
	select {
	case err := <-result:
		gt.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServe_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	gt.NoError(t, err)
	defer func() {
		_ = ln.Close()
	}()

	cfg := &config.Server{Addr: ln.Addr().String(), AllowAnyOrigin: true}
	err = serve(context.Background(), cfg, cfg.Options()...)
	gt.Error(t, err)
}
