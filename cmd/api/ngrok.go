package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var errNoTunnel = errors.New("ngrok has no active tunnels")

// tunnelDetector polls the local ngrok API for the public URL of the tunnel
// in front of this server.
type tunnelDetector struct {
	apiBase  string
	client   *http.Client
	attempts int
	interval time.Duration
}

func newTunnelDetector(apiBase string) tunnelDetector {
	return tunnelDetector{
		apiBase:  apiBase,
		client:   &http.Client{Timeout: 5 * time.Second},
		attempts: 10,
		interval: 3 * time.Second,
	}
}

type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// Detect retries while ngrok starts up and prefers an https tunnel.
func (d tunnelDetector) Detect(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= d.attempts; attempt++ {
		url, err := d.fetch(ctx)
		if err == nil {
			return url, nil
		}
		lastErr = err

		if attempt == d.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(d.interval):
		}
	}
	return "", fmt.Errorf("ngrok tunnel not found after %d attempts: %w", d.attempts, lastErr)
}

func (d tunnelDetector) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.apiBase+"/api/tunnels", nil)
	if err != nil {
		return "", err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode ngrok response: %w", err)
	}
	for _, t := range body.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(body.Tunnels) > 0 {
		return body.Tunnels[0].PublicURL, nil
	}
	return "", errNoTunnel
}
