package sources

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
)

type HTTPClient = *http.Client

func (Module) HTTPClient(
	getDialer GetDialer,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				dialer, err := getDialer()
				if err != nil {
					return nil, err
				}
				return dialer.DialContext(ctx, network, addr)
			},
		},
	}
}

// Load reads program source from a file path or an http(s) URL.
type Load func(ctx context.Context, location string) (string, error)

func (Module) Load(
	client HTTPClient,
) Load {
	return func(ctx context.Context, location string) (string, error) {
		if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
			content, err := os.ReadFile(location)
			if err != nil {
				return "", err
			}
			return string(content), nil
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
		if err != nil {
			return "", err
		}
		resp, err := client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return "", fmt.Errorf("fetch %s: %s", location, resp.Status)
		}
		content, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", location, err)
		}
		return string(content), nil
	}
}
