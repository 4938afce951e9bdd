package sources

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/vars"
	"golang.org/x/net/proxy"
)

type ProxyAddr string

var _ configs.Configurable = ProxyAddr("")

func (ProxyAddr) ConfigExpr() string {
	return "proxy_addr"
}

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) (ret ProxyAddr) {
	if mode == modes.ModeDevelopment {
		return ""
	}
	ret = vars.FirstNonZero(
		configs.First[ProxyAddr](loader, ProxyAddr("").ConfigExpr()),
		ProxyAddr(os.Getenv("ALL_PROXY")),
		ProxyAddr(os.Getenv("all_proxy")),
		ProxyAddr(os.Getenv("HTTP_PROXY")),
		ProxyAddr(os.Getenv("http_proxy")),
		ProxyAddr(os.Getenv("SOCKS_PROXY")),
		ProxyAddr(os.Getenv("socks_proxy")),
	)
	if ret != "" {
		logger.Info("proxy", "addr", ret)
	}
	return
}

type Dialer interface {
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

type GetDialer func() (Dialer, error)

// GetDialer returns a dialer that dials loopback and private hosts directly, others through the proxy if configured.
func (Module) GetDialer(
	proxyAddr ProxyAddr,
) GetDialer {
	return sync.OnceValues(func() (Dialer, error) {
		direct := &net.Dialer{}
		if proxyAddr == "" {
			return direct, nil
		}

		u, err := url.Parse(string(proxyAddr))
		if err != nil {
			return nil, err
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		viaProxy, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		contextDialer, ok := viaProxy.(proxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("proxy %s does not support contexts", proxyAddr)
		}

		return dialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
			if isLocalAddr(addr) {
				return direct.DialContext(ctx, network, addr)
			}
			return contextDialer.DialContext(ctx, network, addr)
		}), nil
	})
}

type dialerFunc func(ctx context.Context, network, addr string) (net.Conn, error)

func (d dialerFunc) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

func isLocalAddr(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	ips, err := net.LookupIP(host)
	if err != nil {
		return false
	}
	for _, ip := range ips {
		if ip.IsLoopback() || ip.IsPrivate() {
			return true
		}
	}
	return false
}
