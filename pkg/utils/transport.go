// pkg/utils/transport.go
package utils

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	utls "github.com/refraction-networking/utls"
	proxy "golang.org/x/net/proxy"
)

const HeaderRequestID = "X-Request-ID"

type TransportOptions struct {
	// ProxyURL routes traffic through an http, https or socks5 proxy.
	ProxyURL string
	// TLSFingerprint dials https origins with a Chrome ClientHello.
	// Only applies to direct and socks5 connections.
	TLSFingerprint bool
	// Timeout bounds a whole exchange when used through NewHTTPClient.
	Timeout time.Duration
}

// NoStoreTransport never serves or keeps cached responses and marks every
// outgoing request as uncacheable for intermediaries.
type NoStoreTransport struct {
	base http.RoundTripper
}

func NewNoStoreTransport(opts TransportOptions) (*NoStoreTransport, error) {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     !opts.TLSFingerprint,
	}

	var forward proxy.Dialer = &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	if opts.ProxyURL != "" {
		proxyURL, err := url.Parse(opts.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse proxy URL %s: %w", MaskProxyURL(opts.ProxyURL), err)
		}

		switch proxyURL.Scheme {
		case "http", "https":
			transport.Proxy = http.ProxyURL(proxyURL)
		case "socks5":
			dialer, err := socks5Dialer(proxyURL, forward)
			if err != nil {
				return nil, err
			}
			forward = dialer
			transport.Proxy = nil
			transport.DialContext = dialContext(forward)
		default:
			return nil, fmt.Errorf("unsupported proxy scheme: %s", proxyURL.Scheme)
		}
	}

	if opts.TLSFingerprint {
		transport.DialTLSContext = (&fingerprintDialer{forward: forward}).DialTLSContext
	}

	return &NoStoreTransport{base: transport}, nil
}

// NewHTTPClient wraps a NoStoreTransport in an http.Client.
func NewHTTPClient(opts TransportOptions) (*http.Client, error) {
	transport, err := NewNoStoreTransport(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
	}, nil
}

func (t *NoStoreTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())

	reqCopy.Header.Set("Cache-Control", "no-store")
	reqCopy.Header.Set("Pragma", "no-cache")
	reqCopy.Header.Del("If-None-Match")
	reqCopy.Header.Del("If-Modified-Since")

	if reqCopy.Header.Get(HeaderRequestID) == "" {
		reqCopy.Header.Set(HeaderRequestID, uuid.NewString())
	}

	return t.base.RoundTrip(reqCopy)
}

func socks5Dialer(proxyURL *url.URL, forward proxy.Dialer) (proxy.Dialer, error) {
	var auth *proxy.Auth
	if proxyURL.User != nil {
		auth = &proxy.Auth{User: proxyURL.User.Username()}
		if password, ok := proxyURL.User.Password(); ok {
			auth.Password = password
		}
	}

	dialer, err := proxy.SOCKS5("tcp", proxyURL.Host, auth, forward)
	if err != nil {
		return nil, fmt.Errorf("create SOCKS5 dialer: %w", err)
	}
	return dialer, nil
}

func dialContext(d proxy.Dialer) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		if cd, ok := d.(proxy.ContextDialer); ok {
			return cd.DialContext(ctx, network, addr)
		}

		connCh := make(chan net.Conn, 1)
		errCh := make(chan error, 1)

		go func() {
			conn, err := d.Dial(network, addr)
			if err != nil {
				errCh <- err
				return
			}
			connCh <- conn
		}()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case conn := <-connCh:
			return conn, nil
		case err := <-errCh:
			return nil, err
		}
	}
}

type fingerprintDialer struct {
	forward proxy.Dialer
}

func (d *fingerprintDialer) DialTLSContext(ctx context.Context, network, addr string) (net.Conn, error) {
	conn, err := dialContext(d.forward)(ctx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}

	spec, err := utls.UTLSIdToSpec(utls.HelloChrome_Auto)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS spec: %w", err)
	}
	// http.Transport cannot speak h2 over a custom TLS conn.
	for _, ext := range spec.Extensions {
		if alpn, ok := ext.(*utls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
		}
	}

	uconn := utls.UClient(conn, &utls.Config{ServerName: host}, utls.HelloCustom)
	if err := uconn.ApplyPreset(&spec); err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS preset: %w", err)
	}
	if err := uconn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS handshake: %w", err)
	}

	return uconn, nil
}

// MaskProxyURL hides the password of a proxy URL so it can be logged.
func MaskProxyURL(proxyURL string) string {
	if !strings.Contains(proxyURL, "@") {
		return proxyURL
	}

	parsedURL, err := url.Parse(proxyURL)
	if err != nil {
		return "[masked]"
	}

	if parsedURL.User != nil {
		username := parsedURL.User.Username()
		return strings.Replace(proxyURL, parsedURL.User.String(), username+":****", 1)
	}

	return proxyURL
}
