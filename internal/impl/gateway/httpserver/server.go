package impl_httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domain_pix "github.com/Danilo-Couto/simulador-de-pix/internal/domain/pix"
	port_platform "github.com/Danilo-Couto/simulador-de-pix/internal/ports/gateway/platform"
	port_server "github.com/Danilo-Couto/simulador-de-pix/internal/ports/gateway/server"
)

var (
	ErrConnectionClosed = errors.New("httpserver: connection already closed")
	ErrUnexpectedStatus = errors.New("httpserver: unexpected status")
	ErrMalformedBody    = errors.New("httpserver: malformed response body")
)

const maxBodyBytes = 1 << 16

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Server opens connections to a remote Pix service over HTTP. Each
// connection owns a dedicated transport so closing it releases its sockets.
type Server struct {
	baseURL   string
	timeout   time.Duration
	transport *http.Transport
	ids       port_platform.IDGenerator
}

func New(cfg Config, ids port_platform.IDGenerator) (*Server, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("httpserver: base url is required")
	}

	tr, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		tr = &http.Transport{}
	}

	return &Server{
		baseURL:   base,
		timeout:   cfg.Timeout,
		transport: tr,
		ids:       ids,
	}, nil
}

// OpenConnection probes the health endpoint before handing out a connection.
func (s *Server) OpenConnection(ctx context.Context) (port_server.Connection, error) {
	c := &connection{
		baseURL:   s.baseURL,
		transport: s.transport.Clone(),
		ids:       s.ids,
	}
	c.client = &http.Client{Transport: c.transport, Timeout: s.timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+HealthPath, nil)
	if err != nil {
		c.release()
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.release()
		return nil, err
	}
	drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.release()
		return nil, fmt.Errorf("%w: health %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return c, nil
}

type connection struct {
	baseURL   string
	client    *http.Client
	transport *http.Transport
	ids       port_platform.IDGenerator
	closed    bool
}

func (c *connection) SendPix(ctx context.Context, amountCents int64, key string) (domain_pix.ResponseCode, error) {
	if c.closed {
		return "", ErrConnectionClosed
	}

	body, err := json.Marshal(TransferRequest{AmountCents: amountCents, Key: key})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+TransfersPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.ids != nil {
		req.Header.Set(RequestIDHeader, c.ids.NewUUID().String())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out TransferResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return domain_pix.ResponseCode(out.Code), nil
}

func (c *connection) Close() error {
	if c.closed {
		return ErrConnectionClosed
	}
	c.closed = true
	c.release()
	return nil
}

func (c *connection) release() {
	c.transport.CloseIdleConnections()
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	_ = resp.Body.Close()
}
