package impl_fakeserver

import (
	"context"
	"sync/atomic"

	domain_pix "github.com/Danilo-Couto/simulador-de-pix/internal/domain/pix"
	port_server "github.com/Danilo-Couto/simulador-de-pix/internal/ports/gateway/server"
)

// Server is an in-process stand-in for the remote Pix service. Every
// connection answers with the same code; no request state is kept.
type Server struct {
	code    domain_pix.ResponseCode
	openErr error
	sendErr error

	opened atomic.Int64
	closed atomic.Int64
}

type Option func(*Server)

func WithCode(code domain_pix.ResponseCode) Option {
	return func(s *Server) { s.code = code }
}

func WithOpenError(err error) Option {
	return func(s *Server) { s.openErr = err }
}

func WithSendError(err error) Option {
	return func(s *Server) { s.sendErr = err }
}

func New(opts ...Option) *Server {
	s := &Server{code: domain_pix.CodeSuccess}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) OpenConnection(_ context.Context) (port_server.Connection, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}

	s.opened.Add(1)
	return &connection{server: s}, nil
}

// Opened and Closed count connection lifecycle events across all callers.
func (s *Server) Opened() int64 { return s.opened.Load() }

func (s *Server) Closed() int64 { return s.closed.Load() }

type connection struct {
	server *Server
}

func (c *connection) SendPix(_ context.Context, _ int64, _ string) (domain_pix.ResponseCode, error) {
	if c.server.sendErr != nil {
		return "", c.server.sendErr
	}
	return c.server.code, nil
}

func (c *connection) Close() error {
	c.server.closed.Add(1)
	return nil
}
