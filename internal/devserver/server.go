// Package devserver serves the studio's static demo assets over plain
// HTTP. Browsers (and background services) sometimes open an HTTPS
// connection to the HTTP port, which would otherwise log a stream of
// "400 Bad request" noise; the listener here detects TLS handshakes,
// logs one concise hint, and drops the connection.
package devserver

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"time"
)

// tlsPrefixes are the byte patterns that open a TLS ClientHello: the
// 0x16 0x03 record header covers all TLS minor versions, and the second
// pattern captures some legacy SSL probes.
var tlsPrefixes = [][]byte{
	{0x16, 0x03},
	{0x00, 0x02, 0x01, 0x00},
}

// LooksLikeTLSHandshake reports whether data opens like a TLS/SSL
// handshake.
func LooksLikeTLSHandshake(data []byte) bool {
	for _, p := range tlsPrefixes {
		if len(data) >= len(p) && bytes.Equal(data[:len(p)], p) {
			return true
		}
	}
	return false
}

// Server is a static file server with TLS-handshake detection.
type Server struct {
	Addr string
	Dir  string

	// Logger defaults to the standard logger.
	Logger *log.Logger
}

// ListenAndServe serves files from Dir on Addr until the context is
// cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}

	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:      http.FileServer(http.Dir(s.Dir)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	err = srv.Serve(&sniffListener{Listener: ln, logger: logger})
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// sniffListener wraps accepted connections so the first read can be
// inspected for a TLS handshake.
type sniffListener struct {
	net.Listener
	logger *log.Logger
}

func (l *sniffListener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	return &sniffConn{
		Conn:   conn,
		br:     bufio.NewReader(conn),
		logger: l.logger,
	}, nil
}

// sniffConn peeks at the first bytes of the connection. If they open a
// TLS handshake the connection is reported as closed, which makes the
// HTTP server drop it without emitting a 400 response.
type sniffConn struct {
	net.Conn
	br      *bufio.Reader
	logger  *log.Logger
	checked bool
	reject  bool
}

func (c *sniffConn) Read(p []byte) (int, error) {
	if !c.checked {
		c.checked = true
		// Peek may return fewer bytes alongside an error; the prefix
		// check handles short reads.
		prefix, _ := c.br.Peek(4)
		if LooksLikeTLSHandshake(prefix) {
			c.reject = true
			c.logger.Printf("ignored TLS handshake from %s on HTTP port; use plain http://",
				c.RemoteAddr())
		}
	}
	if c.reject {
		return 0, io.EOF
	}
	return c.br.Read(p)
}
