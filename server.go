package mdblog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// HTTP server timeouts.
const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// notFoundMessage is the body of a 404 for an unknown post.
const notFoundMessage = "Post not found"

// Server renders posts on every request. It is an http.Handler.
type Server struct {
	posts     PostLoader
	templates Templates
	site      Site
	staticDir string
	log       io.Writer
	mux       *http.ServeMux
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithStaticDir serves dir under /static/. Without it /static/ is not
// routed.
func WithStaticDir(dir string) ServerOption {
	return func(s *Server) {
		s.staticDir = dir
	}
}

// WithSite sets the site values passed to templates.
func WithSite(site Site) ServerOption {
	return func(s *Server) {
		s.site = site
	}
}

// WithLogger sets where request failures are reported. Defaults to
// io.Discard.
func WithLogger(w io.Writer) ServerOption {
	return func(s *Server) {
		if w != nil {
			s.log = w
		}
	}
}

// NewServer creates a Server rendering posts with templates.
func NewServer(posts PostLoader, templates Templates, opts ...ServerOption) *Server {
	s := &Server{
		posts:     posts,
		templates: templates,
		log:       io.Discard,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET "+BlogPrefix+"{slug}", s.handlePost)
	if s.staticDir != "" {
		s.mux.Handle("GET "+StaticPrefix, http.StripPrefix(StaticPrefix, http.FileServer(http.Dir(s.staticDir))))
	}

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.LoadAll(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := s.templates.RenderIndex(&buf, IndexPage{Site: s.site, Posts: posts, URLs: LiveURLs{}}); err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, &buf)
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	post, found, err := s.posts.LoadOne(r.Context(), r.PathValue("slug"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !found {
		http.Error(w, notFoundMessage, http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := s.templates.RenderPost(&buf, PostPage{Site: s.site, Post: post, URLs: LiveURLs{}}); err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, &buf)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	fmt.Fprintf(s.log, "error: %s %s: %v\n", r.Method, r.URL.Path, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, body *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = body.WriteTo(w)
}

// ListenAndServe listens on addr and serves until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. ln is closed on
// return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		<-errCh
		return nil
	}
}
