package serve

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sitegen/internal/build"
	"sitegen/internal/domain/config"
	"sitegen/internal/metrics"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// Server rebuilds the site when its inputs change and serves the output directory.
type Server struct {
	cfg    config.Config
	logger *slog.Logger

	registry *prom.Registry
	builder  *build.Builder

	// serializes rebuilds
	mu sync.Mutex

	watcher *fsnotify.Watcher
}

func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	reg := prom.NewRegistry()
	return &Server{
		cfg:      cfg,
		logger:   logger,
		registry: reg,
		builder: &build.Builder{
			Cfg:     cfg,
			Logger:  logger,
			Metrics: metrics.NewRecorder(reg),
		},
	}
}

func (s *Server) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// Handler serves the built site and /metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	mux.Handle("/", http.FileServer(http.Dir(s.cfg.Build.DistDir)))
	return mux
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if err := s.Rebuild(ctx); err != nil {
		return err
	}

	if err := s.startWatching(); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", addr, "dir", s.cfg.Build.DistDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		s.watchLoop(ctx)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Rebuild runs one full build; concurrent calls queue behind each other.
func (s *Server) Rebuild(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.builder.Run(ctx)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	s.logger.Info("rebuild complete", "posts", len(res.Posts))
	return nil
}

func (s *Server) startWatching() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("serve: failed to create watcher: %w", err)
	}
	s.watcher = w
	return s.addWatches()
}

// addWatches watches the posts directory, the template directory and every
// directory of the public tree. The parents of posts and public are watched
// as well so that either one can appear after startup.
func (s *Server) addWatches() error {
	b := s.cfg.Build
	dirs := []string{
		b.PostsDir,
		filepath.Dir(b.PostsDir),
		filepath.Dir(b.PublicDir),
		filepath.Dir(b.TemplatePath),
	}

	err := filepath.WalkDir(b.PublicDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("serve: walk %s: %w", b.PublicDir, err)
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			s.logger.Debug("not watching missing directory", "dir", dir)
			continue
		}
		if err := s.watcher.Add(dir); err != nil {
			return fmt.Errorf("serve: watch %s: %w", dir, err)
		}
	}
	return nil
}

// watchNewDir starts watching a directory created under posts or public.
// A new public directory is walked since it may arrive with subdirectories.
func (s *Server) watchNewDir(name string) {
	b := s.cfg.Build
	if fi, err := os.Stat(name); err != nil || !fi.IsDir() {
		return
	}
	switch {
	case filepath.Clean(name) == filepath.Clean(b.PostsDir):
		if err := s.watcher.Add(name); err != nil {
			s.logger.Warn("watch failed", "dir", name, "error", err)
		}
	case within(name, b.PublicDir):
		_ = filepath.WalkDir(name, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return nil
			}
			if err := s.watcher.Add(path); err != nil {
				s.logger.Warn("watch failed", "dir", path, "error", err)
			}
			return nil
		})
	}
}

// relevant reports whether a change to name affects the build inputs.
func (s *Server) relevant(name string) bool {
	b := s.cfg.Build
	name = filepath.Clean(name)
	if name == filepath.Clean(b.TemplatePath) {
		return true
	}
	if within(name, b.DistDir) {
		return false
	}
	return within(name, b.PostsDir) || within(name, b.PublicDir)
}

func within(name, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), name)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (s *Server) watchLoop(ctx context.Context) {
	s.logger.Info("watching for file changes")
	debounce := time.NewTimer(time.Hour)
	debounce.Stop()

	delay := s.cfg.Serve.Debounce
	if delay <= 0 {
		delay = 200 * time.Millisecond
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !s.relevant(ev.Name) {
				continue
			}
			s.logger.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			if ev.Has(fsnotify.Create) {
				s.watchNewDir(ev.Name)
			}
			debounce.Reset(delay)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("watcher error", "error", err)
		case <-debounce.C:
			if err := s.Rebuild(ctx); err != nil {
				s.logger.Error("rebuild failed", "error", err)
			}
		}
	}
}
