package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the SSH front end. An empty HostKeyPath
// means ~/.arcade/host_key, generated on first start.
type SSHServerConfig struct {
	Address     string
	HostKeyPath string
	DBPath      string
	IdleTimeout time.Duration
	TickRate    int
	Game        config.PlatformerConfig
}

// DefaultSSHServerConfig returns the settings used by `platformer serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/platformer.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Game:        config.DefaultPlatformerConfig(),
	}
}

// SSHServer hands every connection its own SessionModel. Sessions share
// only the runs store.
type SSHServer struct {
	cfg    SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer prepares the server without listening. A runs database that
// cannot be opened only disables recording.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "platformer-ssh"})
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{cfg: cfg, logger: logger}
	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("runs will not be recorded", "db", cfg.DBPath, "err", err)
		s.store = nil
	}

	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			s.logSessions,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("tui: ssh server: %w", err)
	}
	return s, nil
}

func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: host key: %w", err)
		}
		path = filepath.Join(home, ".arcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: host key: %w", err)
	}
	return path, nil
}

func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "platformer needs a terminal; connect with ssh -t")
		return nil, nil
	}

	rt := core.RuntimeConfig{ScreenW: pty.Window.Width, ScreenH: pty.Window.Height, TickRate: s.cfg.TickRate}
	logger := s.logger.With("user", sess.User())
	return NewSessionModel(s.store, rt, s.cfg.Game, sess.User(), logger), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		l.Info("connected")
		next(sess)
		l.Info("disconnected", "after", time.Since(start).Round(time.Second))
	}
}

// Serve accepts connections until ctx is cancelled, then gives open
// sessions a short grace period before closing them.
func (s *SSHServer) Serve(ctx context.Context) error {
	defer s.closeStore()

	errc := make(chan error, 1)
	go func() { errc <- s.server.ListenAndServe() }()
	s.logger.Info("listening", "address", s.cfg.Address)

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}
