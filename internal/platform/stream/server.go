package stream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/registry"
	"github.com/vovakirdan/tui-worm/internal/storage"
)

// Path is where the WebSocket endpoint is mounted.
const Path = "/ws"

// DefaultGame is played when the client does not pick a variant.
const DefaultGame = "worm_medium"

// ServerConfig holds configuration for the stream server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// TickRate is the number of frames per second sent to every client.
	TickRate int

	// Seed fixes the RNG of every game. Zero seeds from the clock.
	Seed int64

	// MaxConns caps concurrent games. Zero means no limit.
	MaxConns int

	// Store receives finished rounds. May be nil.
	Store *storage.Store

	// Logger receives connection and server events. Nil uses a default logger.
	Logger *log.Logger
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:  ":8080",
		TickRate: 30,
		MaxConns: 64,
	}
}

// Server streams games to WebSocket clients.
type Server struct {
	config   ServerConfig
	logger   *log.Logger
	conns    *ConnRegistry
	upgrader websocket.Upgrader
	http     *http.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex // protects closed and wg.Add
	closed bool
}

// NewServer creates a stream server.
func NewServer(cfg ServerConfig) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "worm-stream",
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		config: cfg,
		logger: logger,
		conns:  NewConnRegistry(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		ctx:    ctx,
		cancel: cancel,
	}

	mux := http.NewServeMux()
	mux.HandleFunc(Path, s.handleWS)
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler serving the endpoint.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Conns returns the live connection registry.
func (s *Server) Conns() *ConnRegistry {
	return s.conns
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		gameID = DefaultGame
	}
	if !registry.Exists(gameID) {
		http.Error(w, fmt.Sprintf("unknown game %q", gameID), http.StatusNotFound)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	if !s.enter() {
		refuse(ws, "server shutting down")
		return
	}
	defer s.wg.Done()

	game, err := registry.Create(gameID)
	if err != nil {
		s.logger.Error("cannot create game", "game", gameID, "error", err)
		refuse(ws, err.Error())
		return
	}
	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{TickRate: s.config.TickRate, Seed: seed})

	conn := newConn(ws, gameID, game, s.logger.With("remote", r.RemoteAddr))
	if !s.conns.TryAdd(conn, s.config.MaxConns) {
		refuse(ws, "server full, try again later")
		return
	}
	defer s.conns.Remove(conn.ID)

	if err := conn.Send(WelcomeMsg{Type: MsgWelcome, ID: conn.ID, Game: gameID}); err != nil {
		conn.logger.Warn("welcome failed", "error", err)
		ws.Close()
		return
	}

	start := time.Now()
	conn.logger.Info("stream started")
	if err := conn.serve(s.ctx, s.config.TickRate, s.saveRound); err != nil {
		conn.logger.Warn("stream error", "error", err)
	}
	conn.logger.Info("stream ended", "duration", time.Since(start).Round(time.Second))
}

// enter registers a running handler with Shutdown. It fails once Shutdown
// has started.
func (s *Server) enter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.wg.Add(1)
	return true
}

// saveRound records a finished round against the connection ID.
func (s *Server) saveRound(c *Conn, state core.GameState) {
	c.logger.Info("round over", "score", state.Score, "level", state.Level)
	if s.config.Store == nil || state.Score <= 0 {
		return
	}
	if _, err := s.config.Store.SaveSessionScore(c.ID, c.GameID, state.Score, state.Level); err != nil {
		c.logger.Warn("could not save score", "error", err)
	}
}

func refuse(ws *websocket.Conn, reason string) {
	//nolint:errcheck // Best-effort notice before closing
	ws.WriteJSON(ErrorMsg{Type: MsgError, Message: reason})
	ws.Close()
}

// Serve accepts connections on l until ctx is cancelled, then shuts down.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	s.logger.Info("starting stream server", "address", l.Addr().String(), "fps", s.config.TickRate)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		s.Shutdown()
		return err
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("stream: cannot listen: %w", err)
	}
	return s.Serve(ctx, l)
}

// Shutdown stops accepting connections and ends every running game.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	err := s.http.Shutdown(ctx)
	s.cancel()
	s.wg.Wait()
	return err
}
