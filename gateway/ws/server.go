package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/solacecommunity/feedstreams/errors"
	"github.com/solacecommunity/feedstreams/eventlog"
	"github.com/solacecommunity/feedstreams/feed"
	"github.com/solacecommunity/feedstreams/metric"
	"github.com/solacecommunity/feedstreams/scheduler"
)

// Message types carried in the envelope.
const (
	TypeHello    = "hello"
	TypeSnapshot = "snapshot"
	TypeEvent    = "event"
)

// Envelope wraps every message sent to a client.
type Envelope struct {
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Hello is the first message a client receives: the loaded feeds and the
// current stream instances.
type Hello struct {
	Feeds   []FeedSummary    `json:"feeds"`
	Streams []scheduler.Info `json:"streams"`
}

// FeedSummary describes one loaded feed to clients. Info is nil when the
// feed ships no feedinfo file.
type FeedSummary struct {
	Name   string     `json:"name"`
	Info   *feed.Info `json:"info,omitempty"`
	Events []string   `json:"events"`
}

// StreamLister exposes the scheduler's instance snapshot to the gateway.
type StreamLister interface {
	Instances() []scheduler.Info
}

// Config holds the gateway listen settings.
type Config struct {
	Addr         string
	Path         string
	PingInterval time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns the default gateway settings.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8081",
		Path:         "/ws",
		PingInterval: 30 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// Server is a WebSocket gateway that streams the event log to connected
// clients. Each client gets a hello message, a snapshot of recent
// events, then a live stream of new entries.
type Server struct {
	cfg     Config
	log     *eventlog.Log
	streams StreamLister
	feeds   []FeedSummary
	logger  *slog.Logger
	metrics *Metrics

	server   *http.Server
	listener net.Listener
	upgrader websocket.Upgrader

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*client

	lifecycleMu sync.Mutex
	running     bool
	shutdown    chan struct{}
	wg          *sync.WaitGroup
}

// client tracks one WebSocket connection. gorilla/websocket forbids
// concurrent writes to a connection, so every write holds writeMu.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	cancel  func()
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the gateway logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics wires the gateway to a metrics registry.
func WithMetrics(registry *metric.MetricsRegistry) Option {
	return func(s *Server) {
		s.metrics = newMetrics(registry)
	}
}

// NewServer builds a gateway over the given event log. The stream lister
// may be nil; the hello message then carries no stream list.
func NewServer(cfg Config, log *eventlog.Log, streams StreamLister, feeds []feed.Feed, opts ...Option) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	if cfg.Path == "" {
		cfg.Path = DefaultConfig().Path
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = DefaultConfig().PingInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultConfig().WriteTimeout
	}

	summaries := make([]FeedSummary, 0, len(feeds))
	for _, f := range feeds {
		summary := FeedSummary{Name: f.Name, Info: f.Info}
		for _, rule := range f.Rules {
			summary.Events = append(summary.Events, rule.EventName)
		}
		summaries = append(summaries, summary)
	}

	s := &Server{
		cfg:     cfg,
		log:     log,
		streams: streams,
		feeds:   summaries,
		logger:  slog.Default(),
		clients: make(map[*websocket.Conn]*client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins listening and serving WebSocket clients. Idempotent while
// running.
func (s *Server) Start(ctx context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if s.running {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "Gateway", "Start", "context already cancelled")
	}

	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.WrapFatal(err, "Gateway", "Start", "listen on "+s.cfg.Addr)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(s.cfg.Path, s.handleWebSocket)

	s.listener = listener
	s.server = &http.Server{Handler: mux}
	s.shutdown = make(chan struct{})
	s.wg = &sync.WaitGroup{}
	s.running = true

	s.wg.Add(1)
	go s.runServer()

	s.logger.Info("websocket gateway listening",
		"addr", listener.Addr().String(),
		"path", s.cfg.Path)
	return nil
}

// Addr returns the bound listen address, useful when the configured port
// was 0.
func (s *Server) Addr() string {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop drains clients and shuts the server down within the timeout. Safe
// to call when not running.
func (s *Server) Stop(timeout time.Duration) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false
	close(s.shutdown)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("gateway shutdown error", "error", err)
	}

	s.closeAllClients()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		s.logger.Warn("gateway goroutines did not exit within timeout")
	}

	s.server = nil
	s.listener = nil
	return nil
}

func (s *Server) runServer() {
	defer s.wg.Done()

	err := s.server.Serve(s.listener)
	if err != nil && err != http.ErrServerClosed {
		s.logger.Error("gateway server failed", "error", err)
		if s.metrics != nil {
			s.metrics.errorsTotal.WithLabelValues("serve").Inc()
		}
	}
}

// handleWebSocket upgrades a connection and starts its stream.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if s.metrics != nil {
			s.metrics.errorsTotal.WithLabelValues("upgrade").Inc()
		}
		return
	}

	// Subscribe before the snapshot is taken so entries appended in
	// between are not lost; duplicates across the boundary are possible
	// and harmless for a display
	entries, cancel := s.log.Subscribe()

	c := &client{conn: conn, cancel: cancel}

	s.clientsMu.Lock()
	s.clients[conn] = c
	count := len(s.clients)
	s.clientsMu.Unlock()

	if s.metrics != nil {
		s.metrics.connectionsTotal.Inc()
		s.metrics.clientsConnected.Set(float64(count))
	}
	s.logger.Debug("client connected", "remote", r.RemoteAddr, "clients", count)

	s.wg.Add(2)
	go s.writeLoop(c, entries)
	go s.readLoop(c)
}

// writeLoop sends hello, snapshot, then live entries and pings.
func (s *Server) writeLoop(c *client, entries <-chan eventlog.Entry) {
	defer s.wg.Done()
	defer s.removeClient(c, "write_closed")

	if err := s.sendHello(c); err != nil {
		return
	}
	if err := s.sendSnapshot(c); err != nil {
		return
	}

	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.shutdown:
			return
		case entry, ok := <-entries:
			if !ok {
				return
			}
			if err := s.sendEnvelope(c, TypeEvent, entry); err != nil {
				return
			}
			if s.metrics != nil {
				s.metrics.eventsSent.Inc()
			}
		case <-ticker.C:
			c.writeMu.Lock()
			_ = c.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			err := c.conn.WriteMessage(websocket.PingMessage, nil)
			c.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// readLoop drains client frames so pongs and close frames are processed.
func (s *Server) readLoop(c *client) {
	defer s.wg.Done()
	defer s.removeClient(c, "read_closed")

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(2 * s.cfg.PingInterval))
	})
	_ = c.conn.SetReadDeadline(time.Now().Add(2 * s.cfg.PingInterval))

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) sendHello(c *client) error {
	hello := Hello{Feeds: s.feeds}
	if s.streams != nil {
		hello.Streams = s.streams.Instances()
	}
	return s.sendEnvelope(c, TypeHello, hello)
}

func (s *Server) sendSnapshot(c *client) error {
	return s.sendEnvelope(c, TypeSnapshot, s.log.Snapshot())
}

func (s *Server) sendEnvelope(c *client, msgType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		if s.metrics != nil {
			s.metrics.errorsTotal.WithLabelValues("marshal").Inc()
		}
		return errors.Wrap(err, "Gateway", "sendEnvelope", fmt.Sprintf("marshal %s payload", msgType))
	}

	data, err := json.Marshal(Envelope{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
		Payload:   raw,
	})
	if err != nil {
		return errors.Wrap(err, "Gateway", "sendEnvelope", "marshal envelope")
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		if s.metrics != nil {
			s.metrics.errorsTotal.WithLabelValues("write").Inc()
		}
		return err
	}
	if s.metrics != nil {
		s.metrics.bytesSent.Add(float64(len(data)))
	}
	return nil
}

// removeClient unregisters and closes a connection. Safe to call from
// both loops; the second call is a no-op.
func (s *Server) removeClient(c *client, reason string) {
	s.clientsMu.Lock()
	_, present := s.clients[c.conn]
	if present {
		delete(s.clients, c.conn)
	}
	count := len(s.clients)
	s.clientsMu.Unlock()

	if !present {
		return
	}

	c.cancel()
	_ = c.conn.Close()

	if s.metrics != nil {
		s.metrics.disconnectionTotal.WithLabelValues(reason).Inc()
		s.metrics.clientsConnected.Set(float64(count))
	}
	s.logger.Debug("client disconnected", "reason", reason, "clients", count)
}

func (s *Server) closeAllClients() {
	s.clientsMu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.clientsMu.Unlock()

	for _, c := range clients {
		s.removeClient(c, "server_shutdown")
	}
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}
