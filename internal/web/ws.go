package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vitos/lp_wave/internal/domain"
	"github.com/vitos/lp_wave/internal/usecase"
	"go.uber.org/zap"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// envelope is the message pushed to a frame stream.
type envelope struct {
	Type    string        `json:"type"`
	Session string        `json:"session,omitempty"`
	Frame   *domain.Frame `json:"frame,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// streamConn serializes writes to one websocket. Frames that arrive while the
// buffer is full are dropped; the next frame supersedes them.
type streamConn struct {
	conn *websocket.Conn
	send chan envelope
	done chan struct{}
	once sync.Once
}

func newStreamConn(conn *websocket.Conn) *streamConn {
	return &streamConn{
		conn: conn,
		send: make(chan envelope, sendBuffer),
		done: make(chan struct{}),
	}
}

func (c *streamConn) push(msg envelope) {
	select {
	case <-c.done:
	case c.send <- msg:
	default:
	}
}

func (c *streamConn) close() {
	c.once.Do(func() {
		close(c.done)
	})
}

func (c *streamConn) writeLoop(logger *zap.Logger) {
	defer c.conn.Close()
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				logger.Debug("WS write error", zap.Error(err))
				c.close()
				return
			}
		}
	}
}

// handleWS streams frames of the session named by the session query
// parameter. Without one, a session is created for the connection and closed
// when it ends. Text messages received are commands.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	var (
		sim   *usecase.Simulator
		owned bool
	)
	if id := r.URL.Query().Get("session"); id != "" {
		var err error
		if sim, err = s.sessions.Get(id); err != nil {
			s.writeError(w, err)
			return
		}
	} else {
		sim = s.sessions.Create()
		owned = true
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("WS upgrade failed", zap.Error(err))
		if owned {
			_ = s.sessions.Close(sim.ID())
		}
		return
	}

	sc := newStreamConn(conn)
	go sc.writeLoop(s.logger)

	unsubscribe := sim.OnFrame(func(f domain.Frame) {
		sc.push(envelope{Type: "frame", Session: sim.ID(), Frame: &f})
	})
	defer func() {
		unsubscribe()
		sc.close()
		if owned {
			if err := s.sessions.Close(sim.ID()); err != nil {
				s.logger.Warn("Failed to close session", zap.String("session", sim.ID()), zap.Error(err))
			}
		}
	}()

	first := sim.Frame()
	sc.push(envelope{Type: "frame", Session: sim.ID(), Frame: &first})
	s.logger.Debug("WS client connected", zap.String("session", sim.ID()), zap.Bool("owned", owned))

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			s.logger.Debug("WS client disconnected", zap.String("session", sim.ID()), zap.Error(err))
			return
		}
		var cmd domain.Command
		if err := json.Unmarshal(message, &cmd); err != nil {
			sc.push(envelope{Type: "error", Error: "invalid command"})
			continue
		}
		if err := sim.Apply(cmd); err != nil {
			sc.push(envelope{Type: "error", Error: err.Error()})
		}
	}
}
