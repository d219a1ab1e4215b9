package server

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/gridsearch"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// wsClient wraps a WebSocket connection with a write lock.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) send(ev StreamEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return c.conn.WriteJSON(ev)
}

// streamObserver forwards search events to the client. A failed write or
// a cancelled context stops the run through cancel.
type streamObserver struct {
	ctx    context.Context
	cancel context.CancelFunc
	client *wsClient
	id     uuid.UUID
	delay  time.Duration
}

func (o *streamObserver) emit(kind string, c *grid.Cell) {
	if o.ctx.Err() != nil {
		return
	}
	if err := o.client.send(StreamEvent{ID: o.id, Type: kind, Row: c.Row(), Col: c.Col()}); err != nil {
		o.cancel()
	}
}

func (o *streamObserver) OnOpen(c *grid.Cell) { o.emit(EventOpen, c) }

func (o *streamObserver) OnExpand(c *grid.Cell) {
	o.emit(EventExpand, c)
	if o.delay <= 0 {
		return
	}
	t := time.NewTimer(o.delay)
	defer t.Stop()
	select {
	case <-o.ctx.Done():
	case <-t.C:
	}
}

func (o *streamObserver) OnPathStep(c *grid.Cell) { o.emit(EventPath, c) }

// stream upgrades to a WebSocket and runs ?algorithm= on ?grid=, whose
// rows are separated by commas. Closing the socket aborts the run.
func (sc *SearchController) stream(ctx *gin.Context) {
	alg, err := gridsearch.ParseAlgorithm(ctx.Query("algorithm"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, start, end, err := sc.load(strings.Split(ctx.Query("grid"), ","))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		sc.log.Warnf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	client := &wsClient{conn: conn}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// the reader only watches for the peer going away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	id := uuid.New()
	obs := &streamObserver{ctx: runCtx, cancel: cancel, client: client, id: id, delay: sc.stepDelay}
	res, err := gridsearch.Run(alg, g, start, end, search.WithContext(runCtx), search.WithObserver(obs))
	if err != nil {
		_ = client.send(StreamEvent{ID: id, Type: EventError, Error: err.Error()})
		return
	}
	sc.summary(id, res)

	if runCtx.Err() != nil {
		return
	}
	out := toResponse(id, res)
	if err := client.send(StreamEvent{ID: id, Type: EventDone, Result: &out}); err != nil {
		sc.log.WithField("run", id).Warnf("final event: %v", err)
		return
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"), time.Now().Add(time.Second))
}
