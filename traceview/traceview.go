// Package traceview streams live trace events to WebSocket clients, so a
// traced run can be watched from a browser instead of scrolling stderr.
package traceview

import (
	"context"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/samthor/algogo/trace"
)

// Handler returns an http.HandlerFunc that upgrades to a WebSocket and
// streams batches of events from the hub, one JSON array per message.
// The stream runs until the client disconnects.
func Handler(hub *trace.Hub, options *websocket.AcceptOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sock, err := websocket.Accept(w, r, options)
		if err != nil {
			log.Printf("got err setting up websocket %s: %v", r.URL.Path, err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		eg, ctx := errgroup.WithContext(r.Context())
		listener := hub.Join(ctx)

		eg.Go(func() error {
			for {
				batch := listener.Batch()
				if len(batch) == 0 {
					return ctx.Err() // evicted
				}
				if err := wsjson.Write(ctx, sock, batch); err != nil {
					return err
				}
			}
		})

		// we want to be actively reading, it's how we are informed the
		// socket has closed early
		eg.Go(func() error {
			for {
				if _, _, err := sock.Read(ctx); err != nil {
					return err
				}
			}
		})

		err = eg.Wait()
		if err != nil && err != context.Canceled && websocket.CloseStatus(err) == -1 {
			sock.Close(websocket.StatusInternalError, "")
			return
		}
		sock.Close(websocket.StatusNormalClosure, "")
	}
}

// ListenAndServe hosts the hub's event stream on addr, at /events, with h2c
// support so it can sit behind providers that speak unencrypted HTTP/2.
func ListenAndServe(addr string, hub *trace.Hub) error {
	mux := http.NewServeMux()
	mux.Handle("/events", Handler(hub, nil))

	h2s := &http2.Server{}
	s := http.Server{Addr: addr, Handler: h2c.NewHandler(mux, h2s)}
	return s.ListenAndServe()
}
