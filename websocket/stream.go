// Package websocket provides streaming point ingestion into hosted
// partitions over WebSocket connections with JSON frames.
package websocket

import (
	"io"
	"net/http"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/yggdrasil/models"
	"golang.org/x/net/websocket"
)

// StreamRequest is one inbound frame: a position to insert into the
// partition the stream is attached to.
type StreamRequest struct {
	Position []float64 `json:"position"`
}

// StreamResponse is one outbound frame, either the stored point and the
// region it landed in, or an error.
type StreamResponse struct {
	Point  *models.Point  `json:"point,omitempty"`
	Region *models.Region `json:"region,omitempty"`
	Error  string         `json:"error,omitempty"`
	Type   string         `json:"type,omitempty"`
}

// StreamHandler ingests points into partitions, one WebSocket connection per
// partition.
type StreamHandler struct {
	Partitions *models.PartitionStore
}

// Handler returns the handler serving a point stream for the partition
// identified by the request path value "id".
func (h *StreamHandler) Handler() http.Handler {
	return websocket.Server{
		Handler: func(conn *websocket.Conn) {
			defer conn.Close()
			h.serve(conn)
		},
	}
}

func (h *StreamHandler) serve(conn *websocket.Conn) {
	id := conn.Request().PathValue("id")

	p, ok := h.Partitions.Get(id)
	if !ok {
		h.send(conn, StreamResponse{
			Error: "partition is not hosted",
			Type:  "partition_not_found",
		})
		return
	}

	instrumentClientConnect()
	defer instrumentClientDisconnect()

	logs.WithTag("partition_id", id).Info("point stream opened")

	for {
		var req StreamRequest
		if err := websocket.JSON.Receive(conn, &req); err != nil {
			if err != io.EOF {
				logs.Warn(errors.New("receiving stream frame failed").
					WithTag("partition_id", id).
					Wrap(err))
			}
			logs.WithTag("partition_id", id).Info("point stream closed")
			return
		}
		instrumentReceivedMsg()

		point := models.NewPoint(req.Position)
		if err := p.Insert(point); err != nil {
			instrumentStreamError(errors.Type(err))
			h.send(conn, StreamResponse{
				Error: err.Error(),
				Type:  errors.Type(err),
			})
			continue
		}

		region, err := p.Locate(point.Position)
		if err != nil {
			instrumentStreamError(errors.Type(err))
			h.send(conn, StreamResponse{
				Error: err.Error(),
				Type:  errors.Type(err),
			})
			continue
		}

		h.send(conn, StreamResponse{
			Point:  &point,
			Region: &region,
		})
	}
}

func (h *StreamHandler) send(conn *websocket.Conn, res StreamResponse) {
	if err := websocket.JSON.Send(conn, res); err != nil {
		logs.Warn(errors.New("sending stream frame failed").Wrap(err))
		return
	}
	instrumentSentMsg()
}
