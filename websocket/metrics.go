package websocket

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	errTypeLabel = "error_type"
)

var (
	wsConnectedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ws_connected_clients",
		Help: "The number of connected point stream clients.",
	})

	wsReceivedMsgs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ws_received_msgs",
		Help: "The number of messages received from WebSocket connections.",
	})

	wsSentMsgs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ws_sent_msgs",
		Help: "The number of messages sent to WebSocket connections.",
	})

	wsStreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ws_stream_errors",
		Help: "The errors that occured while handling point stream frames.",
	}, []string{
		errTypeLabel,
	})
)

func instrumentClientConnect() {
	wsConnectedClients.Inc()
}

func instrumentClientDisconnect() {
	wsConnectedClients.Dec()
}

func instrumentReceivedMsg() {
	wsReceivedMsgs.Inc()
}

func instrumentSentMsg() {
	wsSentMsgs.Inc()
}

func instrumentStreamError(errType string) {
	wsStreamErrors.
		With(prometheus.Labels{errTypeLabel: errType}).
		Inc()
}
