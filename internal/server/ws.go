package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/frame"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/metrics"
)

// Response tokens. Exactly one is written per received frame.
const (
	TokenStart = "start"
	TokenWait  = "wait"
	TokenError = "error"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // all origins accepted
	},
}

// SignalHandler runs the per-connection session loop: one frame in, one token
// out, strictly in order. A frame that fails to decode or detect answers
// "error" and the session continues; a transport failure ends the session.
type SignalHandler struct {
	detector detector.Detector
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewSignalHandler creates a SignalHandler. The detector may be shared with
// other handlers as long as its Detect is safe for serialized concurrent use.
func NewSignalHandler(d detector.Detector, m *metrics.Metrics, logger *zap.Logger) *SignalHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SignalHandler{
		detector: d,
		metrics:  m,
		logger:   logger,
	}
}

// ServeHTTP upgrades the connection and runs the session loop until the peer
// goes away.
func (h *SignalHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	log := h.logger.With(
		zap.String("session", uuid.NewString()),
		zap.String("remote", r.RemoteAddr),
	)
	log.Info("session opened")

	h.metrics.SessionsOpened.Add(1)
	h.metrics.ActiveSessions.Add(1)
	defer h.metrics.ActiveSessions.Add(-1)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			log.Info("session closed", zap.Error(err))
			return
		}
		h.metrics.FramesReceived.Add(1)

		token := h.processFrame(log, payload)

		if err := conn.WriteMessage(websocket.TextMessage, []byte(token)); err != nil {
			log.Info("session closed", zap.Error(err))
			return
		}
	}
}

// processFrame runs one frame through decode, detection and classification.
// Every failure maps to the error token; the client is told nothing more.
func (h *SignalHandler) processFrame(log *zap.Logger, payload []byte) string {
	img, err := frame.Decode(string(payload))
	if err != nil {
		log.Warn("frame decode failed", zap.Error(err))
		h.metrics.DecodeErrors.Add(1)
		return TokenError
	}
	defer img.Close()

	hands, err := h.detector.Detect(img)
	if err != nil {
		log.Warn("hand detection failed", zap.Error(err))
		h.metrics.DetectionErrors.Add(1)
		return TokenError
	}

	if gesture.PalmOpen(hands) {
		h.metrics.StartVerdicts.Add(1)
		return TokenStart
	}
	h.metrics.WaitVerdicts.Add(1)
	return TokenWait
}
