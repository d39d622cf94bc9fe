package adaptor

import (
	"net/http"
	"time"

	"nightsky-booking/pkg/utils"

	"go.uber.org/zap"
)

// DebugHandler reports which integrations are configured without exposing
// the secrets themselves. Useful when wiring up a new deployment.
type DebugHandler struct {
	config *utils.Config
	log    *zap.Logger
}

func NewDebugHandler(config *utils.Config, log *zap.Logger) *DebugHandler {
	return &DebugHandler{
		config: config,
		log:    log.With(zap.String("handler", "debug")),
	}
}

// Status handles GET /api/debug
func (h *DebugHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, map[string]any{
		"status": "Debug endpoint working",
		"environment": map[string]string{
			"database":       presence(h.config.Database.Host != ""),
			"whatsapp_token": presence(h.config.WhatsApp.Token != ""),
			"resend_api_key": keyPreview(h.config.Email.APIKey),
			"operator_phone": presence(h.config.WhatsApp.OperatorPhone != ""),
			"google_calendar": presence(h.config.Calendar.ServiceAccountKey != "" &&
				h.config.Calendar.CalendarID != ""),
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func presence(set bool) string {
	if set {
		return "set"
	}
	return "missing"
}

// keyPreview shows at most the first 7 characters of an API key, enough to
// tell keys apart without leaking them.
func keyPreview(key string) string {
	if key == "" {
		return "missing"
	}
	if len(key) > 7 {
		key = key[:7]
	}
	return "set (" + key + "...)"
}
