package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nightsky-booking/internal/data/entity"

	"go.uber.org/zap"
)

const graphAPIBase = "https://graph.facebook.com/v17.0"

// WhatsAppDispatcher notifies the tour operator about a new booking via the
// Meta Graph API. Without a token it degrades to a logged skip.
type WhatsAppDispatcher struct {
	token         string
	phoneNumberID string
	operatorPhone string
	baseURL       string
	client        *http.Client
	log           *zap.Logger
}

func NewWhatsAppDispatcher(token, phoneNumberID, operatorPhone string, log *zap.Logger) *WhatsAppDispatcher {
	return &WhatsAppDispatcher{
		token:         token,
		phoneNumberID: phoneNumberID,
		operatorPhone: operatorPhone,
		baseURL:       graphAPIBase,
		client:        &http.Client{Timeout: 10 * time.Second},
		log:           log.With(zap.String("dispatcher", "whatsapp")),
	}
}

func (d *WhatsAppDispatcher) Name() string { return "whatsapp" }

type whatsAppText struct {
	Body string `json:"body"`
}

type whatsAppMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

func (d *WhatsAppDispatcher) Dispatch(ctx context.Context, booking *entity.Booking) error {
	if d.token == "" || d.phoneNumberID == "" || d.operatorPhone == "" {
		d.log.Info("WhatsApp credentials not configured, skipping notification",
			zap.String("booking_id", booking.BookingID))
		return nil
	}

	payload := whatsAppMessage{
		MessagingProduct: "whatsapp",
		To:               d.operatorPhone,
		Type:             "text",
		Text:             whatsAppText{Body: operatorMessage(booking)},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal whatsapp payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", d.baseURL, d.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+d.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("send whatsapp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("whatsapp API status %d: %s", resp.StatusCode, detail)
	}

	return nil
}

func operatorMessage(booking *entity.Booking) string {
	return fmt.Sprintf(`🌟 *NUEVA RESERVA - Atacama NightSky* 🌟

📅 *Fecha:* %s
⏰ *Horario:* %s
👥 *Personas:* %d
🎯 *Tour:* %s
👤 *Cliente:* %s
📱 *Teléfono:* %s

🆔 *ID Reserva:* %s

¡Confirma disponibilidad y contacta al cliente!`,
		booking.Date,
		booking.Time,
		booking.Persons,
		booking.TourType.Label(),
		booking.Name,
		booking.Phone,
		booking.BookingID,
	)
}
