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

const resendAPIURL = "https://api.resend.com/emails"

// EmailDispatcher sends the customer confirmation and the admin notification
// through the Resend HTTP API. Without an API key it degrades to a logged
// skip. Both sends are attempted even if the first fails.
type EmailDispatcher struct {
	apiKey     string
	from       string
	replyTo    string
	adminEmail string
	apiURL     string
	client     *http.Client
	log        *zap.Logger
}

func NewEmailDispatcher(apiKey, from, replyTo, adminEmail string, log *zap.Logger) *EmailDispatcher {
	return &EmailDispatcher{
		apiKey:     apiKey,
		from:       from,
		replyTo:    replyTo,
		adminEmail: adminEmail,
		apiURL:     resendAPIURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		log:        log.With(zap.String("dispatcher", "email")),
	}
}

func (d *EmailDispatcher) Name() string { return "email" }

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

func (d *EmailDispatcher) Dispatch(ctx context.Context, booking *entity.Booking) error {
	if d.apiKey == "" {
		d.log.Info("Email API key not configured, skipping confirmation",
			zap.String("booking_id", booking.BookingID))
		return nil
	}

	err := d.send(ctx, resendEmail{
		From:    d.from,
		To:      []string{booking.Email},
		Subject: fmt.Sprintf("Confirmación de Reserva - %s", booking.BookingID),
		HTML:    confirmationHTML(booking),
		ReplyTo: d.replyTo,
	})
	if err != nil {
		err = fmt.Errorf("customer confirmation: %w", err)
	}

	if d.adminEmail != "" {
		if adminErr := d.send(ctx, resendEmail{
			From:    d.from,
			To:      []string{d.adminEmail},
			Subject: fmt.Sprintf("Nueva reserva %s - %s", booking.BookingID, booking.Date),
			HTML:    adminNotificationHTML(booking),
		}); adminErr != nil {
			d.log.Error("Admin notification failed",
				zap.String("booking_id", booking.BookingID),
				zap.Error(adminErr))
			if err == nil {
				err = fmt.Errorf("admin notification: %w", adminErr)
			}
		}
	}

	return err
}

func (d *EmailDispatcher) send(ctx context.Context, email resendEmail) error {
	body, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("email API status %d: %s", resp.StatusCode, detail)
	}

	return nil
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

// formatSpanishDate renders a YYYY-MM-DD date as e.g.
// "domingo, 15 de junio de 2025". Unparseable input passes through as-is.
func formatSpanishDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %d de %s de %d",
		spanishWeekdays[t.Weekday()], t.Day(), spanishMonths[t.Month()-1], t.Year())
}

func confirmationHTML(booking *entity.Booking) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #00D4FF;">¡Gracias por tu reserva!</h2>

  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px;">
    <h3>Detalles de tu reserva:</h3>
    <p><strong>ID de Reserva:</strong> %s</p>
    <p><strong>Fecha:</strong> %s</p>
    <p><strong>Horario:</strong> %s</p>
    <p><strong>Personas:</strong> %d</p>
    <p><strong>Tipo de Tour:</strong> %s</p>
  </div>

  <div style="margin: 20px 0;">
    <h3>Próximos pasos:</h3>
    <ol>
      <li>Te contactaremos dentro de 24 horas para confirmar disponibilidad</li>
      <li>Coordinaremos punto de encuentro y detalles de pago</li>
      <li>Recibirás recordatorio 24 horas antes del tour</li>
    </ol>
  </div>

  <div style="background: #e3f2fd; padding: 15px; border-radius: 8px;">
    <h4>¿Qué llevar al tour?</h4>
    <ul>
      <li>Ropa abrigada (temperaturas nocturnas bajas)</li>
      <li>Zapatos cómodos</li>
      <li>Cámara (opcional)</li>
    </ul>
  </div>

  <p style="margin-top: 20px;"><strong>¿Preguntas?</strong> Contáctanos por WhatsApp.</p>

  <p style="color: #666; font-size: 12px;">Atacama NightSky - Tours Astronómicos en San Pedro de Atacama</p>
</div>`,
		booking.BookingID,
		formatSpanishDate(booking.Date),
		booking.Time,
		booking.Persons,
		booking.TourType.Label(),
	)
}

func adminNotificationHTML(booking *entity.Booking) string {
	message := booking.Message
	if message == "" {
		message = "Sin comentarios"
	}

	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif;">
  <h2>Nueva reserva recibida</h2>
  <p><strong>ID:</strong> %s</p>
  <p><strong>Fecha:</strong> %s</p>
  <p><strong>Horario:</strong> %s</p>
  <p><strong>Tour:</strong> %s</p>
  <p><strong>Personas:</strong> %d</p>
  <p><strong>Cliente:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Teléfono:</strong> %s</p>
  <p><strong>Comentarios:</strong> %s</p>
</div>`,
		booking.BookingID,
		formatSpanishDate(booking.Date),
		booking.Time,
		booking.TourType.Label(),
		booking.Persons,
		booking.Name,
		booking.Email,
		booking.Phone,
		message,
	)
}
