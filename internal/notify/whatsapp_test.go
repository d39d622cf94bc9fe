package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nightsky-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWhatsAppDispatch_SendsOperatorMessage(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload whatsAppMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewWhatsAppDispatcher("test-token", "12345", "+56998765432", zap.NewNop())
	d.baseURL = srv.URL

	booking := testBooking("ATK-MFY2025-AB12", 4, entity.TourTypeRegular, "20:30")
	require.NoError(t, d.Dispatch(context.Background(), booking))

	assert.Equal(t, "/12345/messages", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "whatsapp", gotPayload.MessagingProduct)
	assert.Equal(t, "+56998765432", gotPayload.To)
	assert.Equal(t, "text", gotPayload.Type)
	assert.Contains(t, gotPayload.Text.Body, "ATK-MFY2025-AB12")
	assert.Contains(t, gotPayload.Text.Body, "Tour Astronómico Regular")
	assert.Contains(t, gotPayload.Text.Body, "Jane Doe")
	assert.Contains(t, gotPayload.Text.Body, "2025-06-15")
}

func TestWhatsAppDispatch_UnconfiguredSkips(t *testing.T) {
	d := NewWhatsAppDispatcher("", "", "", zap.NewNop())

	err := d.Dispatch(context.Background(), testBooking("ATK-A", 2, entity.TourTypeRegular, "20:30"))
	assert.NoError(t, err)
}

func TestWhatsAppDispatch_APIErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	d := NewWhatsAppDispatcher("bad-token", "12345", "+56998765432", zap.NewNop())
	d.baseURL = srv.URL

	err := d.Dispatch(context.Background(), testBooking("ATK-A", 2, entity.TourTypeRegular, "20:30"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
