package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_PersonsCoercion(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		persons int
	}{
		{"number", `{"persons":4}`, 4},
		{"numeric string", `{"persons":"4"}`, 4},
		{"padded string", `{"persons":" 12 "}`, 12},
		{"absent", `{}`, 0},
		{"null", `{"persons":null}`, 0},
		{"empty string", `{"persons":""}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req CreateBookingRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.persons, req.Persons)
		})
	}
}

func TestCreateBookingRequest_PersonsNotANumber(t *testing.T) {
	var req CreateBookingRequest
	err := json.Unmarshal([]byte(`{"persons":"four"}`), &req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persons")
}

func TestCreateBookingRequest_OtherFieldsStillDecode(t *testing.T) {
	body := `{"date":"2025-06-15","persons":"4","tourType":"regular","name":"Jane Doe","email":"jane@example.com","phone":"+56912345678","message":"hi"}`

	var req CreateBookingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "2025-06-15", req.Date)
	assert.Equal(t, 4, req.Persons)
	assert.Equal(t, "regular", req.TourType)
	assert.Equal(t, "Jane Doe", req.Name)
	assert.Equal(t, "hi", req.Message)
}
