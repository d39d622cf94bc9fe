package request

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CreateBookingRequest is the body of POST /api/bookings. Time is absent on
// purpose: the server assigns it from the tour type and season. Only
// presence is validated here; format checks live on the client and are not
// authoritative.
type CreateBookingRequest struct {
	Date     string `json:"date" validate:"required"`
	Persons  int    `json:"persons" validate:"required,gt=0"`
	TourType string `json:"tourType" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Message  string `json:"message,omitempty"`
}

// UnmarshalJSON accepts persons as either a JSON number or a numeric string.
// The public widget posts whatever the browser form serializes, and a plain
// form submit sends "4", not 4.
func (r *CreateBookingRequest) UnmarshalJSON(data []byte) error {
	type plain CreateBookingRequest
	aux := struct {
		Persons json.RawMessage `json:"persons"`
		*plain
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Persons) == 0 {
		return nil
	}

	raw := strings.TrimSpace(strings.Trim(string(aux.Persons), `"`))
	if raw == "" || raw == "null" {
		return nil
	}

	persons, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("persons %q is not a number: %w", raw, err)
	}
	r.Persons = persons

	return nil
}
