package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/flight-booking/internal/model"
	"github.com/iliyamo/flight-booking/internal/repository"
)

// flightSeats reads a flight's availability through the public listing.
func flightSeats(t *testing.T, e *echo.Echo, token string, flightID uint64) int {
	t.Helper()
	rec := doJSON(e, http.MethodGet, "/flights", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list flights failed: %d %s", rec.Code, rec.Body.String())
	}
	var flights []model.Flight
	if err := json.Unmarshal(rec.Body.Bytes(), &flights); err != nil {
		t.Fatalf("decode flights: %v", err)
	}
	for _, f := range flights {
		if f.ID == flightID {
			return f.Seats
		}
	}
	t.Fatalf("flight %d not listed", flightID)
	return 0
}

// myBookings reads the caller's bookings through the API.
func myBookings(t *testing.T, e *echo.Echo, token string) []repository.BookingDetail {
	t.Helper()
	rec := doJSON(e, http.MethodGet, "/my-bookings", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list bookings failed: %d %s", rec.Code, rec.Body.String())
	}
	var details []repository.BookingDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &details); err != nil {
		t.Fatalf("decode bookings: %v", err)
	}
	return details
}

func TestListFlights(t *testing.T) {
	e, _ := newServer(t)
	token := register(t, e, "Asha", "asha@example.com", "secret")

	rec := doJSON(e, http.MethodGet, "/flights", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var flights []model.Flight
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flights))
	assert.Len(t, flights, 4)
	assert.Equal(t, "AI101", flights[0].FlightNumber)
	assert.Equal(t, 120, flights[0].Seats)
}

func TestBookingLifecycle(t *testing.T) {
	e, _ := newServer(t)
	token := register(t, e, "Asha", "asha@example.com", "secret")

	// Book five seats on flight 1.
	rec := doJSON(e, http.MethodPost, "/bookings", token, `{"flightId":1,"passengers":5}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var created struct {
		Message string        `json:"message"`
		Booking model.Booking `json:"booking"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Booked successfully", created.Message)
	assert.Equal(t, 5, created.Booking.Passengers)
	assert.Equal(t, uint64(1), created.Booking.FlightID)

	assert.Equal(t, 115, flightSeats(t, e, token, 1))

	// The booking shows up with its flight snapshot.
	details := myBookings(t, e, token)
	assert.Len(t, details, 1)
	assert.Equal(t, created.Booking.ID, details[0].ID)
	assert.Equal(t, "AI101", details[0].Flight.FlightNumber)

	// Cancel restores availability exactly.
	rec = doJSON(e, http.MethodPost, "/bookings/1/cancel", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking cancelled")

	assert.Equal(t, 120, flightSeats(t, e, token, 1))
	assert.Empty(t, myBookings(t, e, token))
}

func TestCreateBooking_Errors(t *testing.T) {
	e, _ := newServer(t)
	token := register(t, e, "Asha", "asha@example.com", "secret")

	testCases := []struct {
		name string
		body string
		code int
	}{
		{name: "unknown flight", body: `{"flightId":99,"passengers":1}`, code: http.StatusNotFound},
		{name: "too many passengers", body: `{"flightId":1,"passengers":200}`, code: http.StatusBadRequest},
		{name: "zero passengers", body: `{"flightId":1,"passengers":0}`, code: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/bookings", token, tc.body)
			assert.Equal(t, tc.code, rec.Code)
		})
	}

	// Nothing was booked and no seats were lost.
	assert.Equal(t, 120, flightSeats(t, e, token, 1))
	assert.Empty(t, myBookings(t, e, token))
}

func TestCancel_Errors(t *testing.T) {
	e, _ := newServer(t)
	asha := register(t, e, "Asha", "asha@example.com", "secret")
	ravi := register(t, e, "Ravi", "ravi@example.com", "secret")

	rec := doJSON(e, http.MethodPost, "/bookings", asha, `{"flightId":1,"passengers":5}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Unknown id.
	rec = doJSON(e, http.MethodPost, "/bookings/42/cancel", asha, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Someone else's booking looks exactly like a missing one.
	rec = doJSON(e, http.MethodPost, "/bookings/1/cancel", ravi, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Non-numeric id.
	rec = doJSON(e, http.MethodPost, "/bookings/abc/cancel", asha, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The booking survived all of it.
	assert.Equal(t, 115, flightSeats(t, e, asha, 1))
	assert.Len(t, myBookings(t, e, asha), 1)
}

func TestBookingsAreScopedToUser(t *testing.T) {
	e, _ := newServer(t)
	asha := register(t, e, "Asha", "asha@example.com", "secret")
	ravi := register(t, e, "Ravi", "ravi@example.com", "secret")

	rec := doJSON(e, http.MethodPost, "/bookings", asha, `{"flightId":1,"passengers":2}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodPost, "/bookings", ravi, `{"flightId":2,"passengers":3}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	ashaList := myBookings(t, e, asha)
	raviList := myBookings(t, e, ravi)

	assert.Len(t, ashaList, 1)
	assert.Equal(t, uint64(1), ashaList[0].FlightID)
	assert.Len(t, raviList, 1)
	assert.Equal(t, uint64(2), raviList[0].FlightID)
}
