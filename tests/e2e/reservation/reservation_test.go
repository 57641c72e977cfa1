//go:build e2e

package reservation_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/tests/common/dbtest"
	"hotel-frontdesk/tests/common/httptest"
	"hotel-frontdesk/tests/e2e"
	"hotel-frontdesk/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	availabilityURL = "/api/availability"
	roomsURL        = "/api/rooms"
)

type reservationSuite struct {
	e2e.SharedSuite
	deskToken  string
	adminToken string
	holderID   uuid.UUID
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	_, s.deskToken = helper.CreateStaffAndLogin(s.T(), s.DB, s.Router, "desk@example.com", string(staff.RoleReceptionist))
	_, s.adminToken = helper.CreateStaffAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(staff.RoleAdmin))
	s.holderID = dbtest.CreateTestGuest(s.T(), s.DB, "Ada", "Lovelace")
}

// listRooms returns the seeded room catalog through the API.
func (s *reservationSuite) listRooms(token string) []*resdto.RoomResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, roomsURL, nil, token)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var rooms []*resdto.RoomResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &rooms)
	require.NotEmpty(s.T(), rooms)
	return rooms
}

func (s *reservationSuite) bookRoom(token string, room *resdto.RoomResponse, arrival, departure civil.Date) uuid.UUID {
	t := s.T()

	reqBody := request.CreateReservationRequest{
		HolderID:      s.holderID,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		RoomTypeID:    room.RoomTypeID,
		RoomID:        room.ID,
		Adults:        2,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created resdto.ReservationResponse
	httptest.DecodeResponseBody(t, w.Body, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	return created.ID
}

func (s *reservationSuite) freeRoomNumbers(token, query string) []string {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL+"?"+query, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var availability resdto.AvailabilityResponse
	httptest.DecodeResponseBody(t, w.Body, &availability)

	numbers := make([]string, len(availability.FreeRooms))
	for i, room := range availability.FreeRooms {
		numbers[i] = room.Number
	}
	return numbers
}

func (s *reservationSuite) TestReservationLifecycle() {
	s.Run("book, expand nights, occupy, cancel, release", func() {
		t := s.T()

		rooms := s.listRooms(s.deskToken)
		room := rooms[0]

		arrival := civil.NewDate(2030, time.June, 13)
		departure := civil.NewDate(2030, time.June, 15)
		id := s.bookRoom(s.deskToken, room, arrival, departure)

		// Both endpoints count as occupied nights.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+id.String()+"/nights", nil, s.deskToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var nights []*resdto.NightResponse
		httptest.DecodeResponseBody(t, w.Body, &nights)
		require.Len(t, nights, 3)
		require.Equal(t, "2030-06-13", nights[0].Date.String())
		require.Equal(t, "2030-06-15", nights[2].Date.String())

		// The room is gone from availability for any night of the stay.
		free := s.freeRoomNumbers(s.deskToken, "start_date=2030-06-14")
		require.NotContains(t, free, room.Number)

		// And for any window that touches the stay.
		free = s.freeRoomNumbers(s.deskToken, "start_date=2030-06-15&end_date=2030-06-20")
		require.NotContains(t, free, room.Number)

		// Overlapping booking for the same room is refused.
		reqBody := request.CreateReservationRequest{
			HolderID:      s.holderID,
			ArrivalDate:   civil.NewDate(2030, time.June, 15),
			DepartureDate: civil.NewDate(2030, time.June, 17),
			RoomTypeID:    room.RoomTypeID,
			RoomID:        room.ID,
			Adults:        1,
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.deskToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// Cancel releases every night.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+id.String()+"/cancel", nil, s.deskToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		free = s.freeRoomNumbers(s.deskToken, "start_date=2030-06-14")
		require.Contains(t, free, room.Number)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+id.String(), nil, s.deskToken)
		require.Equal(t, http.StatusOK, w.Code)
		var view resdto.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &view)
		require.Equal(t, "canceled", view.Status)

		// Canceling twice is a conflict.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+id.String()+"/cancel", nil, s.deskToken)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("shortest stay spans two nights", func() {
		t := s.T()

		rooms := s.listRooms(s.deskToken)
		room := rooms[0]

		// One calendar day apart, both endpoints counted.
		arrival := civil.NewDate(2030, time.July, 1)
		id := s.bookRoom(s.deskToken, room, arrival, arrival.AddDays(1))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+id.String()+"/nights", nil, s.deskToken)
		require.Equal(t, http.StatusOK, w.Code)
		var nights []*resdto.NightResponse
		httptest.DecodeResponseBody(t, w.Body, &nights)
		require.Len(t, nights, 2)
	})
}

func (s *reservationSuite) TestExpandNights() {
	s.Run("a reservation expands exactly once", func() {
		t := s.T()

		rooms := s.listRooms(s.deskToken)
		id := s.bookRoom(s.deskToken, rooms[0], civil.NewDate(2030, time.June, 13), civil.NewDate(2030, time.June, 15))

		countNights := func() int {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+id.String()+"/nights", nil, s.deskToken)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var nights []*resdto.NightResponse
			httptest.DecodeResponseBody(t, w.Body, &nights)
			return len(nights)
		}
		require.Equal(t, 3, countNights())

		// Re-expanding an already expanded reservation is refused and
		// leaves the ledger untouched.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+id.String()+"/expand", nil, s.deskToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Equal(t, 3, countNights())

		// After the ledger rows are lost, expand rebuilds them.
		_, err := s.DB.Exec(context.Background(), "DELETE FROM reservation_nights WHERE reservation_id = $1", id)
		require.NoError(t, err)
		require.Equal(t, 0, countNights())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+id.String()+"/expand", nil, s.deskToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, 3, countNights())
	})

	s.Run("unknown reservation", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+uuid.New().String()+"/expand", nil, s.deskToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestValidation() {
	s.Run("arrival in the past", func() {
		t := s.T()

		rooms := s.listRooms(s.deskToken)
		reqBody := request.CreateReservationRequest{
			HolderID:      s.holderID,
			ArrivalDate:   civil.NewDate(2001, time.January, 1),
			DepartureDate: civil.NewDate(2001, time.January, 3),
			RoomTypeID:    rooms[0].RoomTypeID,
			RoomID:        rooms[0].ID,
			Adults:        2,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.deskToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("departure before arrival", func() {
		t := s.T()

		rooms := s.listRooms(s.deskToken)
		reqBody := request.CreateReservationRequest{
			HolderID:      s.holderID,
			ArrivalDate:   civil.NewDate(2030, time.June, 15),
			DepartureDate: civil.NewDate(2030, time.June, 13),
			RoomTypeID:    rooms[0].RoomTypeID,
			RoomID:        rooms[0].ID,
			Adults:        2,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.deskToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("unknown holder", func() {
		t := s.T()

		rooms := s.listRooms(s.deskToken)
		reqBody := request.CreateReservationRequest{
			HolderID:      uuid.New(),
			ArrivalDate:   civil.NewDate(2030, time.June, 13),
			DepartureDate: civil.NewDate(2030, time.June, 15),
			RoomTypeID:    rooms[0].RoomTypeID,
			RoomID:        rooms[0].ID,
			Adults:        2,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.deskToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestRoleEnforcement() {
	s.Run("viewer cannot book", func() {
		t := s.T()

		_, viewerToken := helper.CreateStaffAndLogin(t, s.DB, s.Router, "viewer@example.com", string(staff.RoleViewer))

		rooms := s.listRooms(viewerToken)
		reqBody := request.CreateReservationRequest{
			HolderID:      s.holderID,
			ArrivalDate:   civil.NewDate(2030, time.June, 13),
			DepartureDate: civil.NewDate(2030, time.June, 15),
			RoomTypeID:    rooms[0].RoomTypeID,
			RoomID:        rooms[0].ID,
			Adults:        2,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, viewerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("only admin deletes", func() {
		t := s.T()

		rooms := s.listRooms(s.deskToken)
		id := s.bookRoom(s.deskToken, rooms[0], civil.NewDate(2030, time.June, 13), civil.NewDate(2030, time.June, 15))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+id.String(), nil, s.deskToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+id.String(), nil, s.adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+id.String(), nil, s.deskToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
