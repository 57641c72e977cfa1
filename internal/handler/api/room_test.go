//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/handler/api"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/tests/common/builder"
	"hotel-frontdesk/tests/common/httptest"
	commandsmock "hotel-frontdesk/tests/mock/commands"
	queriesmock "hotel-frontdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	handler      *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/rooms", s.handler.ListRooms)
	s.router.POST("/rooms", s.handler.CreateRoom)
	s.router.GET("/rooms/:id", s.handler.GetRoom)
	s.router.DELETE("/rooms/:id", s.handler.RetireRoom)
	s.router.GET("/room-types", s.handler.ListRoomTypes)
	s.router.POST("/room-types", s.handler.CreateRoomType)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestListRooms() {
	s.Run("default sort is by number", func() {
		s.mockQueries.EXPECT().
			ListRooms(gomock.Any(), queries.RoomSortByNumber).
			Return([]*queries.RoomView{builder.NewRoomBuilder().BuildView()}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var resp []*resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("sort by type", func() {
		s.mockQueries.EXPECT().
			ListRooms(gomock.Any(), queries.RoomSortByType).
			Return([]*queries.RoomView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms?sort=type", nil, "")
		s.Equal(http.StatusOK, w.Code)
	})
}

func (s *RoomHandlerTestSuite) TestGetRoom() {
	s.Run("success", func() {
		b := builder.NewRoomBuilder()

		s.mockQueries.EXPECT().GetRoom(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/101", nil, "")

		var resp resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(b.Number, resp.Number)
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid room ID format")
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), int32(999)).Return(nil, errs.ErrRoomNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/999", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestCreateRoom() {
	s.Run("success", func() {
		b := builder.NewRoomBuilder()

		s.mockCommands.EXPECT().
			Create(gomock.Any(), commands.CreateRoomParams{Number: b.Number, RoomTypeID: b.RoomTypeID}).
			Return(b.ID, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", b.BuildCreateRequestDTO(), "")

		var resp struct {
			ID int32 `json:"id"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(b.ID, resp.ID)
	})

	s.Run("number too long", func() {
		b := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Number = "1234567" })

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int32(0), room.ErrRoomNumberTooLong)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", b.BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "")
	})

	s.Run("unknown room type", func() {
		b := builder.NewRoomBuilder()

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int32(0), errs.ErrRoomTypeNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", b.BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Room type not found")
	})

	s.Run("duplicate number", func() {
		b := builder.NewRoomBuilder()

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int32(0), errs.ErrDuplicateRoomNumber)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms", b.BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Room number already in use")
	})
}

func (s *RoomHandlerTestSuite) TestRoomTypes() {
	s.Run("list", func() {
		s.mockQueries.EXPECT().
			ListRoomTypes(gomock.Any()).
			Return([]*queries.RoomTypeView{builder.NewRoomBuilder().BuildTypeView()}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-types", nil, "")

		var resp []*resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
		s.Equal("Standard Double", resp[0].Name)
	})

	s.Run("create", func() {
		b := builder.NewRoomBuilder()

		s.mockCommands.EXPECT().CreateType(gomock.Any(), b.RoomTypeName).Return(b.RoomTypeID, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/room-types", b.BuildCreateTypeRequestDTO(), "")

		var resp struct {
			ID int32 `json:"id"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(b.RoomTypeID, resp.ID)
	})

	s.Run("empty name", func() {
		s.mockCommands.EXPECT().CreateType(gomock.Any(), "   ").Return(int32(0), room.ErrEmptyTypeName)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/room-types",
			map[string]string{"name": "   "}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Room type name cannot be empty")
	})
}

func (s *RoomHandlerTestSuite) TestRetireRoom() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Retire(gomock.Any(), int32(101)).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rooms/101", nil, "")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("not found", func() {
		s.mockCommands.EXPECT().Retire(gomock.Any(), int32(404)).Return(errs.ErrRoomNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rooms/404", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Room not found")
	})
}
