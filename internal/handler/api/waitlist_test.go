//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"seatwise/internal/handler/api"
	resdto "seatwise/internal/handler/dto/response"
	"seatwise/internal/usecase/commands"
	"seatwise/internal/usecase/queries"
	"seatwise/tests/common/httptest"
	commandsmock "seatwise/tests/mock/commands"
	queriesmock "seatwise/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WaitlistHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWaitlistCommands
	mockQueries  *queriesmock.MockWaitlistQueries
	handler      *api.WaitlistHandler
	restaurantID uuid.UUID
}

func (s *WaitlistHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.restaurantID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWaitlistCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWaitlistQueries(s.mockCtrl)
	s.handler = api.NewWaitlistHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("staff_id", uuid.New())
		c.Set("restaurant_id", s.restaurantID)
		c.Set("staff_role", "staff")
		c.Next()
	}

	s.router.GET("/waitlist", authMiddleware, s.handler.List)
	s.router.POST("/waitlist/:id/convert", authMiddleware, s.handler.Convert)
}

func (s *WaitlistHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWaitlistHandlerSuite(t *testing.T) {
	suite.Run(t, new(WaitlistHandlerTestSuite))
}

func (s *WaitlistHandlerTestSuite) TestList() {
	url := "/waitlist"

	entries := []queries.WaitlistEntryView{
		{ID: uuid.New(), CustomerName: "Tanaka", PartySize: 2, RequestedDate: "2025-04-18", RequestedTime: "18:30", Status: "waiting", CreatedAt: time.Now()},
		{ID: uuid.New(), CustomerName: "Suzuki", PartySize: 5, RequestedDate: "2025-04-18", RequestedTime: "19:00", Status: "waiting", CreatedAt: time.Now()},
	}

	s.Run("success: returns waiting entries", func() {
		s.mockQueries.EXPECT().ListWaiting(gomock.Any(), s.restaurantID).
			Return(entries, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.WaitlistEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Tanaka", response[0].CustomerName)
		s.Equal("waiting", response[1].Status)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListWaiting(gomock.Any(), s.restaurantID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list waitlist")
	})
}

func (s *WaitlistHandlerTestSuite) TestConvert() {
	entryID := uuid.New()
	url := "/waitlist/" + entryID.String() + "/convert"

	reservationID := uuid.New()
	outcome := &commands.AssignmentOutcome{
		Kind:          commands.OutcomeAutoAssignedSingle,
		ReservationID: &reservationID,
		AssignedTables: []commands.AssignedTable{
			{ID: uuid.New(), Number: "T6", Capacity: 6},
		},
		AutoApplied: true,
	}

	s.Run("success: returns 201 Created with the assignment outcome", func() {
		s.mockCommands.EXPECT().ConvertEntry(gomock.Any(), s.restaurantID, entryID).
			Return(outcome, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.AssignmentOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("auto_assigned_single", response.Kind)
		s.Equal(reservationID, *response.ReservationID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/waitlist/invalid-uuid/convert", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "entry not found",
				commandsError:  commands.ErrWaitlistEntryNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Waitlist entry not found",
			},
			{
				name:           "already converted",
				commandsError:  commands.ErrWaitlistAlreadyConverted,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already converted",
			},
			{
				name:           "large party entry",
				commandsError:  commands.ErrInvalidInput,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request",
			},
			{
				name:           "table conflict",
				commandsError:  commands.ErrTableConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Table already booked",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Waitlist conversion failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ConvertEntry(gomock.Any(), s.restaurantID, entryID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
