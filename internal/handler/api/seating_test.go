//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"seatwise/internal/handler/api"
	resdto "seatwise/internal/handler/dto/response"
	"seatwise/internal/usecase/commands"
	"seatwise/tests/common/httptest"
	"seatwise/tests/common/testutil"
	commandsmock "seatwise/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SeatingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSeatingCommands
	handler      *api.SeatingHandler
	restaurantID uuid.UUID
}

func (s *SeatingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.restaurantID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSeatingCommands(s.mockCtrl)
	s.handler = api.NewSeatingHandler(s.mockCommands)

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

	s.router.POST("/seating/evaluate", authMiddleware, s.handler.Evaluate)
}

func (s *SeatingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSeatingHandlerSuite(t *testing.T) {
	suite.Run(t, new(SeatingHandlerTestSuite))
}

type testCaseSeating struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func validEvaluateBody() map[string]any {
	return map[string]any{
		"date":          "2025-04-18",
		"time":          "19:00",
		"party_size":    4,
		"customer_name": "Sato",
	}
}

func (s *SeatingHandlerTestSuite) TestEvaluate() {
	url := "/seating/evaluate"
	reqBody := validEvaluateBody()

	reservationID := uuid.New()
	tableID := uuid.New()
	confirmedOutcome := &commands.AssignmentOutcome{
		Kind:          commands.OutcomeExactSingleMatch,
		ReservationID: &reservationID,
		AssignedTables: []commands.AssignedTable{
			{ID: tableID, Number: "T4", Capacity: 4},
		},
		AutoApplied: true,
	}

	s.Run("success: returns 201 Created with the assignment outcome", func() {
		s.mockCommands.EXPECT().EvaluateAndAssign(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.EvaluateSeatingParams) (*commands.AssignmentOutcome, error) {
				s.Equal(s.restaurantID, params.RestaurantID)
				s.Equal(4, params.PartySize)
				s.Equal("2025-04-18", params.Date.Format("2006-01-02"))
				s.Equal("19:00", params.Time.String())
				return confirmedOutcome, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.AssignmentOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("exact_single_match", response.Kind)
		s.Equal(reservationID, *response.ReservationID)
		s.Len(response.AssignedTables, 1)
		s.Equal("T4", response.AssignedTables[0].Number)
		s.True(response.AutoApplied)
	})

	s.Run("success: capacity rejection is an outcome, not an error", func() {
		rejected := &commands.AssignmentOutcome{
			Kind: commands.OutcomeCapacityRejected,
			Capacity: &commands.CapacityFigures{
				CurrentGuests: 8,
				MaxGuests:     10,
				SlotStart:     "19:00",
				SlotEnd:       "19:15",
			},
		}
		s.mockCommands.EXPECT().EvaluateAndAssign(gomock.Any(), gomock.Any()).
			Return(rejected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.AssignmentOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("capacity_rejected", response.Kind)
		s.Nil(response.ReservationID)
		s.NotNil(response.Capacity)
		s.Equal("19:15", response.Capacity.SlotEnd)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseSeating{
			{name: "missing field: date (required)", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: time (required)", mutate: testutil.Field("time", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: party_size (required)", mutate: testutil.Field("party_size", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: customer_name (required)", mutate: testutil.Field("customer_name", nil), expectCode: http.StatusBadRequest},
			{name: "party_size below minimum (0)", mutate: testutil.Field("party_size", 0), expectCode: http.StatusBadRequest},
			{name: "customer_name too long (201 chars)", mutate: testutil.Field("customer_name", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
			{name: "malformed date", mutate: testutil.Field("date", "18-04-2025"), expectCode: http.StatusBadRequest},
			{name: "malformed time", mutate: testutil.Field("time", "7pm"), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("customer_email", "not-an-email"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
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
				name:           "invalid input",
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
				name:           "contact email failed",
				commandsError:  commands.ErrContactEmailFailed,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "contact email failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Seating evaluation failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().EvaluateAndAssign(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
