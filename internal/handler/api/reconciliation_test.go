//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"travel-checkout/internal/handler/api"
	resdto "travel-checkout/internal/handler/dto/response"
	"travel-checkout/internal/usecase/commands"
	"travel-checkout/internal/usecase/queries"
	"travel-checkout/tests/common/httptest"
	commandsmock "travel-checkout/tests/mock/commands"
	queriesmock "travel-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReconciliationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReconciliationCommands
	mockQueries  *queriesmock.MockReconciliationQueries
	handler      *api.ReconciliationHandler
}

func (s *ReconciliationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReconciliationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReconciliationQueries(s.mockCtrl)
	s.handler = api.NewReconciliationHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/reconciliations", s.handler.List)
	s.router.POST("/reconciliations/:id/resolve", s.handler.Resolve)
}

func (s *ReconciliationHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *ReconciliationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReconciliationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationHandlerTestSuite))
}

func (s *ReconciliationHandlerTestSuite) TestList() {
	paymentID := "p-1"
	view := &queries.ReconciliationView{
		ID:         uuid.MustParse("2b1f0a9e-7c34-4d8e-b1a2-9e8f7d6c5b4a"),
		CheckoutID: "chk-1",
		UserID:     "user-42",
		BookingID:  "b-1",
		PaymentID:  &paymentID,
		Kind:       "confirm_booking",
		Reason:     "payment captured but booking still PENDING",
		Status:     "open",
		CreatedAt:  time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC),
	}

	s.Run("success: returns open entries by default", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "", 0).
			Return([]*queries.ReconciliationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reconciliations", nil, "")

		var body resdto.ReconciliationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(1, body.Count)
		s.Equal(view.ID, body.Items[0].ID)
		s.Equal("b-1", body.Items[0].BookingID)
		s.Require().NotNil(body.Items[0].PaymentID)
		s.Equal("p-1", *body.Items[0].PaymentID)
		s.Nil(body.Items[0].ItineraryID)
		s.Equal(view.Reason, body.Items[0].Reason)
	})

	s.Run("success: passes status and limit through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "resolved", 10).
			Return([]*queries.ReconciliationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reconciliations?status=resolved&limit=10", nil, "")

		var body resdto.ReconciliationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.NotNil(body.Items)
	})

	s.Run("error: 400 on an invalid limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reconciliations?limit=many", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 400 on an unknown status", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "pending", 0).
			Return(nil, queries.ErrInvalidReconciliationStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reconciliations?status=pending", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "", 0).
			Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reconciliations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

func (s *ReconciliationHandlerTestSuite) TestResolve() {
	id := uuid.MustParse("2b1f0a9e-7c34-4d8e-b1a2-9e8f7d6c5b4a")
	url := "/reconciliations/" + id.String() + "/resolve"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Resolve(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reconciliations/not-a-uuid/resolve", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when no open entry has the id", func() {
		s.mockCommands.EXPECT().Resolve(gomock.Any(), id).Return(commands.ErrReconciliationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 500 on other failures", func() {
		s.mockCommands.EXPECT().Resolve(gomock.Any(), id).Return(errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}
