package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"mockdata/internal/dataset"
	"mockdata/internal/provisioning/handler/mocks"
	"mockdata/internal/provisioning/source"
	"mockdata/pkg/platform/sentinel"
	"mockdata/pkg/testutil"
)

// =============================================================================
// Handler Test Suite
// =============================================================================
// Routes are exercised through a chi router so URL parameters resolve the same
// way they do in the server. The service is a gomock double.

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	svc     *mocks.MockService
	router  chi.Router
	payload *dataset.Payload
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.svc = mocks.NewMockService(s.ctrl)
	s.payload = &dataset.Payload{User: dataset.User{ID: "usr_001", Name: "Sarah Johnson", Email: "sarah@brightpath.design"}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = chi.NewRouter()
	New(s.svc, logger).Register(s.router)
}

func (s *HandlerSuite) exhausted() error {
	return &source.SourceExhausted{
		Environment: source.EnvironmentServer,
		Failures: []*source.AttemptFailed{{
			Attempt:  "local:/srv/backend/mockData/api.json",
			Kind:     source.KindLocal,
			Category: source.CategoryNotFound,
			Err:      fmt.Errorf("/srv/backend/mockData/api.json: %w", sentinel.ErrNotFound),
		}},
	}
}

// =============================================================================
// GET /api/mockdata
// =============================================================================

func (s *HandlerSuite) TestGetAll() {
	s.Run("returns every section", func() {
		s.svc.EXPECT().GetAll(gomock.Any()).Return(s.payload, nil)

		rr := testutil.Serve(s.T(), s.router, http.MethodGet, "/api/mockdata")

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		testutil.AssertJSONKeys(s.T(), rr, "user", "dashboard", "invoices", "expenses", "wallet", "profile")
	})

	s.Run("load failure is 503 data_unavailable", func() {
		s.svc.EXPECT().GetAll(gomock.Any()).Return(nil, s.exhausted())

		rr := testutil.Serve(s.T(), s.router, http.MethodGet, "/api/mockdata")

		testutil.AssertStatusAndError(s.T(), rr, http.StatusServiceUnavailable, "data_unavailable")
	})

	s.Run("missing local files do not leak paths or turn into 404", func() {
		s.svc.EXPECT().GetAll(gomock.Any()).Return(nil, s.exhausted())

		rr := testutil.Serve(s.T(), s.router, http.MethodGet, "/api/mockdata")

		testutil.AssertStatus(s.T(), rr, http.StatusServiceUnavailable)
		s.NotContains(rr.Body.String(), "/srv/backend")
		s.NotContains(rr.Body.String(), "error_description")
	})
}

// =============================================================================
// GET /api/mockdata/{section}
// =============================================================================

func (s *HandlerSuite) TestGetSection() {
	s.Run("returns the section", func() {
		s.svc.EXPECT().Get(gomock.Any(), dataset.SectionUser).Return(&s.payload.User, nil)

		rr := testutil.Serve(s.T(), s.router, http.MethodGet, "/api/mockdata/user")

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		user := testutil.UnmarshalResponse[dataset.User](s.T(), rr)
		s.Equal("Sarah Johnson", user.Name)
	})

	s.Run("unknown section is 404 without loading", func() {
		rr := testutil.Serve(s.T(), s.router, http.MethodGet, "/api/mockdata/payroll")

		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})

	s.Run("load failure is 503", func() {
		s.svc.EXPECT().Get(gomock.Any(), dataset.SectionWallet).Return(nil, s.exhausted())

		rr := testutil.Serve(s.T(), s.router, http.MethodGet, "/api/mockdata/wallet")

		testutil.AssertStatusAndError(s.T(), rr, http.StatusServiceUnavailable, "data_unavailable")
	})
}

// =============================================================================
// POST /api/mockdata/invalidate
// =============================================================================

func (s *HandlerSuite) TestInvalidate() {
	t := s.T()
	testutil.Given(t, "a loaded dataset", func(t *testing.T) {
		testutil.When(t, "invalidate is posted", func(t *testing.T) {
			s.svc.EXPECT().Invalidate().Times(1)
			req := testutil.WithRequestID(testutil.NewRequest(t, http.MethodPost, "/api/mockdata/invalidate"), "req-42")
			rr := testutil.DoRequest(s.router, req)

			testutil.Then(t, "the call is acknowledged", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusOK)
			})
			testutil.And(t, "the body reports the cache was dropped", func(t *testing.T) {
				body := testutil.UnmarshalResponse[map[string]string](t, rr)
				s.Equal("invalidated", (*body)["status"])
			})
		})
	})
}
