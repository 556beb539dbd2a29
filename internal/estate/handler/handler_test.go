package handler_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"mirath/internal/estate"
	"mirath/internal/estate/handler"
	"mirath/internal/estate/service"
	"mirath/internal/estate/store"
	"mirath/internal/faraid"
	"mirath/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	store  *store.InMemoryStore
	router chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.store = store.NewInMemoryStore()
	svc, err := service.New(s.store, slog.New(slog.DiscardHandler))
	s.Require().NoError(err)

	s.router = chi.NewRouter()
	handler.New(svc, slog.New(slog.DiscardHandler)).Register(s.router)
}

func (s *HandlerSuite) createEstate(name string, amount float64) *estate.Estate {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/estates", handler.CreateEstateRequest{
		Name:      name,
		NetAmount: amount,
	})
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatus(s.T(), rr, http.StatusCreated)
	return testutil.UnmarshalResponse[estate.Estate](s.T(), rr)
}

func (s *HandlerSuite) addHeir(estateID string, body handler.AddHeirRequest) *estate.HeirRecord {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/estates/"+estateID+"/heirs", body)
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatus(s.T(), rr, http.StatusCreated)
	return testutil.UnmarshalResponse[estate.HeirRecord](s.T(), rr)
}

func (s *HandlerSuite) TestCreateEstate() {
	s.Run("creates estate with defaults", func() {
		created := s.createEstate("Family of Ahmad", 240000)

		s.NotEmpty(created.ID)
		s.Equal("Family of Ahmad", created.Name)
		s.Equal(240000.0, created.NetAmount)
		s.Equal("IDR", created.Currency)
	})

	s.Run("rejects empty name", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/estates", handler.CreateEstateRequest{
			NetAmount: 1000,
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
		testutil.AssertErrorCode(s.T(), rr, "bad_request")
	})

	s.Run("rejects unknown fields", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/estates", map[string]any{
			"name":     "X",
			"surprise": true,
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})
}

func (s *HandlerSuite) TestGetEstate() {
	created := s.createEstate("Estate", 1000)
	s.addHeir(created.ID, handler.AddHeirRequest{Name: "Salim", Relationship: "son"})

	s.Run("returns estate with roster", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/estates/"+created.ID)
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[handler.EstateResponse](s.T(), rr)
		s.Equal(created.ID, resp.Estate.ID)
		s.Len(resp.Heirs, 1)
		s.Equal("Salim", resp.Heirs[0].Name)
	})

	s.Run("unknown estate is not found", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/estates/nope")
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
		testutil.AssertErrorCode(s.T(), rr, "not_found")
	})
}

func (s *HandlerSuite) TestHeirRoster() {
	created := s.createEstate("Estate", 1000)

	s.Run("adds and lists heirs", func() {
		s.addHeir(created.ID, handler.AddHeirRequest{Name: "Aisyah", Relationship: "wife"})
		s.addHeir(created.ID, handler.AddHeirRequest{Name: "Salim", Relationship: "son"})

		req := testutil.NewRequest(s.T(), http.MethodGet, "/estates/"+created.ID+"/heirs")
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		heirs := testutil.UnmarshalResponse[[]estate.HeirRecord](s.T(), rr)
		s.Len(*heirs, 2)
	})

	s.Run("rejects heir without relationship", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/estates/"+created.ID+"/heirs", handler.AddHeirRequest{
			Name: "Nameless",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})

	s.Run("removes an heir", func() {
		added := s.addHeir(created.ID, handler.AddHeirRequest{Name: "Umar", Relationship: "brother", Gender: "male"})

		req := testutil.NewRequest(s.T(), http.MethodDelete, "/estates/"+created.ID+"/heirs/"+added.ID)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusNoContent)

		_, err := s.store.ListHeirs(context.Background(), created.ID)
		s.NoError(err)
	})

	s.Run("removing unknown heir is not found", func() {
		req := testutil.NewRequest(s.T(), http.MethodDelete, "/estates/"+created.ID+"/heirs/ghost")
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
	})
}

func (s *HandlerSuite) TestCalculate() {
	created := s.createEstate("Estate", 240000)
	s.addHeir(created.ID, handler.AddHeirRequest{Name: "Salim", Relationship: "son"})
	s.addHeir(created.ID, handler.AddHeirRequest{Name: "Aisyah", Relationship: "wife"})

	req := testutil.NewRequest(s.T(), http.MethodPost, "/estates/"+created.ID+"/calculate")
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	result := testutil.UnmarshalResponse[faraid.CalculationResult](s.T(), rr)
	s.Equal(faraid.CaseStandard, result.Case)
	s.Equal(24, result.BaseNumber)
	s.Len(result.Heirs, 2)

	var total float64
	for _, h := range result.Heirs {
		total += h.Amount
	}
	s.InDelta(240000, total, 1)
}

func (s *HandlerSuite) TestCalculateAdHoc() {
	s.Run("computes without persisting", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/faraid/calculate", handler.CalculateRequest{
			EstateAmount: 120000,
			Heirs: []faraid.Heir{
				{ID: "h1", Name: "Fatimah", Relationship: "daughter"},
				{ID: "h2", Name: "Hasan", Relationship: "husband"},
			},
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		result := testutil.UnmarshalResponse[faraid.CalculationResult](s.T(), rr)
		s.Equal(faraid.CaseRadd, result.Case)
	})

	s.Run("rejects negative amount", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/faraid/calculate", handler.CalculateRequest{
			EstateAmount: -1,
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})
}
