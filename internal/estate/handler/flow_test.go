package handler_test

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"mirath/internal/estate"
	"mirath/internal/estate/handler"
	"mirath/internal/estate/service"
	"mirath/internal/estate/store"
	"mirath/internal/faraid"
	"mirath/pkg/testutil"
)

// TestEstateCalculationFlow walks the full lifecycle: create an estate, build
// its roster over several requests, then ask for the distribution.
func TestEstateCalculationFlow(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	svc, err := service.New(store.NewInMemoryStore(), logger)
	require.NoError(t, err)

	router := chi.NewRouter()
	handler.New(svc, logger).Register(router)

	var estateID string

	testutil.Given(t, "an estate with a wife, a son, and the deceased's father", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/estates", handler.CreateEstateRequest{
			Name:      "Estate of Ahmad",
			NetAmount: 2400000,
		}))
		testutil.AssertStatus(t, rr, http.StatusCreated)
		estateID = testutil.UnmarshalResponse[estate.Estate](t, rr).ID

		for _, body := range []handler.AddHeirRequest{
			{Name: "Aisyah", Relationship: "wife"},
			{Name: "Salim", Relationship: "son"},
			{Name: "Ibrahim", Relationship: "father"},
		} {
			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/estates/"+estateID+"/heirs", body))
			testutil.AssertStatus(t, rr, http.StatusCreated)
		}
	})

	testutil.When(t, "the distribution is calculated", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/estates/"+estateID+"/calculate"))
		testutil.AssertStatus(t, rr, http.StatusOK)
	})

	testutil.Then(t, "shares close exactly over the estate", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost, "/estates/"+estateID+"/calculate"))
		testutil.AssertStatus(t, rr, http.StatusOK)
		result := testutil.UnmarshalResponse[faraid.CalculationResult](t, rr)

		require.Equal(t, faraid.CaseStandard, result.Case)
		require.Equal(t, 24, result.BaseNumber)
		require.Len(t, result.Heirs, 3)

		var parts, total float64
		for _, h := range result.Heirs {
			parts += h.Parts
			total += h.Amount
		}
		require.Equal(t, float64(result.BaseNumber), parts)
		require.InDelta(t, 2400000, total, 1)
	})
}
