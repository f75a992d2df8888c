package investsdk_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/topfive/pkg/investsdk"
	"github.com/stretchr/testify/require"
)

func TestMe(t *testing.T) {
	t.Parallel()

	t.Run("active client", func(t *testing.T) {
		api, client := newFakeAPI(t)
		api.on(http.MethodGet, "/clients/me", respond(http.StatusOK, `{"data":{
			"clientId": 7,
			"name": "Maria",
			"monthlyValue": 300.5,
			"joinDate": "2024-03-01T10:00:00",
			"status": "ACTIVE"
		}}`))

		me, err := client.NewSession("abc").Me(context.Background())
		require.NoError(t, err)
		require.Equal(t, investsdk.ClientID("7"), me.ClientID)
		require.Equal(t, investsdk.StatusActive, me.Status)
		require.InDelta(t, 300.5, me.MonthlyValue, 0.001)

		joined, ok := me.JoinedAt()
		require.True(t, ok)
		require.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), joined)

		req, _ := api.last()
		require.Equal(t, "Bearer abc", req.Header.Get("Authorization"))
	})

	t.Run("string client id", func(t *testing.T) {
		api, client := newFakeAPI(t)
		api.on(http.MethodGet, "/clients/me", respond(http.StatusOK, `{"data":{"clientId":"c-1","status":"PENDING"}}`))

		me, err := client.NewSession("abc").Me(context.Background())
		require.NoError(t, err)
		require.Equal(t, investsdk.ClientID("c-1"), me.ClientID)
	})

	t.Run("not found", func(t *testing.T) {
		api, client := newFakeAPI(t)
		api.on(http.MethodGet, "/clients/me", respond(http.StatusNotFound,
			`{"message":"Client not found.","data":{"code":"CLIENT_NOT_FOUND"}}`))

		_, err := client.NewSession("abc").Me(context.Background())
		require.ErrorIs(t, err, investsdk.ErrClientNotFound)
	})

	t.Run("not found without code is a plain API error", func(t *testing.T) {
		api, client := newFakeAPI(t)
		api.on(http.MethodGet, "/clients/me", respond(http.StatusNotFound, `{"message":"nope","data":null}`))

		_, err := client.NewSession("abc").Me(context.Background())
		require.NotErrorIs(t, err, investsdk.ErrClientNotFound)

		var apiErr *investsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "nope", apiErr.Message)
	})

	t.Run("bodies without data are malformed", func(t *testing.T) {
		for _, tc := range []struct {
			status int
			body   string
		}{
			{http.StatusOK, ""},
			{http.StatusOK, `{}`},
			{http.StatusOK, `{"data":null}`},
			{http.StatusOK, `{"message":"ok"}`},
			{http.StatusNotFound, ""},
		} {
			api, client := newFakeAPI(t)
			api.on(http.MethodGet, "/clients/me", respond(tc.status, tc.body))

			me, err := client.NewSession("abc").Me(context.Background())
			require.Nil(t, me, "body %q", tc.body)
			require.ErrorIs(t, err, investsdk.ErrMalformedResponse, "body %q", tc.body)

			var te *investsdk.TransportError
			require.ErrorAs(t, err, &te)
			require.True(t, te.Malformed())
		}
	})
}

func TestDashboardReadsRequireData(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t)
	api.on(http.MethodGet, "/clients/7/portfolio", respond(http.StatusOK, `{"data":null}`))
	api.on(http.MethodGet, "/engine/status", respond(http.StatusOK, ""))
	session := client.NewSession("abc")

	_, err := session.Portfolio(context.Background(), "7")
	require.ErrorIs(t, err, investsdk.ErrMalformedResponse)

	_, err = session.EngineStatus(context.Background())
	require.ErrorIs(t, err, investsdk.ErrMalformedResponse)
}

func TestJoin(t *testing.T) {
	t.Parallel()

	t.Run("first adhesion", func(t *testing.T) {
		api, client := newFakeAPI(t)
		api.on(http.MethodPost, "/clients/join", respond(http.StatusOK, `{"message":"Adhesion requested."}`))

		resp, err := client.NewSession("abc").Join(context.Background(), 150)
		require.NoError(t, err)
		require.False(t, resp.Reactivated())

		_, body := api.last()
		require.JSONEq(t, `{"monthlyValue":150}`, body)
	})

	t.Run("reactivation message nested in data", func(t *testing.T) {
		api, client := newFakeAPI(t)
		api.on(http.MethodPost, "/clients/join", respond(http.StatusOK, `{"data":{"message":"Welcome back! Plan reactivated."}}`))

		resp, err := client.NewSession("abc").Join(context.Background(), 150)
		require.NoError(t, err)
		require.True(t, resp.Reactivated())
	})

	t.Run("already joined", func(t *testing.T) {
		api, client := newFakeAPI(t)
		api.on(http.MethodPost, "/clients/join", respond(http.StatusBadRequest,
			`{"message":"Client already joined.","data":{"code":"ALREADY_JOINED"}}`))

		_, err := client.NewSession("abc").Join(context.Background(), 150)

		var apiErr *investsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, investsdk.ErrorCodeAlreadyJoined, apiErr.Code)
	})
}

func TestDashboardCalls(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t)
	api.on(http.MethodGet, "/clients/7/portfolio", respond(http.StatusOK, `{"data":{
		"graphicAccount": "FLH-123456",
		"summary": {"totalInvested": 1000, "currentPortfolioValue": 1100, "profitabilityPercentage": 10, "totalPL": 100},
		"assets": [{"ticker":"ITUB4","quantity":10,"averagePrice":30.5,"currentValue":320,"pl":15,"plPercentage":4.9,"portfolioComposition":40}]
	}}`))
	api.on(http.MethodGet, "/engine/status", respond(http.StatusOK,
		`{"data":{"nextPurchaseDate":"2024-04-05T00:00:00Z","progressPercentage":62.5}}`))
	api.on(http.MethodPut, "/clients/7/monthly-value", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	api.on(http.MethodPost, "/clients/7/exit", respond(http.StatusOK, `{"message":"Exited."}`))

	session := client.NewSession("abc")
	ctx := context.Background()

	t.Run("portfolio", func(t *testing.T) {
		p, err := session.Portfolio(ctx, "7")
		require.NoError(t, err)
		require.Equal(t, "FLH-123456", p.GraphicAccount)
		require.InDelta(t, 100, p.Summary.TotalPL, 0.001)
		require.Len(t, p.Assets, 1)
		require.Equal(t, "ITUB4", p.Assets[0].Ticker)
	})

	t.Run("engine status", func(t *testing.T) {
		es, err := session.EngineStatus(ctx)
		require.NoError(t, err)
		require.InDelta(t, 62.5, es.ProgressPercentage, 0.001)

		next, ok := es.NextPurchaseAt()
		require.True(t, ok)
		require.Equal(t, 5, next.Day())
	})

	t.Run("update monthly value with empty body", func(t *testing.T) {
		require.NoError(t, session.UpdateMonthlyValue(ctx, "7", 250))
	})

	t.Run("exit", func(t *testing.T) {
		require.NoError(t, session.Exit(ctx, "7"))
	})
}

func TestSessionClaimsOpaqueToken(t *testing.T) {
	t.Parallel()

	_, err := investsdk.NewSDKClient("http://localhost").NewSession("abc").Claims()
	require.Error(t, err)
}
