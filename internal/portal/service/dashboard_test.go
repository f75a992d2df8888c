package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/topfive/internal/portal/domain"
	"github.com/aussiebroadwan/topfive/pkg/investsdk"
)

func activeSession() *domain.Session {
	return &domain.Session{
		Token:  "abc",
		Client: &investsdk.Client{ClientID: "42", Name: "Ana", MonthlyValue: 300, Status: investsdk.StatusActive},
	}
}

func TestDashboardServiceLoad(t *testing.T) {
	t.Parallel()

	t.Run("both calls succeed", func(t *testing.T) {
		api := &fakeClientAPI{
			portfolio: &investsdk.Portfolio{Summary: investsdk.Summary{TotalInvested: 1000}},
			engine:    &investsdk.EngineStatus{ProgressPercentage: 40},
		}
		svc := &DashboardService{Sessions: factory(api, nil)}

		dash, notice := svc.Load(context.Background(), activeSession())
		require.Nil(t, notice)
		require.Equal(t, api.portfolio, dash.Portfolio)
		require.Equal(t, api.engine, dash.EngineStatus)
	})

	t.Run("engine failure is silent", func(t *testing.T) {
		api := &fakeClientAPI{portfolio: &investsdk.Portfolio{}, engineErr: errRefused}
		svc := &DashboardService{Sessions: factory(api, nil)}

		dash, notice := svc.Load(context.Background(), activeSession())
		require.Nil(t, notice)
		require.NotNil(t, dash.Portfolio)
		require.Nil(t, dash.EngineStatus)
	})

	t.Run("portfolio failure notifies", func(t *testing.T) {
		api := &fakeClientAPI{portErr: &investsdk.APIError{StatusCode: http.StatusInternalServerError}}
		svc := &DashboardService{Sessions: factory(api, nil)}

		dash, notice := svc.Load(context.Background(), activeSession())
		require.Nil(t, dash.Portfolio)
		require.Equal(t, domain.Failure(TitleError, MsgPortfolioFailed), notice)

		api = &fakeClientAPI{portErr: errRefused}
		svc = &DashboardService{Sessions: factory(api, nil)}
		_, notice = svc.Load(context.Background(), activeSession())
		require.Equal(t, domain.Failure(TitleConnectionError, MsgPortfolioOffline), notice)
	})
}

func TestDashboardServiceUpdateMonthlyValue(t *testing.T) {
	t.Parallel()

	t.Run("invalid values never reach the network", func(t *testing.T) {
		api := &fakeClientAPI{}
		svc := &DashboardService{Sessions: factory(api, nil)}

		for _, raw := range []string{"", "abc", "99.99", "-100", "NaN", "1e400"} {
			_, notice, err := svc.UpdateMonthlyValue(context.Background(), activeSession(), raw)
			require.Error(t, err, raw)
			require.Equal(t, domain.Failure(TitleError, MsgMonthlyValueMinimum), notice)
		}
		require.Empty(t, api.Calls())
	})

	t.Run("accepted value is returned", func(t *testing.T) {
		api := &fakeClientAPI{}
		svc := &DashboardService{Sessions: factory(api, nil)}

		v, notice, err := svc.UpdateMonthlyValue(context.Background(), activeSession(), "450,5")
		require.NoError(t, err)
		require.InDelta(t, 450.5, v, 1e-9)
		require.InDelta(t, 450.5, api.updatedTo, 1e-9)
		require.Equal(t, domain.Success(TitleSuccess, MsgMonthlyValueUpdated), notice)
	})

	t.Run("server message is shown", func(t *testing.T) {
		api := &fakeClientAPI{updateErr: &investsdk.APIError{StatusCode: http.StatusBadRequest, Message: "Value too high."}}
		svc := &DashboardService{Sessions: factory(api, nil)}

		_, notice, err := svc.UpdateMonthlyValue(context.Background(), activeSession(), "500")
		require.Error(t, err)
		require.Equal(t, domain.Failure(TitleError, "Value too high."), notice)
	})

	t.Run("connection failure", func(t *testing.T) {
		api := &fakeClientAPI{updateErr: errRefused}
		svc := &DashboardService{Sessions: factory(api, nil)}

		_, notice, err := svc.UpdateMonthlyValue(context.Background(), activeSession(), "500")
		require.Error(t, err)
		require.Equal(t, domain.Failure(TitleError, MsgMonthlyValueOffline), notice)
	})

	t.Run("requires a client", func(t *testing.T) {
		svc := &DashboardService{Sessions: factory(&fakeClientAPI{}, nil)}

		_, _, err := svc.UpdateMonthlyValue(context.Background(), &domain.Session{Token: "abc"}, "500")
		require.ErrorIs(t, err, ErrNoClient)
	})
}

func TestDashboardServiceExit(t *testing.T) {
	t.Parallel()

	api := &fakeClientAPI{}
	svc := &DashboardService{Sessions: factory(api, nil)}
	notice, err := svc.Exit(context.Background(), activeSession())
	require.NoError(t, err)
	require.Equal(t, domain.Success(TitleSuccess, MsgExitSucceeded), notice)
	require.Equal(t, []string{"exit"}, api.Calls())

	api = &fakeClientAPI{exitErr: &investsdk.APIError{StatusCode: http.StatusConflict}}
	svc = &DashboardService{Sessions: factory(api, nil)}
	notice, err = svc.Exit(context.Background(), activeSession())
	require.Error(t, err)
	require.Equal(t, domain.Failure(TitleError, MsgExitFailed), notice)

	api = &fakeClientAPI{exitErr: errRefused}
	svc = &DashboardService{Sessions: factory(api, nil)}
	notice, err = svc.Exit(context.Background(), activeSession())
	require.Error(t, err)
	require.Equal(t, domain.Failure(TitleError, MsgExitOffline), notice)
}
