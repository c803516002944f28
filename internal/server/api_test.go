package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/packagewjx/labor-demand/internal/datasource"
	"github.com/packagewjx/labor-demand/internal/session"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/packagewjx/labor-demand/pkg/server"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, source datasource.Source) *serverImpl {
	sess, err := session.New(source, nil)
	require.NoError(t, err)
	s, err := newServer(&ServerConfig{Port: DefaultPort}, sess)
	require.NoError(t, err)
	return s
}

// 缺少所需列，模型全部不可用
func newUntrainedServer(t *testing.T) *serverImpl {
	return newTestServer(t, datasource.NewCsvSource(strings.NewReader("Vehicles in Plan,True BJ Plan\n10,3\n12,4\n")))
}

func postJSON(handler http.Handler, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, server.LaborDemandPath, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestServerImpl_LaborDemand(t *testing.T) {
	s := newTestServer(t, datasource.NewCsvFileSource(testDataFile))
	demand, err := s.LaborDemand(&core.LiveInput{
		Plants:          core.RunningPlants{PLE: true, Waters: true},
		FBOrders:        41,
		DRPPendingLoads: 5,
	})
	assert.NoError(t, err)
	assert.True(t, demand.OutboundFBJacks.Available())
	assert.Equal(t, 2, demand.InboundJacks)
	assert.Equal(t, 2, demand.DRPJacks)

	_, err = s.LaborDemand(&core.LiveInput{ManualVehicles: -2})
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}

func TestLaborDemandAPI(t *testing.T) {
	s := newTestServer(t, datasource.NewCsvFileSource(testDataFile))

	input := &core.LiveInput{
		Plants:               core.RunningPlants{PLE: true, E1: true, E2: true, Waters: true},
		FBExpectedArrival:    26,
		FBOrders:             41,
		NWPETExpectedArrival: 9,
		DRPPendingLoads:      8,
		ManualVehicles:       4,
	}
	body, _ := json.Marshal(input)
	recorder := postJSON(s.Handler(), string(body))
	assert.Equal(t, http.StatusOK, recorder.Code)

	result := &core.LaborDemand{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), result))
	assert.True(t, result.OutboundFBJacks.Available())
	assert.Equal(t, 2, result.DRPJacks)
	assert.Equal(t, 4, result.InboundJacks)
	assert.Equal(t, 1, result.PalletHandlingJacks)
	assert.Equal(t, 8, result.ManualLabor)
	assert.Equal(t, 3, result.NWPETJacks)
	assert.Equal(t, 4, result.NWPETLabor)

	/*
		负数输入
	*/
	recorder = postJSON(s.Handler(), `{"fbOrders": -1}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	resp := &server.ErrorResponse{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), resp))
	assert.NotEmpty(t, resp.Error)

	/*
		无法解析
	*/
	recorder = postJSON(s.Handler(), `{"fbOrders": "many"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLaborDemandAPIWithoutModels(t *testing.T) {
	s := newUntrainedServer(t)
	recorder := postJSON(s.Handler(), `{"drpPendingLoads": 4, "plants": {"e1": true}}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	result := &core.LaborDemand{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), result))
	assert.False(t, result.OutboundFBJacks.Available())
	assert.True(t, errors.Is(result.OutboundFBJacks.Err, core.ErrPredictionFailed))
	assert.Equal(t, 1, result.DRPJacks)
	assert.Equal(t, 1, result.InboundJacks)
}

func TestIndexPage(t *testing.T) {
	s := newUntrainedServer(t)

	recorder := httptest.NewRecorder()
	s.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Generate Labor Demand")
	assert.NotContains(t, recorder.Body.String(), "Optimized Labor Demand")

	/*
		提交表单
	*/
	form := url.Values{}
	form.Set("e2", "true")
	form.Set("drpPendingLoads", "9")
	form.Set("nwpetExpectedArrival", "6")
	recorder = httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	s.Handler().ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	page := recorder.Body.String()
	assert.Contains(t, page, "Optimized Labor Demand")
	assert.Contains(t, page, "F&amp;B Battery Jack: unavailable")
	assert.Contains(t, page, "DRP Battery Jack: 3")
	assert.Contains(t, page, "Inbound Battery Jack: 1")
	assert.Contains(t, page, "NW PET Battery Jack: 2")
	assert.Contains(t, page, "NW PET Labor: 3")

	/*
		表单含负数
	*/
	form.Set("manualVehicles", "-3")
	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	s.Handler().ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "Optimized Labor Demand")
}

func TestHealthz(t *testing.T) {
	s := newUntrainedServer(t)
	recorder := httptest.NewRecorder()
	s.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, server.HealthzPath, nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}
