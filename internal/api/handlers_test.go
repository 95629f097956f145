package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/huangsam/churnscope/core"
	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(internet, contract, payment string, tenure int, monthly float64, churn string) schema.Customer {
	c := schema.Customer{
		Gender:           "Female",
		Dependents:       "No",
		PhoneService:     "Yes",
		PaperlessBilling: "Yes",
		InternetService:  internet,
		Contract:         contract,
		PaymentMethod:    payment,
		TenureMonths:     tenure,
		MonthlyCharges:   monthly,
		TotalCharges:     float64(tenure) * monthly,
		Churn:            churn,
	}
	c.ChurnFlag = schema.ChurnFlagFor(churn)
	c.TenureBand = schema.TenureBandFor(tenure)
	c.Segment = schema.SegmentFor(contract, internet)
	return c
}

func testServer() *Server {
	records := schema.RecordSet{
		newCustomer("DSL", "Month-to-month", "Electronic check", 12, 30, "Yes"),
		newCustomer("DSL", "One year", "Mailed check", 24, 30, "No"),
		newCustomer("Fiber optic", "Two year", "Credit card (automatic)", 45, 40, "No"),
	}
	engine := core.NewEngine(records, schema.RateOrder, schema.TotalBasis)
	cfg := &contract.Config{
		Selection:  schema.DefaultSelection(),
		ListenAddr: contract.DefaultListenAddr,
	}
	return NewServer(engine, cfg)
}

func doRequest(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	testServer().Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 3, body["records"])
}

func TestRequestIDHeader(t *testing.T) {
	first := doRequest(t, "/healthz")
	second := doRequest(t, "/healthz")

	assert.NotEmpty(t, first.Header().Get(requestIDHeader))
	// Every request gets its own ID
	assert.NotEqual(t, first.Header().Get(requestIDHeader), second.Header().Get(requestIDHeader))
}

func TestSummaryEndpoint(t *testing.T) {
	rec := doRequest(t, "/api/v1/summary")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var summary schema.KPISummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, "33.33%", summary.ChurnRateLabel)
}

func TestSummaryEndpointFiltered(t *testing.T) {
	rec := doRequest(t, "/api/v1/summary?internet=DSL")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary schema.KPISummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, "50.00%", summary.ChurnRateLabel)
}

func TestSummaryEndpointEmptySubset(t *testing.T) {
	rec := doRequest(t, "/api/v1/summary?internet=Satellite")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary schema.KPISummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Zero(t, summary.Count)
	assert.Equal(t, "0%", summary.ChurnRateLabel)
}

func TestSummaryEndpointTenureValidation(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "non-numeric min", path: "/api/v1/summary?tenure_min=abc"},
		{name: "negative max", path: "/api/v1/summary?tenure_max=-3"},
		{name: "inverted range", path: "/api/v1/summary?tenure_min=24&tenure_max=12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, tt.path)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestChartEndpoint(t *testing.T) {
	rec := doRequest(t, "/api/v1/charts/rate-internet")
	require.Equal(t, http.StatusOK, rec.Code)

	var spec schema.ChartSpec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	assert.Equal(t, schema.RateInternetChart, spec.Kind)
	require.Len(t, spec.Series, 1)
	assert.Equal(t, schema.RateBarColor, spec.Series[0].Color)
}

func TestChartEndpointUnknownKind(t *testing.T) {
	rec := doRequest(t, "/api/v1/charts/pie")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "unknown chart kind")
}

func TestChartsEndpoint(t *testing.T) {
	rec := doRequest(t, "/api/v1/charts?contract=Month-to-month")
	require.Equal(t, http.StatusOK, rec.Code)

	var specs []schema.ChartSpec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &specs))
	require.Len(t, specs, len(schema.AllChartKinds))
	for i, kind := range schema.AllChartKinds {
		assert.Equal(t, kind, specs[i].Kind)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summary", nil)
	rec := httptest.NewRecorder()
	testServer().Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStartGracefulShutdown(t *testing.T) {
	srv := testServer()
	srv.cfg.ListenAddr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	// Give the listener a moment to bind, then cancel like SIGINT would
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}
