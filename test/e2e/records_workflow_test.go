//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dmartins/varejo-be/internal/adapters/db"
	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
	"github.com/dmartins/varejo-be/internal/core/services"
	"github.com/dmartins/varejo-be/internal/handlers"
	"github.com/dmartins/varejo-be/test/helpers"
)

// syncEnqueuer persists predictions inline so the workflow can be asserted
// without running an asynq worker.
type syncEnqueuer struct {
	predictions ports.PredictionRepository
}

func (e *syncEnqueuer) EnqueuePredictionPersist(ctx context.Context, prediction *domain.Prediction) error {
	return e.predictions.Create(ctx, prediction)
}

type RecordsE2ESuite struct {
	suite.Suite
	server  *httptest.Server
	client  *http.Client
	baseURL string
	testDB  *helpers.TestDB
}

func (s *RecordsE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *RecordsE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *RecordsE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

func (s *RecordsE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()

	clientRepo := db.NewClientRepository(s.testDB.Database, logger)
	productRepo := db.NewProductRepository(s.testDB.Database, logger)
	saleRepo := db.NewSaleRepository(s.testDB.Database, logger)
	predictionRepo := db.NewPredictionRepository(s.testDB.Database, logger)

	clientService := services.NewClientService(clientRepo, logger)
	productService := services.NewProductService(productRepo, logger)
	saleService := services.NewSaleService(saleRepo, logger)
	forecastService := services.NewForecastService(predictionRepo, &syncEnqueuer{predictions: predictionRepo}, logger)

	clientHandler := handlers.NewClientHandler(clientService, logger)
	productHandler := handlers.NewProductHandler(productService, logger)
	saleHandler := handlers.NewSaleHandler(saleService, logger)
	forecastHandler := handlers.NewForecastHandler(forecastService, 1.0, 1.0, logger)

	mux := http.NewServeMux()
	apiV1 := "/api/v1"

	mux.HandleFunc("POST "+apiV1+"/clients", clientHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/clients", clientHandler.List)
	mux.HandleFunc("GET "+apiV1+"/clients/{id}", clientHandler.Get)
	mux.HandleFunc("PATCH "+apiV1+"/clients/{id}", clientHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/clients/{id}", clientHandler.Delete)

	mux.HandleFunc("POST "+apiV1+"/products", productHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/products/{id}", productHandler.Get)
	mux.HandleFunc("PATCH "+apiV1+"/products/{id}", productHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/products/{id}", productHandler.Delete)

	mux.HandleFunc("POST "+apiV1+"/sales", saleHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/sales", saleHandler.List)
	mux.HandleFunc("DELETE "+apiV1+"/sales/{id}", saleHandler.Delete)

	mux.HandleFunc("POST "+apiV1+"/forecast", forecastHandler.Forecast)
	mux.HandleFunc("GET "+apiV1+"/forecast/{product_id}", forecastHandler.History)

	return httptest.NewServer(mux)
}

func (s *RecordsE2ESuite) TestCompleteRecordKeepingWorkflow() {
	// 1. Register a client
	resp := s.makeRequest("POST", "/clients", map[string]interface{}{
		"name":  "Maria Souza",
		"email": "maria.e2e@example.com",
		"phone": "+55 11 91234-0001",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)
	client := s.decodeData(resp)
	clientID := client["id"].(string)
	s.NotEmpty(clientID)

	// 2. Register a product
	resp = s.makeRequest("POST", "/products", map[string]interface{}{
		"name":           "Roasted Coffee Beans 500g",
		"description":    "Medium roast",
		"price":          "34.90",
		"stock_quantity": 100,
	})
	s.Equal(http.StatusCreated, resp.StatusCode)
	product := s.decodeData(resp)
	productID := product["id"].(string)

	// 3. Record a few sales
	for i := 0; i < 3; i++ {
		resp = s.makeRequest("POST", "/sales", map[string]interface{}{
			"client_id":  clientID,
			"product_id": productID,
			"quantity":   2 + i,
			"total":      fmt.Sprintf("%.2f", 34.90*float64(2+i)),
		})
		s.Equal(http.StatusCreated, resp.StatusCode)
	}

	// 4. Listing reports the unbounded total
	resp = s.makeRequest("GET", "/sales?page=1&limit=2", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	listing := s.decodeData(resp)
	s.Equal(float64(3), listing["total_count"])
	s.Len(listing["items"].([]interface{}), 2)

	// 5. Patch the client without touching other fields
	resp = s.makeRequest("PATCH", "/clients/"+clientID, map[string]interface{}{
		"phone": "+55 21 99999-0000",
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	patched := s.decodeData(resp)
	s.Equal("+55 21 99999-0000", patched["phone"])
	s.Equal("Maria Souza", patched["name"])

	// 6. Compute a forecast
	resp = s.makeRequest("POST", "/forecast", map[string]interface{}{
		"product_id":         productID,
		"historical_sales":   []float64{2, 3, 4},
		"current_stock":      100,
		"promotional_factor": 1.5,
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	prediction := s.decodeData(resp)
	s.Equal("4.5", prediction["predicted_sales"])
	s.Equal(float64(95), prediction["predicted_stock"])
	s.Equal("0.85", prediction["confidence"])

	// 7. The prediction lands in the history
	resp = s.makeRequest("GET", "/forecast/"+productID, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	history := s.decodeData(resp)
	s.Equal(float64(1), history["total_count"])

	// 8. Deleting the client cascades to its sales
	resp = s.makeRequest("DELETE", "/clients/"+clientID, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.makeRequest("GET", "/sales", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	listing = s.decodeData(resp)
	s.Equal(float64(0), listing["total_count"])

	// 9. The deleted client is gone
	resp = s.makeRequest("GET", "/clients/"+clientID, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *RecordsE2ESuite) TestDuplicateEmailRejected() {
	body := map[string]interface{}{
		"name":  "Ana Lima",
		"email": "ana.e2e@example.com",
	}

	resp := s.makeRequest("POST", "/clients", body)
	s.Equal(http.StatusCreated, resp.StatusCode)
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	resp = s.makeRequest("POST", "/clients", body)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var env map[string]interface{}
	s.NoError(json.NewDecoder(resp.Body).Decode(&env))
	resp.Body.Close()
	s.Equal("error", env["status"])
}

func (s *RecordsE2ESuite) TestForecastForUnknownHistoryFormat() {
	resp := s.makeRequest("POST", "/forecast", map[string]interface{}{
		"product_id":       "not-a-uuid",
		"historical_sales": []float64{1},
		"current_stock":    10,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *RecordsE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.NoError(err)
	return resp
}

// decodeData unwraps the response envelope and returns its data object.
func (s *RecordsE2ESuite) decodeData(resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()

	var env struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	s.NoError(json.NewDecoder(resp.Body).Decode(&env))
	s.Equal("success", env.Status)
	return env.Data
}

func TestRecordsE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(RecordsE2ESuite))
}
