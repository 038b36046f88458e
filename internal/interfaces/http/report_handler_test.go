package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/quickcart-inventory/internal/application/dto"
	"github.com/jhoicas/quickcart-inventory/internal/application/reporting"
	"github.com/jhoicas/quickcart-inventory/internal/domain/entity"
	"github.com/jhoicas/quickcart-inventory/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/quickcart-inventory/internal/interfaces/http"
	"github.com/jhoicas/quickcart-inventory/pkg/logger"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *mockProductRepo) TotalStock(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func buildReportApp(repo *mockProductRepo) *fiber.App {
	gen := reporting.NewGenerator(pdf.NewBackend(), reporting.Options{
		StoreName:      "Quick Cart Grocery Store",
		CurrencyPrefix: "Rs. ",
		Now:            func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) },
	})
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		ReportUC:  reporting.NewProductReportUseCase(repo, gen, logger.Nop()),
		JWTSecret: testJWTSecret,
	})
	return app
}

func products() []*entity.Product {
	return []*entity.Product{
		{ID: "1", Name: "Manzana Roja", Price: decimal.RequireFromString("2.50"), Stock: 10, Category: "Fruit", Supplier: "Huerta"},
		{ID: "2", Name: "Leche Entera", Price: decimal.RequireFromString("1.20"), Stock: 25, Category: "Dairy", Supplier: "Lácteos"},
		{ID: "3", Name: "Café Molido", Price: decimal.RequireFromString("9.99"), Stock: 4, Category: "Pantry", Supplier: ""},
	}
}

func TestReportHandler_DownloadPDF(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("ListAll", mock.Anything).Return(products(), nil)

	resp := doGet(t, buildReportApp(repo), "/api/products/report", bearer(t, "staff"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, "attachment; filename=products.pdf", resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")), "el cuerpo debe ser un PDF")
	repo.AssertExpectations(t)
}

func TestReportHandler_DownloadPDF_SinToken(t *testing.T) {
	repo := new(mockProductRepo)

	resp := doGet(t, buildReportApp(repo), "/api/products/report", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	repo.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestReportHandler_DownloadPDF_GlifoNoSoportado(t *testing.T) {
	repo := new(mockProductRepo)
	list := products()
	list[0].Name = "日本茶"
	repo.On("ListAll", mock.Anything).Return(list, nil)

	resp := doGet(t, buildReportApp(repo), "/api/products/report", bearer(t, "staff"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "REPORT_GENERATION_FAILED", body.Code)
	assert.NotEqual(t, "application/pdf", resp.Header.Get("Content-Type"), "no se envía documento parcial")
}

func TestReportHandler_GetStats(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("ListAll", mock.Anything).Return(products(), nil)

	resp := doGet(t, buildReportApp(repo), "/api/products/stats", bearer(t, "staff"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.InventoryStatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.TotalProducts)
	assert.Equal(t, int64(39), body.TotalStock)
	assert.InDelta(t, 4.56, body.AveragePrice, 1e-9) // 13.69/3 = 4.5633
	assert.InDelta(t, 94.96, body.TotalValue, 1e-9)  // 25 + 30 + 39.96
	assert.Equal(t, 3, body.CategoryCount)
}

func TestReportHandler_GetTotalStock(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("TotalStock", mock.Anything).Return(int64(39), nil)

	resp := doGet(t, buildReportApp(repo), "/api/products/total-stock", bearer(t, "staff"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(39), body["totalStock"])
}

func TestReportHandler_ErrorDeRepositorio(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("ListAll", mock.Anything).Return(nil, errors.New("db caída"))

	resp := doGet(t, buildReportApp(repo), "/api/products/stats", bearer(t, "staff"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL", body.Code)
}
