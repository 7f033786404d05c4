package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fakturo/internal/domain"
	"fakturo/internal/handler"
	"fakturo/internal/service"
	"fakturo/mocks"
)

func newInvoiceHandler(invoices *mocks.MockInvoiceRepo, clients *mocks.MockClientRepo) *handler.InvoiceHandler {
	invoiceSvc := service.NewInvoiceService(invoices, clients)
	clientSvc := service.NewClientService(clients)
	return handler.NewInvoiceHandler(invoiceSvc, nil, clientSvc, nil)
}

func TestInvoiceHandler_Create(t *testing.T) {
	invoices := new(mocks.MockInvoiceRepo)
	clients := new(mocks.MockClientRepo)

	clients.On("GetByID", mock.Anything, int64(7)).Return(&domain.Client{ID: 7}, nil)
	invoices.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"client_id":  7,
		"issue_date": "2024-07-15T00:00:00Z",
		"items": []map[string]interface{}{
			{"description": "consulting", "quantity": "3", "unit_price_net": "10.005", "vat_rate": "23"},
		},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	newInvoiceHandler(invoices, clients).Create(c)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestInvoiceHandler_Create_UnknownClient(t *testing.T) {
	invoices := new(mocks.MockInvoiceRepo)
	clients := new(mocks.MockClientRepo)

	clients.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	body, _ := json.Marshal(map[string]interface{}{
		"client_id":  99,
		"issue_date": "2024-07-15T00:00:00Z",
		"items": []map[string]interface{}{
			{"description": "consulting", "quantity": "1", "unit_price_net": "100", "vat_rate": "23"},
		},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	newInvoiceHandler(invoices, clients).Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceHandler_GetByID_InvalidID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/invoices/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	newInvoiceHandler(new(mocks.MockInvoiceRepo), new(mocks.MockClientRepo)).GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceHandler_UpdateStatus(t *testing.T) {
	invoices := new(mocks.MockInvoiceRepo)

	invoices.On("UpdateStatus", mock.Anything, int64(4), domain.StatusPaid).Return(nil)

	body := []byte(`{"status": "Paid"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/api/v1/invoices/4/status", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "4"}}

	newInvoiceHandler(invoices, new(mocks.MockClientRepo)).UpdateStatus(c)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	invoices.AssertExpectations(t)
}

func TestInvoiceHandler_UpdateStatus_Invalid(t *testing.T) {
	body := []byte(`{"status": "Archived"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/api/v1/invoices/4/status", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "4"}}

	newInvoiceHandler(new(mocks.MockInvoiceRepo), new(mocks.MockClientRepo)).UpdateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
