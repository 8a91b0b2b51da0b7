package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/config"
	itemdomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/domain"
	itemrepository "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/repository"
	itemservice "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/service"
	operatordomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/operator/domain"
	operatorrepository "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/operator/repository"
	scandomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/domain"
	scanrepository "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/repository"
	scanservice "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/service"
)

type testEnv struct {
	server *Server
	db     *gorm.DB
	item   itemdomain.MasterItem
	user   operatordomain.Operator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:server_%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&operatordomain.Operator{},
		&itemdomain.MasterItem{},
		&scandomain.ScanRecord{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	settings := config.NewStaticSettingsHolder(config.DefaultSettings())
	log := zap.NewNop()

	env := &testEnv{
		db: conn,
		item: itemdomain.MasterItem{
			ID:        node.Generate().Int64(),
			Name:      "Thermal Printer",
			BarcodeSN: "TPL-0001",
			SKU:       "SKU-A",
		},
		user: operatordomain.Operator{
			ID:    node.Generate().Int64(),
			Name:  "Budi",
			Email: "budi@example.com",
		},
	}
	require.NoError(t, conn.Create(&env.item).Error)
	require.NoError(t, conn.Create(&env.user).Error)

	scanSvc := scanservice.New(scanservice.Params{
		DB:        conn,
		Log:       log,
		GenID:     node,
		Settings:  settings,
		Repo:      scanrepository.Provide(),
		Items:     itemrepository.Provide(),
		Operators: operatorrepository.Provide(),
	})
	itemSvc := itemservice.New(itemservice.Params{
		DB:    conn,
		Log:   log,
		GenID: node,
		Repo:  itemrepository.Provide(),
	})

	env.server = NewServer(ServerParams{
		Gin:     gin.New(),
		Cfg:     config.Config{},
		Log:     log,
		ScanSvc: scanSvc,
		ItemSvc: itemSvc,
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.server.Engine().ServeHTTP(rec, req)

	var envelope Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func (e *testEnv) ingestOne(t *testing.T, invoice, sn string) {
	t.Helper()
	qty := 1
	rec, _ := e.do(t, http.MethodPost, "/api/v1/scanned-items", scandomain.IngestRequest{
		Items: []scandomain.IngestItem{{
			ItemID:        e.item.ID,
			UserID:        e.user.ID,
			SKU:           e.item.SKU,
			InvoiceNumber: invoice,
			Qty:           &qty,
			BarcodeSN:     sn,
		}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestIngestScansEnvelope(t *testing.T) {
	env := newTestEnv(t)

	qty := 2
	rec, envelope := env.do(t, http.MethodPost, "/api/v1/scanned-items", scandomain.IngestRequest{
		Items: []scandomain.IngestItem{{
			ItemID:        env.item.ID,
			UserID:        env.user.ID,
			SKU:           "SKU-A",
			InvoiceNumber: "INV-1",
			Qty:           &qty,
			BarcodeSN:     "SN1",
		}},
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, http.StatusCreated, envelope.StatusCode)
	assert.Equal(t, "Scanned items added successfully!", envelope.Message)
	assert.NotNil(t, envelope.Data)
}

func TestIngestScansValidationEnvelope(t *testing.T) {
	env := newTestEnv(t)

	qty := 1
	rec, envelope := env.do(t, http.MethodPost, "/api/v1/scanned-items", scandomain.IngestRequest{
		Items: []scandomain.IngestItem{{
			ItemID:        env.item.ID,
			SKU:           "SKU-A",
			InvoiceNumber: "INV-1",
			Qty:           &qty,
			BarcodeSN:     "SN1",
		}},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, http.StatusUnprocessableEntity, envelope.StatusCode)
}

func TestListScansPerPageCeiling(t *testing.T) {
	env := newTestEnv(t)

	rec, envelope := env.do(t, http.MethodGet, "/api/v1/scanned-items?per_page=501", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "per_page cannot be more than 500", envelope.Message)
}

func TestListScansDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.ingestOne(t, "INV-1", "SN1")

	rec, envelope := env.do(t, http.MethodGet, "/api/v1/scanned-items", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)

	page, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 5, page["per_page"])
	assert.EqualValues(t, 1, page["current_page"])
}

func TestCheckDuplicatesCleanIsNullData(t *testing.T) {
	env := newTestEnv(t)

	rec, envelope := env.do(t, http.MethodPost, "/api/v1/scanned-items/check-duplicate",
		scandomain.DuplicateCheckRequest{Barcodes: []string{"SN-MISSING"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "No duplicates found!", envelope.Message)
	assert.Nil(t, envelope.Data)
}

func TestCheckDuplicatesDetected(t *testing.T) {
	env := newTestEnv(t)
	env.ingestOne(t, "INV-1", "SN1")

	rec, envelope := env.do(t, http.MethodPost, "/api/v1/scanned-items/check-duplicate",
		scandomain.DuplicateCheckRequest{Invoices: []string{"INV-1"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Duplicates detected!", envelope.Message)
	assert.NotNil(t, envelope.Data)
}

func TestCheckDuplicatesEmptyInputRejected(t *testing.T) {
	env := newTestEnv(t)

	rec, envelope := env.do(t, http.MethodPost, "/api/v1/scanned-items/check-duplicate",
		scandomain.DuplicateCheckRequest{})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, envelope.Success)
}

func TestInvoiceViewRequiresInvoice(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodGet, "/api/v1/scanned-items/invoice-view", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	env.ingestOne(t, "INV-1", "SN1")
	rec, envelope := env.do(t, http.MethodGet, "/api/v1/scanned-items/invoice-view?invoice_number=INV-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
}

func TestGetScanNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, envelope := env.do(t, http.MethodGet, "/api/v1/scanned-items/424242", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, http.StatusNotFound, envelope.StatusCode)
}

func TestRenameInvoiceMissingValues(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodPut, "/api/v1/scanned-items/invoice",
		scandomain.RenameInvoiceRequest{OldInvoiceNumber: "INV-1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreMasterItemsConflictEnvelope(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodPost, "/api/v1/master-items", itemdomain.StoreRequest{
		Items: []itemdomain.StoreItem{{Name: "Printer v2", BarcodeSN: "TPL-0002", SKU: "SKU-A"}},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "SKU-A")
}
