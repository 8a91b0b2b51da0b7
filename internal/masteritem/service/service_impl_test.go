package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/domain"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/repository"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/pkg/db/pagination"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.MasterItem{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    conn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, conn
}

func storeItems(t *testing.T, svc domain.Service, items ...domain.StoreItem) {
	t.Helper()
	require.NoError(t, svc.Store(context.Background(), domain.StoreRequest{Items: items}))
}

func TestStoreAndList(t *testing.T) {
	svc, _ := newTestService(t)

	storeItems(t, svc,
		domain.StoreItem{Name: "Thermal Printer", BarcodeSN: "TPL-0001", SKU: "SKU-A"},
		domain.StoreItem{Name: "Label Roll", BarcodeSN: "LBL-0001", SKU: "SKU-B"},
	)

	page, err := svc.List(context.Background(), domain.ListRequest{
		Page: pagination.Request{Page: 1, PerPage: 10},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	assert.Len(t, page.Data, 2)
}

func TestStoreValidatesEveryRow(t *testing.T) {
	svc, db := newTestService(t)

	err := svc.Store(context.Background(), domain.StoreRequest{
		Items: []domain.StoreItem{
			{Name: "Thermal Printer", BarcodeSN: "TPL-0001", SKU: "SKU-A"},
			{Name: "", BarcodeSN: "", SKU: "SKU-B"},
		},
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 2)
	assert.Equal(t, "items.1.name", vErr.Fields[0].Field)
	assert.Equal(t, "items.1.barcode_sn", vErr.Fields[1].Field)

	var count int64
	require.NoError(t, db.Model(&domain.MasterItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStoreRejectsTakenSKUs(t *testing.T) {
	svc, _ := newTestService(t)

	storeItems(t, svc, domain.StoreItem{Name: "Thermal Printer", BarcodeSN: "TPL-0001", SKU: "SKU-A"})

	// One SKU taken in the store, one repeated inside the batch.
	err := svc.Store(context.Background(), domain.StoreRequest{
		Items: []domain.StoreItem{
			{Name: "Printer v2", BarcodeSN: "TPL-0002", SKU: "SKU-A"},
			{Name: "Label Roll", BarcodeSN: "LBL-0001", SKU: "SKU-B"},
			{Name: "Label Roll v2", BarcodeSN: "LBL-0002", SKU: "SKU-B"},
		},
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"SKU-A", "SKU-B"}, vErr.ConflictingSKUs)
}

func TestStoreRejectsTakenBarcodes(t *testing.T) {
	svc, db := newTestService(t)

	storeItems(t, svc, domain.StoreItem{Name: "Thermal Printer", BarcodeSN: "TPL-0001", SKU: "SKU-A"})

	// Fresh SKUs, but one barcode taken in the store and one repeated
	// inside the batch. The report must name the barcodes, not the SKUs.
	err := svc.Store(context.Background(), domain.StoreRequest{
		Items: []domain.StoreItem{
			{Name: "Printer v2", BarcodeSN: "TPL-0001", SKU: "SKU-B"},
			{Name: "Label Roll", BarcodeSN: "LBL-0001", SKU: "SKU-C"},
			{Name: "Label Roll v2", BarcodeSN: "LBL-0001", SKU: "SKU-D"},
		},
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, vErr.ConflictingSKUs)
	assert.Equal(t, []string{"TPL-0001", "LBL-0001"}, vErr.ConflictingBarcodes)
	require.Len(t, vErr.Fields, 2)
	assert.Equal(t, "items.0.barcode_sn", vErr.Fields[0].Field)
	assert.Equal(t, "items.2.barcode_sn", vErr.Fields[1].Field)

	var count int64
	require.NoError(t, db.Model(&domain.MasterItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "a rejected batch writes nothing")
}

func TestExactSearch(t *testing.T) {
	svc, _ := newTestService(t)

	storeItems(t, svc, domain.StoreItem{Name: "Thermal Printer", BarcodeSN: "TPL-0001", SKU: "SKU-A"})

	page, err := svc.List(context.Background(), domain.ListRequest{Query: "SKU-A", Exact: true})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "SKU-A", page.Data[0].SKU)

	// Name matches exactly too.
	page, err = svc.List(context.Background(), domain.ListRequest{Query: "Thermal Printer", Exact: true})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)

	_, err = svc.List(context.Background(), domain.ListRequest{Query: "SKU", Exact: true})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubstringSearch(t *testing.T) {
	svc, _ := newTestService(t)

	storeItems(t, svc,
		domain.StoreItem{Name: "Thermal Printer", BarcodeSN: "TPL-0001", SKU: "SKU-A"},
		domain.StoreItem{Name: "Label Roll", BarcodeSN: "LBL-0001", SKU: "SKU-B"},
	)

	page, err := svc.List(context.Background(), domain.ListRequest{
		Query: "Thermal",
		Page:  pagination.Request{Page: 1, PerPage: 10},
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "SKU-A", page.Data[0].SKU)
}

func TestUpdateNameAndDelete(t *testing.T) {
	svc, _ := newTestService(t)

	storeItems(t, svc, domain.StoreItem{Name: "Thermal Printer", BarcodeSN: "TPL-0001", SKU: "SKU-A"})

	page, err := svc.List(context.Background(), domain.ListRequest{
		Page: pagination.Request{Page: 1, PerPage: 1},
	})
	require.NoError(t, err)
	id := page.Data[0].ID

	updated, err := svc.UpdateName(context.Background(), id, domain.UpdateNameRequest{Name: "Thermal Printer v2"})
	require.NoError(t, err)
	assert.Equal(t, "Thermal Printer v2", updated.Name)

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.ErrorIs(t, svc.Delete(context.Background(), id), domain.ErrNotFound)

	_, err = svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateNameValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateName(context.Background(), 1, domain.UpdateNameRequest{Name: "  "})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Fields[0].Field)
}
