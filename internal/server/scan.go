package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	scandomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/domain"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/pkg/db/pagination"
)

// ListScans serves the main scan history query. Filters compose: text
// search, field scope, date range, invoice/serial sets and the
// duplicate-serial view all arrive as query parameters.
func (s *Server) ListScans(c *gin.Context) {
	var page pagination.Request
	if err := c.ShouldBindQuery(&page); err != nil {
		respond(c, http.StatusBadRequest, "Invalid pagination parameters.", nil)
		return
	}

	scope, ok := scandomain.ParseFieldScope(c.Query("selected_filter"))
	if !ok {
		respond(c, http.StatusUnprocessableEntity, "selected_filter must be one of sku, invoice, sn.", nil)
		return
	}
	startDate, ok := parseOptionalDate(c, "start_date")
	if !ok {
		respond(c, http.StatusUnprocessableEntity, "start_date must be a valid date.", nil)
		return
	}
	endDate, ok := parseOptionalDate(c, "end_date")
	if !ok {
		respond(c, http.StatusUnprocessableEntity, "end_date must be a valid date.", nil)
		return
	}

	filter := scandomain.Filter{
		Exact:          c.Query("exact"),
		ExactMatch:     parseBool(c, "is_exact_search"),
		Scope:          scope,
		StartDate:      startDate,
		EndDate:        endDate,
		InvoiceNumbers: queryArray(c, "invoice_numbers"),
		SerialNumbers:  queryArray(c, "barcode_sns"),
		DuplicateOnly:  parseBool(c, "check-duplicate"),
	}

	result, err := s.scanSvc.Query(c.Request.Context(), scandomain.QueryRequest{
		Filter: filter,
		Page:   page,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Data retrieved successfully!"
	if filter.DuplicateOnly {
		message = "Duplicate barcode_sn retrieved successfully!"
	}
	respond(c, http.StatusOK, message, result)
}

func (s *Server) IngestScans(c *gin.Context) {
	var req scandomain.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	created, err := s.scanSvc.Ingest(c.Request.Context(), req)
	if err != nil {
		var conflict *scandomain.ConflictError
		if s.scanMetrics != nil && errors.As(err, &conflict) {
			s.scanMetrics.IngestConflicts.Inc()
		}
		respondError(c, err)
		return
	}

	if s.scanMetrics != nil {
		s.scanMetrics.RowsIngested.Add(float64(len(created)))
	}
	respond(c, http.StatusCreated, "Scanned items added successfully!", created)
}

func (s *Server) InvoiceView(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := s.scanSvc.InvoiceView(c.Request.Context(), scandomain.InvoiceViewRequest{
		InvoiceNumber: c.Query("invoice_number"),
		Page:          page,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Grouped scanned items retrieved successfully!", result)
}

// CheckDuplicates probes which of the submitted invoice numbers and
// barcode serials already exist. A clean result carries a null data
// field rather than empty lists.
func (s *Server) CheckDuplicates(c *gin.Context) {
	var req scandomain.DuplicateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	result, err := s.scanSvc.CheckDuplicates(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if s.scanMetrics != nil {
		s.scanMetrics.DuplicateProbes.Inc()
	}

	if result.Empty() {
		respond(c, http.StatusOK, "No duplicates found!", nil)
		return
	}
	respond(c, http.StatusOK, "Duplicates detected!", result)
}

func (s *Server) GetScan(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid id.", nil)
		return
	}

	record, err := s.scanSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Data retrieved successfully!", record)
}

func (s *Server) DeleteScan(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid id.", nil)
		return
	}

	if err := s.scanSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Data deleted successfully!", nil)
}

func (s *Server) UpdateScanBarcode(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid id.", nil)
		return
	}
	var req scandomain.UpdateBarcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	record, err := s.scanSvc.UpdateBarcode(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "SN updated successfully!", record)
}

func (s *Server) UpdateScanInvoice(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid id.", nil)
		return
	}
	var req scandomain.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	record, err := s.scanSvc.UpdateInvoice(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Invoice updated successfully!", record)
}

// RenameInvoice moves every row of one invoice to a new invoice number
// in a single transaction.
func (s *Server) RenameInvoice(c *gin.Context) {
	var req scandomain.RenameInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	records, err := s.scanSvc.RenameInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Invoice updated for all matching items!", records)
}
