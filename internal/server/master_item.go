package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	itemdomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/domain"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/pkg/db/pagination"
)

func (s *Server) ListMasterItems(c *gin.Context) {
	var page pagination.Request
	if err := c.ShouldBindQuery(&page); err != nil {
		respond(c, http.StatusBadRequest, "Invalid pagination parameters.", nil)
		return
	}

	result, err := s.itemSvc.List(c.Request.Context(), itemdomain.ListRequest{
		Query: c.Query("query"),
		Exact: parseBool(c, "exact"),
		Page:  page,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Data retrieved successfully!", result)
}

func (s *Server) GetMasterItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid id.", nil)
		return
	}

	item, err := s.itemSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Data retrieved successfully!", item)
}

// StoreMasterItems registers a batch of catalog items. Validation
// covers every row before anything is written, so a rejected batch
// reports all of its failures at once.
func (s *Server) StoreMasterItems(c *gin.Context) {
	var req itemdomain.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	if err := s.itemSvc.Store(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Data added successfully!", nil)
}

func (s *Server) UpdateMasterItemName(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid id.", nil)
		return
	}
	var req itemdomain.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	item, err := s.itemSvc.UpdateName(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Data updated successfully!", item)
}

func (s *Server) DeleteMasterItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid id.", nil)
		return
	}

	if err := s.itemSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Data deleted successfully!", nil)
}
