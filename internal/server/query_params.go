package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const dateOnly = "2006-01-02"

// parseOptionalDate reads a query value as either a bare calendar date
// or a full RFC3339 timestamp. Absent values return nil.
func parseOptionalDate(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(dateOnly, raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	return nil, false
}

func parseBool(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// queryArray accepts both repeated keys and the bracketed form some
// clients send, e.g. invoice_numbers and invoice_numbers[].
func queryArray(c *gin.Context, key string) []string {
	values := c.QueryArray(key)
	if len(values) == 0 {
		values = c.QueryArray(key + "[]")
	}
	return values
}
