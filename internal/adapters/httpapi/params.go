package httpapi

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// DateLayout is the wire format of calendar days.
const DateLayout = "2006-01-02"

// parseDate parses a calendar day in the site location. Empty input yields
// the zero time, which services read as today.
func (h *Handlers) parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(DateLayout, raw, h.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return t, nil
}

// queryDate reads a day query parameter.
func (h *Handlers) queryDate(c *gin.Context, key string) (time.Time, error) {
	return h.parseDate(c.Query(key))
}

// queryInt reads an integer query parameter, zero when absent.
func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return n, nil
}
