package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
)

const maxHistoryLimit = 200

// Handler wires the HTTP transport to the styling service.
type Handler struct {
	advisor styling.Service
	logger  *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(advisor styling.Service, logger *slog.Logger) *Handler {
	return &Handler{
		advisor: advisor,
		logger:  logger.With("component", "http.handler"),
	}
}

// Recommend handles the JSON recommendation endpoint.
func (h *Handler) Recommend(c *gin.Context) {
	var req styling.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, badRequest(err.Error(), err))
		return
	}
	h.recommend(c, req)
}

// RecommendForm accepts the same fields form encoded, as free text.
func (h *Handler) RecommendForm(c *gin.Context) {
	raw, err := styling.ParseRawMeasurements(
		c.PostForm("bust"),
		c.PostForm("waist"),
		c.PostForm("hips"),
		firstNonEmpty(c.PostForm("highHip"), c.PostForm("high_hip")),
		c.PostForm("unit"),
	)
	if err != nil {
		fail(c, err)
		return
	}
	includeAdvice, err := formBool(c, "includeAdvice")
	if err != nil {
		fail(c, err)
		return
	}
	save, err := formBool(c, "save")
	if err != nil {
		fail(c, err)
		return
	}
	h.recommend(c, styling.Request{
		Bust:          raw.Bust,
		Waist:         raw.Waist,
		Hips:          raw.Hips,
		HighHip:       raw.HighHip,
		Unit:          raw.Unit,
		Undertone:     c.PostForm("undertone"),
		Occasion:      c.PostForm("occasion"),
		City:          c.PostForm("city"),
		IncludeAdvice: includeAdvice,
		Save:          save,
	})
}

func (h *Handler) recommend(c *gin.Context, req styling.Request) {
	resp, err := h.advisor.Recommend(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History lists saved outfits, newest first.
func (h *Handler) History(c *gin.Context) {
	limit := 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			fail(c, badRequest("limit must be a non-negative integer", err))
			return
		}
		limit = min(parsed, maxHistoryLimit)
	}

	records, err := h.advisor.History(c.Request.Context(), limit)
	if err != nil {
		fail(c, err)
		return
	}
	outfits := make([]map[string]string, 0, len(records))
	for _, record := range records {
		outfits = append(outfits, record.Map())
	}
	c.JSON(http.StatusOK, gin.H{"outfits": outfits})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func formBool(c *gin.Context, key string) (bool, error) {
	v := strings.TrimSpace(c.PostForm(key))
	switch strings.ToLower(v) {
	case "":
		return false, nil
	case "on", "yes":
		return true, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, badRequest(key+" must be a boolean", err)
	}
	return parsed, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
