package transport

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"go.uber.org/zap"
)

// EndOfDataHeader reports whether the returned page is the last one.
const EndOfDataHeader = "X-End-Of-Data"

// BlocksHandler serves GET /api/blocks.
type BlocksHandler struct {
	service WindowService
	logger  *zap.Logger
}

// NewBlocksHandler builds a BlocksHandler.
func NewBlocksHandler(service WindowService, logger *zap.Logger) (*BlocksHandler, error) {
	if service == nil {
		return nil, errors.New("window service is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BlocksHandler{service: service, logger: logger.Named("blocks_handler")}, nil
}

func (h *BlocksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := parseWindowRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	blocks, err := h.service.GetWindow(r.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("get window failed", zap.Any("request", req), zap.Error(err))
		} else {
			h.logger.Warn("get window failed", zap.Any("request", req), zap.Error(err))
		}
		writeError(w, status, err.Error())
		return
	}
	if blocks == nil {
		blocks = []model.EnrichedBlock{}
	}

	limit := req.Normalize(h.service.DefaultLimit()).Limit
	if limit > h.service.MaxLimit() {
		limit = h.service.MaxLimit()
	}
	w.Header().Set(EndOfDataHeader, strconv.FormatBool(model.EndOfData(blocks, limit)))
	writeJSON(w, http.StatusOK, blocks)
}

func parseWindowRequest(r *http.Request) (model.WindowRequest, error) {
	query := r.URL.Query()
	req := model.WindowRequest{TimeRange: model.TimeRange(query.Get("timeRange"))}

	var err error
	if req.Page, err = parsePositive(query, "page"); err != nil {
		return model.WindowRequest{}, err
	}
	if req.Limit, err = parsePositive(query, "limit"); err != nil {
		return model.WindowRequest{}, err
	}
	return req, nil
}

// parsePositive returns zero for a missing or empty parameter.
func parsePositive(query url.Values, name string) (uint64, error) {
	raw := query.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return v, nil
}
