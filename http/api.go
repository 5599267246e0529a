package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/yggdrasil/featureflag"
	"github.com/aukilabs/yggdrasil/models"
	"github.com/aukilabs/yggdrasil/tpntree"
	"github.com/segmentio/encoding/json"
)

// Error types reported by the partition API.
const (
	ErrTypeBadRequest        = "bad_request"
	ErrTypePartitionNotFound = "partition_not_found"
)

// API serves the partition management endpoints.
type API struct {
	Partitions   *models.PartitionStore
	FeatureFlags featureflag.FeatureFlag
}

func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /partitions", a.handleCreatePartition)
	mux.HandleFunc("GET /partitions", a.handleListPartitions)
	mux.HandleFunc("GET /partitions/{id}", a.handleGetPartition)
	mux.HandleFunc("POST /partitions/{id}/points", a.handleInsertPoint)
	mux.HandleFunc("GET /partitions/{id}/locate", a.handleLocate)
	mux.HandleFunc("GET /partitions/{id}/adjacent", a.handleAdjacent)

	a.FeatureFlags.IfNotSet(featureflag.FlagDisablePartitionDelete, func() {
		mux.HandleFunc("DELETE /partitions/{id}", a.handleDeletePartition)
	})
}

type createPartitionRequest struct {
	Span       float64 `json:"span"`
	Dimensions int     `json:"dimensions"`
	Capacity   int     `json:"capacity"`
}

func (a *API) handleCreatePartition(w http.ResponseWriter, r *http.Request) {
	var req createPartitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New("decoding create partition request failed").
			WithType(ErrTypeBadRequest).
			Wrap(err))
		return
	}

	p, err := models.NewPartition(req.Span, req.Dimensions, req.Capacity)
	if err != nil {
		writeError(w, errors.New("creating partition failed").
			WithType(ErrTypeBadRequest).
			Wrap(err))
		return
	}
	a.Partitions.Add(p)

	logs.WithTag("partition_id", p.ID).
		WithTag("dimensions", p.Dimensions).
		Info("partition created")

	writeJSON(w, http.StatusCreated, p.DebugInfo())
}

func (a *API) handleListPartitions(w http.ResponseWriter, r *http.Request) {
	partitions := a.Partitions.List()
	infos := make([]models.DebugInfo, len(partitions))
	for i, p := range partitions {
		infos[i] = p.DebugInfo()
	}
	writeJSON(w, http.StatusOK, infos)
}

func (a *API) handleGetPartition(w http.ResponseWriter, r *http.Request) {
	p, ok := a.Partitions.Get(r.PathValue("id"))
	if !ok {
		writeError(w, errors.New("partition is not hosted").
			WithType(ErrTypePartitionNotFound).
			WithTag("partition_id", r.PathValue("id")))
		return
	}
	writeJSON(w, http.StatusOK, p.DebugInfo())
}

func (a *API) handleDeletePartition(w http.ResponseWriter, r *http.Request) {
	if !a.Partitions.Delete(r.PathValue("id")) {
		writeError(w, errors.New("partition is not hosted").
			WithType(ErrTypePartitionNotFound).
			WithTag("partition_id", r.PathValue("id")))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type insertPointRequest struct {
	Position []float64 `json:"position"`
}

func (a *API) handleInsertPoint(w http.ResponseWriter, r *http.Request) {
	p, ok := a.Partitions.Get(r.PathValue("id"))
	if !ok {
		writeError(w, errors.New("partition is not hosted").
			WithType(ErrTypePartitionNotFound).
			WithTag("partition_id", r.PathValue("id")))
		return
	}

	var req insertPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New("decoding insert point request failed").
			WithType(ErrTypeBadRequest).
			Wrap(err))
		return
	}

	point := models.NewPoint(req.Position)
	if err := p.Insert(point); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, point)
}

func (a *API) handleLocate(w http.ResponseWriter, r *http.Request) {
	p, ok := a.Partitions.Get(r.PathValue("id"))
	if !ok {
		writeError(w, errors.New("partition is not hosted").
			WithType(ErrTypePartitionNotFound).
			WithTag("partition_id", r.PathValue("id")))
		return
	}

	position, err := parsePosition(r.URL.Query().Get("at"))
	if err != nil {
		writeError(w, err)
		return
	}

	region, err := p.Locate(position)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, region)
}

func (a *API) handleAdjacent(w http.ResponseWriter, r *http.Request) {
	p, ok := a.Partitions.Get(r.PathValue("id"))
	if !ok {
		writeError(w, errors.New("partition is not hosted").
			WithType(ErrTypePartitionNotFound).
			WithTag("partition_id", r.PathValue("id")))
		return
	}
	writeJSON(w, http.StatusOK, p.Adjacent())
}

// parsePosition parses a comma separated coordinate list such as
// "0.5,-1,0.25".
func parsePosition(s string) ([]float64, error) {
	if s == "" {
		return nil, errors.New("missing position").
			WithType(ErrTypeBadRequest)
	}

	parts := strings.Split(s, ",")
	position := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.New("parsing position failed").
				WithType(ErrTypeBadRequest).
				WithTag("position", s).
				Wrap(err)
		}
		position[i] = v
	}
	return position, nil
}

type errorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch errors.Type(err) {
	case ErrTypeBadRequest, tpntree.ErrTypeDimensionMismatch:
		status = http.StatusBadRequest
	case ErrTypePartitionNotFound:
		status = http.StatusNotFound
	case tpntree.ErrTypeDoesNotSpan:
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		logs.Error(err)
	}

	writeJSON(w, status, errorResponse{
		Error: err.Error(),
		Type:  errors.Type(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logs.Warn(errors.New("encoding response failed").Wrap(err))
	}
}
