package status

import (
	"errors"
	"lucky_dice/internal/converter"
	"lucky_dice/internal/repository"
	"lucky_dice/internal/service"
	"lucky_dice/pkg/resp"
	"net/http"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv   service.StatusService
	Logger *zap.Logger
}

type Handler struct {
	serv service.StatusService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, log: log}
}

func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	session, err := h.serv.Session(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*session))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.serv.Rounds(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(rounds))
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrNoSession) || errors.Is(err, repository.ErrSessionNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.log.Error("status request failed", zap.Error(err))
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
