package handlers

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"
)

// EventRoutes is the subject routing table handed to EventBus.SubscribeAll.
// Vault mutations published by any instance re-run this instance's live
// listing so every consumer sees the same window.
func (h *Handler) EventRoutes() map[string]nats.MsgHandler {
	return map[string]nats.MsgHandler{
		"vault.uploaded": h.onVaultChanged,
		"vault.deleted":  h.onVaultChanged,
		"vault.infected": h.onFileInfected,
	}
}

func (h *Handler) onVaultChanged(msg *nats.Msg) {
	h.refreshListing()
	if err := msg.Ack(); err != nil {
		log.Printf("[NATS] ack failed subject=%s err=%v", msg.Subject, err)
	}
}

func (h *Handler) onFileInfected(msg *nats.Msg) {
	var payload struct {
		FileID    string `json:"file_id"`
		Path      string `json:"path"`
		Signature string `json:"signature"`
	}
	if err := json.Unmarshal(msg.Data, &payload); err != nil {
		log.Printf("[NATS] bad vault.infected payload: %v", err)
		msg.Nak()
		return
	}

	log.Printf("[NATS] infected file removed path=%s signature=%s", payload.Path, payload.Signature)
	h.refreshListing()
	if err := msg.Ack(); err != nil {
		log.Printf("[NATS] ack failed subject=%s err=%v", msg.Subject, err)
	}
}
