package http

import (
	"snowboarding-assistant/internal/agent"
	"snowboarding-assistant/internal/agent/orchestrator"
	"snowboarding-assistant/internal/chat"
	"snowboarding-assistant/internal/model"
)

// --- Request DTOs ---

type sendReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

func (r sendReq) toInput() chat.SendInput {
	return chat.SendInput{SessionID: r.SessionID, Message: r.Message}
}

type locationReq struct {
	SessionID string   `json:"-"`
	Lat       *float64 `json:"lat" binding:"required"`
	Lon       *float64 `json:"lon" binding:"required"`
	Address   string   `json:"address"`
}

func (r locationReq) toInput() chat.GrantLocationInput {
	return chat.GrantLocationInput{SessionID: r.SessionID, Lat: *r.Lat, Lon: *r.Lon, Address: r.Address}
}

// --- Response DTOs ---

type sendResp struct {
	SessionID         string               `json:"session_id"`
	Reply             string               `json:"reply"`
	Decision          agent.Decision       `json:"decision"`
	SearchUsed        bool                 `json:"search_used"`
	SearchUnavailable bool                 `json:"search_unavailable"`
	LocationUsed      bool                 `json:"location_used"`
	Links             []string             `json:"links"`
	Trace             []orchestrator.State `json:"trace"`
}

func (h *handler) newSendResp(out chat.SendOutput) sendResp {
	links := out.Links
	if links == nil {
		links = []string{}
	}
	return sendResp{
		SessionID:         out.SessionID,
		Reply:             out.Reply,
		Decision:          out.Decision,
		SearchUsed:        out.SearchUsed,
		SearchUnavailable: out.SearchUnavailable,
		LocationUsed:      out.LocationUsed,
		Links:             links,
		Trace:             out.Trace,
	}
}

type locationResp struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Address string  `json:"address"`
}

func newLocationResp(loc *model.Location) *locationResp {
	if loc == nil {
		return nil
	}
	return &locationResp{Lat: loc.Lat, Lon: loc.Lon, Address: loc.DisplayAddress()}
}

type sessionResp struct {
	SessionID string        `json:"session_id"`
	History   []model.Turn  `json:"history"`
	Location  *locationResp `json:"location"`
}

func (h *handler) newSessionResp(out chat.HistoryOutput) sessionResp {
	history := out.History
	if history == nil {
		history = []model.Turn{}
	}
	return sessionResp{SessionID: out.SessionID, History: history, Location: newLocationResp(out.Location)}
}

type locationStateResp struct {
	SessionID string        `json:"session_id"`
	Granted   bool          `json:"granted"`
	Location  *locationResp `json:"location"`
}

func (h *handler) newLocationStateResp(out chat.LocationOutput) locationStateResp {
	return locationStateResp{
		SessionID: out.SessionID,
		Granted:   out.Location != nil,
		Location:  newLocationResp(out.Location),
	}
}
