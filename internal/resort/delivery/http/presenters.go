package http

import (
	"math"

	"snowboarding-assistant/internal/resort"
)

type listReq struct {
	Query string `form:"q"`
}

type nearestReq struct {
	Lat   *float64 `form:"lat" binding:"required"`
	Lon   *float64 `form:"lon" binding:"required"`
	Query string   `form:"q"`
	Limit int      `form:"limit"`
}

func (r nearestReq) toInput() resort.NearestInput {
	return resort.NearestInput{Lat: *r.Lat, Lon: *r.Lon, Filter: r.Query, Limit: r.Limit}
}

type resortResp struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Region  string  `json:"region,omitempty"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country,omitempty"`
}

func newResortResp(r resort.Resort) resortResp {
	return resortResp{
		ID:      r.ID,
		Name:    r.Name,
		Lat:     r.Latitude,
		Lon:     r.Longitude,
		Region:  r.Region,
		State:   r.State,
		Country: r.Country,
	}
}

type listResp struct {
	Resorts []resortResp `json:"resorts"`
	Total   int          `json:"total"`
}

func (h *handler) newListResp(resorts []resort.Resort) listResp {
	items := make([]resortResp, len(resorts))
	for i, r := range resorts {
		items[i] = newResortResp(r)
	}
	return listResp{Resorts: items, Total: len(items)}
}

type distanceResp struct {
	resortResp
	Miles float64 `json:"miles"`
}

type nearestResp struct {
	Resorts []distanceResp `json:"resorts"`
}

func (h *handler) newNearestResp(out resort.NearestOutput) nearestResp {
	items := make([]distanceResp, len(out.Resorts))
	for i, d := range out.Resorts {
		items[i] = distanceResp{
			resortResp: newResortResp(d.Resort),
			Miles:      math.Round(d.Miles*10) / 10,
		}
	}
	return nearestResp{Resorts: items}
}
