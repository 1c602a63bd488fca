package hellhub

import (
	"encoding/json"
	"time"
)

// Passive wire shapes for HellHub responses. The tool path relays raw
// JSON and never decodes into these; they exist for callers that do
// interpret the data, such as cmd/probe.

// Pagination describes list-response paging.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
	PageCount int `json:"pageCount"`
}

// APIResponse is the standard HellHub response wrapper.
type APIResponse struct {
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// WarInfo is the current galactic war record.
type WarInfo struct {
	ID        int       `json:"id"`
	Index     int       `json:"index"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Time      time.Time `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlanetInfo describes a single planet.
type PlanetInfo struct {
	Index    int                `json:"index"`
	Name     string             `json:"name"`
	Sector   string             `json:"sector"`
	Position map[string]float64 `json:"position"`
	Biome    map[string]any     `json:"biome,omitempty"`
	Hazards  []map[string]any   `json:"hazards,omitempty"`
	Status   map[string]any     `json:"status,omitempty"`
}

// Statistics holds global game statistics.
type Statistics struct {
	ID                 int       `json:"id"`
	MissionsWon        int       `json:"missionsWon"`
	MissionsLost       int       `json:"missionsLost"`
	MissionTime        int       `json:"missionTime"`
	BugKills           int       `json:"bugKills"`
	AutomatonKills     int       `json:"automatonKills"`
	IlluminateKills    int       `json:"illuminateKills"`
	BulletsFired       int       `json:"bulletsFired"`
	BulletsHit         int       `json:"bulletsHit"`
	TimePlayed         int       `json:"timePlayed"`
	Deaths             int       `json:"deaths"`
	Revives            int       `json:"revives"`
	FriendlyKills      int       `json:"friendlyKills"`
	MissionSuccessRate int       `json:"missionSuccessRate"`
	Accuracy           int       `json:"accuracy"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// CampaignInfo describes an active campaign. Unused by the current API
// variant, kept for the day the endpoint appears.
type CampaignInfo struct {
	ID        int       `json:"id"`
	Planet    int       `json:"planet"`
	Type      int       `json:"type"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// APIError is the error body HellHub returns on failed requests.
type APIError struct {
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
}
