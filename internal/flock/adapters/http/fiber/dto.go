package fiber

import (
	"time"

	"kokko-factory-service/internal/flock/core/domain"
)

// EggRequest represents an egg collection payload
// @Description Egg collection DTO
type EggRequest struct {
	CoopNumber *int `json:"coop_number" example:"3"`
	Count      *int `json:"count" example:"120"`
}

// DeathRequest represents a mortality payload
// @Description Dead chicken DTO
type DeathRequest struct {
	CoopNumber   *int   `json:"coop_number" example:"3"`
	Count        *int   `json:"count" example:"1"`
	CauseOfDeath string `json:"cause_of_death" example:"heat stroke"`
}

type EggResponse struct {
	ID         string     `json:"id"`
	CoopNumber int        `json:"coop_number"`
	Count      int        `json:"count"`
	RecordedAt time.Time  `json:"recorded_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type DeathResponse struct {
	ID           string     `json:"id"`
	CoopNumber   int        `json:"coop_number"`
	Count        int        `json:"count"`
	CauseOfDeath string     `json:"cause_of_death"`
	RecordedAt   time.Time  `json:"recorded_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status" example:"updated"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_record"`
	Message string `json:"message" example:"coop_number must be at most 9"`
}

func toEggResponse(r domain.EggRecord) EggResponse {
	return EggResponse{
		ID:         r.ID,
		CoopNumber: r.CoopNumber,
		Count:      r.Count,
		RecordedAt: r.RecordedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toDeathResponse(r domain.DeathRecord) DeathResponse {
	return DeathResponse{
		ID:           r.ID,
		CoopNumber:   r.CoopNumber,
		Count:        r.Count,
		CauseOfDeath: r.CauseOfDeath,
		RecordedAt:   r.RecordedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
