package get_venue_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	venueAvailability "github.com/m04kA/SMC-CourtService/internal/usecase/venue_availability"
)

// SlotResponse HTTP модель одного слота площадки
type SlotResponse struct {
	ID        int64  `json:"id"`
	CourtID   int64  `json:"courtId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// HourBucketResponse HTTP модель часа сетки доступности
type HourBucketResponse struct {
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	AvailableCourtIDs []int64 `json:"availableCourtIds"`
	Satisfies         bool    `json:"satisfies"`
}

// VenueSlotsResponse HTTP response model
type VenueSlotsResponse struct {
	VenueID        int64                `json:"venueId"`
	Date           string               `json:"date"`
	RequiredCourts int                  `json:"requiredCourts"`
	CanSatisfy     bool                 `json:"canSatisfy"`
	Slots          []SlotResponse       `json:"slots"`
	HourBuckets    []HourBucketResponse `json:"hourBuckets"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(venueID int64, dateStr string, capacity int) (*venueAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &venueAvailability.Request{
		VenueID:  venueID,
		Date:     date,
		Capacity: capacity,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *venueAvailability.Response) *VenueSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for i := range resp.Slots {
		slot := &resp.Slots[i]
		slots = append(slots, SlotResponse{
			ID:        slot.ID,
			CourtID:   slot.CourtID,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Status:    string(slot.Status),
		})
	}

	buckets := make([]HourBucketResponse, 0, len(resp.HourBuckets))
	for _, b := range resp.HourBuckets {
		buckets = append(buckets, HourBucketResponse{
			StartTime:         b.StartTime.String(),
			EndTime:           b.EndTime.String(),
			AvailableCourtIDs: b.AvailableCourtIDs,
			Satisfies:         b.Satisfies,
		})
	}

	return &VenueSlotsResponse{
		VenueID:        resp.VenueID,
		Date:           resp.Date.Format(domain.DateFormat),
		RequiredCourts: resp.RequiredCourts,
		CanSatisfy:     resp.CanSatisfy,
		Slots:          slots,
		HourBuckets:    buckets,
	}
}
