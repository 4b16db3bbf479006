package dto

import (
	"orchid/internal/domains/billing/model"
	"orchid/shared/constant"
	"orchid/shared/timezone"
)

// GenerateBillRequest carries the billing form fields. RoomPrice and Services
// default to zero when omitted; negative values pass through unchecked,
// matching the legacy form behavior.
type GenerateBillRequest struct {
	GuestName string  `json:"guest_name" validate:"required,max=100"`
	RoomNo    string  `json:"room_no"    validate:"required,max=10"`
	Nights    int     `json:"nights"     validate:"required,gte=1"`
	RoomPrice float64 `json:"room_price" validate:"omitempty"`
	Services  float64 `json:"services"   validate:"omitempty"`
}

func (g *GenerateBillRequest) ToModel() model.Bill {
	roomCharge := float64(g.Nights) * g.RoomPrice

	return model.Bill{
		GuestName:  g.GuestName,
		RoomNo:     g.RoomNo,
		Nights:     g.Nights,
		RoomCharge: roomCharge,
		Services:   g.Services,
		Total:      roomCharge + g.Services,
		Date:       timezone.Now(),
	}
}

type BillResponse struct {
	ID         int64   `json:"id"`
	GuestName  string  `json:"guest_name"`
	RoomNo     string  `json:"room_no"`
	Nights     int     `json:"nights"`
	RoomCharge float64 `json:"room_charge"`
	Services   float64 `json:"services"`
	Total      float64 `json:"total"`
	Date       string  `json:"date"`
}

func (b *BillResponse) FromModel(model model.Bill) {
	b.ID = model.ID
	b.GuestName = model.GuestName
	b.RoomNo = model.RoomNo
	b.Nights = model.Nights
	b.RoomCharge = model.RoomCharge
	b.Services = model.Services
	b.Total = model.Total
	b.Date = timezone.Format(model.Date, constant.BillDateFormat)
}

type GetBillsResponse struct {
	Bills     []BillResponse `json:"bills"`
	TotalData int            `json:"total_data"`
}

func (r *GetBillsResponse) FromModels(models []model.Bill) {
	r.TotalData = len(models)

	r.Bills = make([]BillResponse, len(models))
	for i, mod := range models {
		r.Bills[i].FromModel(mod)
	}
}
