package response

import (
	"liquidation_backoffice/internal/domain/entities"
	"liquidation_backoffice/internal/domain/query"
	"liquidation_backoffice/internal/usecase"
)

// LiquidationResponse is a liquidation as shown to users. Dates are epoch
// milliseconds, null when unset.
type LiquidationResponse struct {
	ID            int64              `json:"id"`
	Code          string             `json:"code"`
	CustomerID    int64              `json:"customerId"`
	CustomerName  string             `json:"customerName"`
	TaxType       string             `json:"taxType"`
	Amount        string             `json:"amount"`
	IssueDate     entities.Timestamp `json:"issueDate" swaggertype:"integer"`
	DueDate       entities.Timestamp `json:"dueDate" swaggertype:"integer"`
	Status        string             `json:"status"`
	DisplayStatus string             `json:"displayStatus"`
	Overdue       bool               `json:"overdue"`
	CreatedAt     entities.Timestamp `json:"createdAt" swaggertype:"integer"`
}

type PenaltyResponse struct {
	LiquidationID int64  `json:"liquidationId"`
	Amount        string `json:"amount"`
	DailyRate     string `json:"dailyRate"`
	DaysLate      int64  `json:"daysLate"`
	Penalty       string `json:"penalty"`
	ReferenceDate int64  `json:"referenceDate"`
}

type PaymentReferenceResponse struct {
	Payload entities.PaymentReference `json:"payload"`
	Encoded string                    `json:"encoded"`
}

func FromLiquidationView(v entities.LiquidationView) LiquidationResponse {
	return LiquidationResponse{
		ID:            v.ID,
		Code:          v.Reference(),
		CustomerID:    v.CustomerID,
		CustomerName:  v.CustomerName,
		TaxType:       v.TaxType,
		Amount:        v.Amount.String(),
		IssueDate:     v.IssueDate,
		DueDate:       v.DueDate,
		Status:        string(v.Status),
		DisplayStatus: string(v.DisplayStatus),
		Overdue:       v.Overdue,
		CreatedAt:     v.CreatedAt,
	}
}

func FromLiquidationViews(views []entities.LiquidationView) []LiquidationResponse {
	out := make([]LiquidationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromLiquidationView(v))
	}
	return out
}

func FromLiquidationPage(p query.Page[entities.LiquidationView]) PageResponse[LiquidationResponse] {
	return PageResponse[LiquidationResponse]{Content: FromLiquidationViews(p.Content), TotalElements: p.TotalElements}
}

func FromPenalty(p entities.PenaltyResult) PenaltyResponse {
	return PenaltyResponse{
		LiquidationID: p.LiquidationID,
		Amount:        p.Amount.String(),
		DailyRate:     p.DailyRate.String(),
		DaysLate:      p.DaysLate,
		Penalty:       p.Penalty.String(),
		ReferenceDate: p.ReferenceDate.Millis(),
	}
}

func FromPaymentReference(r usecase.PaymentReferenceResult) PaymentReferenceResponse {
	return PaymentReferenceResponse{Payload: r.Payload, Encoded: r.Encoded}
}
