// FILE: internal/dto/report_dto.go
package dto

import "github.com/google/uuid"

// PublishMonthlyReportMessage is the payload placed on the report topic by
// the monthly sweep. The consumer loads the data and sends the email.
type PublishMonthlyReportMessage struct {
	CustomerId uuid.UUID `json:"customer_id"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
}
