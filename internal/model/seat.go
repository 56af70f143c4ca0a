package model

import (
	"fmt"
	"time"
)

// SeatColumns is the fixed 6-per-row cabin layout. Seats fill row-major:
// 1A..1F, 2A..2F, and so on.
var SeatColumns = []string{"A", "B", "C", "D", "E", "F"}

type Seat struct {
	ID            int        `json:"id" db:"id"`
	FlightClassID int        `json:"flight_class_id" db:"flight_class_id"`
	Row           int        `json:"row" db:"row"`
	Column        string     `json:"column" db:"column"`
	IsAvailable   bool       `json:"is_available" db:"is_available"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`

	// Derived by join; seats only store the class foreign key.
	FlightID  int       `json:"flight_id" db:"-"`
	ClassType ClassType `json:"class_type" db:"-"`
}

// SeatName renders the display label, e.g. "12A".
func (s *Seat) SeatName() string {
	return fmt.Sprintf("%d%s", s.Row, s.Column)
}

// SeatPosition is a row/column pair used when planning seat creation and
// removal without touching persisted rows.
type SeatPosition struct {
	Row    int
	Column string
}

func (p SeatPosition) Name() string {
	return fmt.Sprintf("%d%s", p.Row, p.Column)
}

type SeatResponse struct {
	ID          int    `json:"id"`
	FlightID    int    `json:"flight_id"`
	Row         int    `json:"row"`
	Column      string `json:"column"`
	SeatName    string `json:"seat_name"`
	ClassType   string `json:"class_type"`
	IsAvailable bool   `json:"is_available"`
}

func (s *Seat) ToResponse() SeatResponse {
	return SeatResponse{
		ID:          s.ID,
		FlightID:    s.FlightID,
		Row:         s.Row,
		Column:      s.Column,
		SeatName:    s.SeatName(),
		ClassType:   string(s.ClassType),
		IsAvailable: s.IsAvailable,
	}
}
