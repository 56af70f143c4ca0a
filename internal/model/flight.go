package model

import "time"

// FullyBookedFlightNumber is a legacy sentinel: flights carrying this literal
// flight number are reported as fully booked regardless of seat counts.
const FullyBookedFlightNumber = "FULLY BOOKED"

type ClassType string

const (
	ClassEconomy  ClassType = "economy"
	ClassBusiness ClassType = "business"
	ClassFirst    ClassType = "first"
)

func (c ClassType) IsValid() bool {
	switch c {
	case ClassEconomy, ClassBusiness, ClassFirst:
		return true
	}
	return false
}

type Flight struct {
	ID           int           `json:"id" db:"id"`
	FlightNumber string        `json:"flight_number" db:"flight_number"`
	AirlineID    int           `json:"airline_id" db:"airline_id"`
	AirlineName  string        `json:"airline_name" db:"airline_name"`
	AirlineLogo  string        `json:"airline_logo" db:"airline_logo"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
	Segments     []Segment     `json:"segments" db:"-"`
	Classes      []FlightClass `json:"classes" db:"-"`
}

// Segment is one ordered leg of a flight. Sequence is 1-based and strictly
// increasing within a flight; a flight has at least two segments.
type Segment struct {
	ID        int       `json:"id" db:"id"`
	FlightID  int       `json:"flight_id" db:"flight_id"`
	Sequence  int       `json:"sequence" db:"sequence"`
	AirportID int       `json:"airport_id" db:"airport_id"`
	Time      time.Time `json:"time" db:"time"`
}

type FlightClass struct {
	ID         int       `json:"id" db:"id"`
	FlightID   int       `json:"flight_id" db:"flight_id"`
	ClassType  ClassType `json:"class_type" db:"class_type"`
	Price      float64   `json:"price" db:"price"`
	TotalSeats int       `json:"total_seats" db:"total_seats"`
	Facilities []Facility `json:"facilities" db:"-"`
}

type Facility struct {
	ID    int    `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Image string `json:"image" db:"image"`
}

// ClassAvailability is a FlightClass annotated with live seat counts for
// search results.
type ClassAvailability struct {
	FlightClass
	AvailableSeats int  `json:"available_seats"`
	FullyBooked    bool `json:"fully_booked"`
}

// SearchResult is one matching flight with the sub-route that satisfied the
// query and per-class availability.
type SearchResult struct {
	Flight           Flight              `json:"flight"`
	DepartureSegment Segment             `json:"departure_segment"`
	ArrivalSegment   Segment             `json:"arrival_segment"`
	Classes          []ClassAvailability `json:"classes"`
}

type SearchRequest struct {
	DepartureAirportID int    `json:"departure_airport_id" binding:"required"`
	ArrivalAirportID   int    `json:"arrival_airport_id" binding:"required"`
	DepartureDate      string `json:"departure_date" binding:"required"`
}
