package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"flight-booking/internal/cache"
	"flight-booking/internal/model"
	"flight-booking/internal/repository"
	apperrors "flight-booking/pkg/app_errors"
)

const searchDateLayout = "2006-01-02"

type AssetCategory string

const (
	AssetAirlineLogo   AssetCategory = "airlines-logos"
	AssetFacilityImage AssetCategory = "facilities-images"
)

// FlightService is the route search engine: read-only, safe to call from any
// number of goroutines.
type FlightService interface {
	Search(ctx context.Context, req model.SearchRequest) ([]model.SearchResult, error)
	GetByID(ctx context.Context, id int) (*model.Flight, error)
}

type FlightServiceImpl struct {
	repo     repository.FlightRepository
	seatRepo repository.SeatRepository
	cache    cache.SearchCache
}

// NewFlightService builds the search engine. cache may be nil, in which case
// every search hits Postgres.
func NewFlightService(repo repository.FlightRepository, seatRepo repository.SeatRepository, searchCache cache.SearchCache) FlightService {
	return &FlightServiceImpl{repo: repo, seatRepo: seatRepo, cache: searchCache}
}

func (s *FlightServiceImpl) GetByID(ctx context.Context, id int) (*model.Flight, error) {
	return s.repo.FindByID(ctx, id)
}

// Search finds flights whose ordered segments contain a departure at the given
// airport on the given day followed by an arrival at the target airport.
func (s *FlightServiceImpl) Search(ctx context.Context, req model.SearchRequest) ([]model.SearchResult, error) {
	day, err := time.Parse(searchDateLayout, req.DepartureDate)
	if err != nil {
		return nil, apperrors.NewValidationError("departure_date", "must be formatted YYYY-MM-DD")
	}
	if req.DepartureAirportID == req.ArrivalAirportID {
		return nil, apperrors.NewValidationError("arrival_airport_id", "must differ from departure airport")
	}

	if s.cache != nil {
		if cached, err := s.cache.GetResults(ctx, req.DepartureAirportID, req.ArrivalAirportID, day); err == nil && cached != nil {
			return cached, nil
		}
	}

	candidates, err := s.repo.ListCandidates(ctx, req.DepartureAirportID, day)
	if err != nil {
		return nil, err
	}

	results := make([]model.SearchResult, 0)
	for _, flight := range candidates {
		depSeg, arrSeg, ok := matchRoute(flight.Segments, req.DepartureAirportID, req.ArrivalAirportID, day)
		if !ok {
			continue
		}

		classes, err := s.classAvailability(ctx, flight)
		if err != nil {
			return nil, err
		}

		canonicalizeAssets(flight, classes)
		results = append(results, model.SearchResult{
			Flight:           *flight,
			DepartureSegment: depSeg,
			ArrivalSegment:   arrSeg,
			Classes:          classes,
		})
	}

	if s.cache != nil {
		_ = s.cache.SetResults(ctx, req.DepartureAirportID, req.ArrivalAirportID, day, results)
	}
	return results, nil
}

// matchRoute checks one flight for a valid sub-route. Segments are ordered by
// sequence; a match needs a departure segment at depAirport on day and an
// arrival segment at arrAirport with a strictly greater sequence. When several
// pairs qualify the earliest departure segment wins, then the earliest arrival
// after it, so results are deterministic.
func matchRoute(segments []model.Segment, depAirport, arrAirport int, day time.Time) (model.Segment, model.Segment, bool) {
	ordered := make([]model.Segment, len(segments))
	copy(ordered, segments)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Sequence < ordered[j].Sequence })

	for _, dep := range ordered {
		if dep.AirportID != depAirport || !sameDay(dep.Time, day) {
			continue
		}
		for _, arr := range ordered {
			if arr.AirportID == arrAirport && arr.Sequence > dep.Sequence {
				return dep, arr, true
			}
		}
	}
	return model.Segment{}, model.Segment{}, false
}

// sameDay compares at day granularity; time of day is ignored.
func sameDay(t, day time.Time) bool {
	return t.Format(searchDateLayout) == day.Format(searchDateLayout)
}

func (s *FlightServiceImpl) classAvailability(ctx context.Context, flight *model.Flight) ([]model.ClassAvailability, error) {
	classes := make([]model.ClassAvailability, 0, len(flight.Classes))
	for _, class := range flight.Classes {
		available, err := s.seatRepo.CountAvailableByClass(ctx, class.ID)
		if err != nil {
			return nil, err
		}
		classes = append(classes, model.ClassAvailability{
			FlightClass:    class,
			AvailableSeats: available,
			FullyBooked:    isFullyBooked(flight.FlightNumber, available),
		})
	}
	return classes, nil
}

// isFullyBooked keeps the legacy sentinel: a flight literally numbered
// "FULLY BOOKED" reads as sold out on every class.
func isFullyBooked(flightNumber string, availableSeats int) bool {
	return flightNumber == model.FullyBookedFlightNumber || availableSeats <= 0
}

func canonicalizeAssets(flight *model.Flight, classes []model.ClassAvailability) {
	flight.AirlineLogo = CanonicalAssetPath(flight.AirlineLogo, AssetAirlineLogo)
	for ci := range classes {
		for fi := range classes[ci].Facilities {
			classes[ci].Facilities[fi].Image = CanonicalAssetPath(classes[ci].Facilities[fi].Image, AssetFacilityImage)
		}
	}
}

// CanonicalAssetPath normalizes an image reference to the canonical relative
// form storage/<category-folder>/<file>. Absolute URLs pass through untouched;
// resolution against a base URL is the caller's concern.
func CanonicalAssetPath(path string, category AssetCategory) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	p := strings.TrimLeft(path, "/")
	folder := string(category)
	if strings.HasPrefix(p, "storage/"+folder+"/") {
		return p
	}
	if strings.HasPrefix(p, folder+"/") {
		return "storage/" + p
	}
	return "storage/" + folder + "/" + p
}

var _ FlightService = (*FlightServiceImpl)(nil)
