package activity

import (
	"context"
	"time"

	locationstore "github.com/towdeskhq/towdesk/internal/app/store/locations"
	tripstore "github.com/towdeskhq/towdesk/internal/app/store/trips"
	"github.com/towdeskhq/towdesk/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

// Snapshot is the payload pushed to live-activity pages over the feed and
// used to render the initial page load.
type Snapshot struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Drivers     []driverPoint   `json:"drivers"`
	ActiveTrips []activeTripRow `json:"active_trips"`
}

type driverPoint struct {
	DriverID string  `json:"driver_id"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Heading  float64 `json:"heading"`
	OnTrip   bool    `json:"on_trip"`
}

type activeTripRow struct {
	ID         string  `json:"id"`
	TripNumber string  `json:"trip_number"`
	Status     string  `json:"status"`
	Pickup     string  `json:"pickup"`
	Dropoff    string  `json:"dropoff,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
}

// SnapshotProvider builds activity snapshots for the feed hub.
type SnapshotProvider struct {
	Locations *locationstore.Store
	Trips     *tripstore.Store
}

func NewSnapshotProvider(db *mongo.Database) *SnapshotProvider {
	return &SnapshotProvider{
		Locations: locationstore.New(db),
		Trips:     tripstore.New(db),
	}
}

// Snapshot gathers fresh driver positions and in-flight trips. It satisfies
// livefeed.Snapshotter.
func (p *SnapshotProvider) Snapshot(ctx context.Context) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	locs, err := p.Locations.Active(ctx)
	if err != nil {
		return nil, err
	}
	trips, err := p.Trips.Active(ctx)
	if err != nil {
		return nil, err
	}

	snap := Snapshot{GeneratedAt: time.Now().UTC()}
	for _, l := range locs {
		snap.Drivers = append(snap.Drivers, driverPoint{
			DriverID: l.DriverID.Hex(),
			Lat:      l.Lat,
			Lng:      l.Lng,
			Heading:  l.Heading,
			OnTrip:   l.OnTrip,
		})
	}
	for _, t := range trips {
		snap.ActiveTrips = append(snap.ActiveTrips, activeTripRow{
			ID:         t.ID.Hex(),
			TripNumber: t.TripNumber,
			Status:     t.Status,
			Pickup:     t.PickupAddress,
			Dropoff:    t.DropoffAddress,
			Amount:     t.Amount,
		})
	}
	return snap, nil
}
