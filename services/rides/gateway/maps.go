package gateway

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// ReverseGeocode resolves a location to a display address. Calls are
// bounded by the routing timeout and retried once on failure.
func (g *RideGW) ReverseGeocode(ctx context.Context, location models.Location) (string, error) {
	var address string
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, g.cfg.Routing.Timeout())
		defer cancel()

		results, err := g.mapsClient.ReverseGeocode(callCtx, &maps.GeocodingRequest{
			LatLng: &maps.LatLng{Lat: location.Latitude, Lng: location.Longitude},
		})
		if err != nil {
			return fmt.Errorf("geocoding api error: %w", err)
		}
		if len(results) == 0 {
			return fmt.Errorf("no address found for %f,%f", location.Latitude, location.Longitude)
		}
		address = results[0].FormattedAddress
		return nil
	})
	if err != nil {
		return "", err
	}
	return address, nil
}

// RecomputeRoute routes through the given stops in order and returns the
// combined driving leg. Calls are bounded by the routing timeout and
// retried once on failure.
func (g *RideGW) RecomputeRoute(ctx context.Context, stops []models.Stop) (*models.RouteLeg, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("route needs at least two stops, got %d", len(stops))
	}

	origin := latLng(stops[0].Location)
	destination := latLng(stops[len(stops)-1].Location)
	waypoints := make([]string, 0, len(stops)-2)
	for _, s := range stops[1 : len(stops)-1] {
		waypoints = append(waypoints, latLng(s.Location))
	}

	var leg models.RouteLeg
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, g.cfg.Routing.Timeout())
		defer cancel()

		routes, _, err := g.mapsClient.Directions(callCtx, &maps.DirectionsRequest{
			Origin:      origin,
			Destination: destination,
			Waypoints:   waypoints,
			Mode:        maps.TravelModeDriving,
			Region:      g.cfg.Routing.Region,
		})
		if err != nil {
			return fmt.Errorf("directions api error: %w", err)
		}
		if len(routes) == 0 || len(routes[0].Legs) == 0 {
			return fmt.Errorf("no route found")
		}

		leg = models.RouteLeg{Geometry: routes[0].OverviewPolyline.Points}
		for _, l := range routes[0].Legs {
			leg.DistanceMeters += l.Distance.Meters
			leg.DurationSeconds += int(l.Duration.Seconds())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &leg, nil
}

func latLng(l models.Location) string {
	return fmt.Sprintf("%f,%f", l.Latitude, l.Longitude)
}
