package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/ftr-labs/fliphq/internal/models"
)

// DefaultScanRadiusKM matches the 12-mile search radius the mobile client uses
const DefaultScanRadiusKM = 19.312

// spotRecord is the on-disk shape of a directory entry
type spotRecord struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	Tags    []string `json:"tags"`
}

// SpotDirectory serves secondhand-source locations (thrift stores, flea
// markets, estate sales and the like) from a local JSON dataset. It is the
// production SpotProvider behind the scan flow.
type SpotDirectory struct {
	mu       sync.RWMutex
	spots    []spotRecord
	radiusKM float64
}

// NewSpotDirectory loads the spot dataset from dataDir/spots.json. A missing
// file is tolerated (scans will come back empty and refund); malformed data
// is not.
func NewSpotDirectory(dataDir string) (*SpotDirectory, error) {
	d := &SpotDirectory{radiusKM: DefaultScanRadiusKM}

	path := filepath.Join(dataDir, "spots.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("Spot directory: no dataset at %s, serving empty results", path)
		return d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read spot dataset: %w", err)
	}

	if err := json.Unmarshal(data, &d.spots); err != nil {
		return nil, fmt.Errorf("failed to parse spot dataset %s: %w", path, err)
	}

	log.Printf("Spot directory: loaded %d spots from %s", len(d.spots), path)
	return d, nil
}

// Search returns all spots within the scan radius of the given position,
// nearest first
func (d *SpotDirectory) Search(ctx context.Context, lat, lng float64) ([]models.Spot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	var results []models.Spot
	for _, rec := range d.spots {
		dist := haversineKM(lat, lng, rec.Lat, rec.Lng)
		if dist > d.radiusKM {
			continue
		}
		results = append(results, models.Spot{
			ID:       rec.ID,
			Name:     rec.Name,
			Address:  rec.Address,
			Lat:      rec.Lat,
			Lng:      rec.Lng,
			Distance: dist,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	return results, nil
}

// Count returns the number of spots in the dataset
func (d *SpotDirectory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.spots)
}

// haversineKM returns the great-circle distance between two points in km
func haversineKM(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKM = 6371

	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
