/**
* Name: 			emergency.go
* Description: 		Emergency contacts, active legal alerts and the location desk
* Workflow: 		NewDesk (Dubai) -> Locate (simulated detection) -> location updated
 */

package emergency

import (
	"context"
	"slices"
	"sync"
	"time"

	"LawHub_LegalAssistant/internal/flight"

	"go.uber.org/zap"
)

const (
	InitialLocation  = "Dubai, UAE"
	DetectedLocation = "Abu Dhabi, UAE"
)

type Contact struct {
	Type         string `json:"type"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Availability string `json:"availability"`
}

type AlertType string

const (
	AlertWarning  AlertType = "warning"
	AlertInfo     AlertType = "info"
	AlertCritical AlertType = "critical"
)

type Alert struct {
	ID          int       `json:"id"`
	Type        AlertType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
}

var contacts = []Contact{
	{
		Type:         "Embassy",
		Name:         "US Consulate General Dubai",
		Phone:        "+971-4-309-4000",
		Address:      "World Trade Centre, Dubai",
		Availability: "24/7 Emergency Line",
	},
	{
		Type:         "Police",
		Name:         "Dubai Police Emergency",
		Phone:        "999",
		Address:      "Multiple Locations",
		Availability: "24/7",
	},
	{
		Type:         "Legal Aid",
		Name:         "Dubai Legal Affairs Department",
		Phone:        "+971-4-606-6666",
		Address:      "Government of Dubai Legal Affairs",
		Availability: "Sun-Thu: 7:30 AM - 2:30 PM",
	},
}

var alerts = []Alert{
	{
		ID:          1,
		Type:        AlertWarning,
		Title:       "Ramadan Regulations in Effect",
		Description: "Special regulations regarding public eating and drinking during daylight hours",
		Location:    "UAE",
		Date:        "2024-03-10",
	},
	{
		ID:          2,
		Type:        AlertInfo,
		Title:       "New Traffic Fines Implementation",
		Description: "Updated penalty structure for traffic violations effective immediately",
		Location:    "Dubai",
		Date:        "2024-03-08",
	},
}

func Contacts() []Contact { return slices.Clone(contacts) }

func Alerts() []Alert { return slices.Clone(alerts) }

// Desk tracks the caller's location for the emergency page.
type Desk struct {
	mu       sync.Mutex
	location string

	gate  *flight.Gate
	delay time.Duration
	log   *zap.Logger
}

type DeskState struct {
	Location string `json:"location"`
	Locating bool   `json:"locating"`
}

func NewDesk(delay time.Duration, log *zap.Logger) *Desk {
	return &Desk{
		location: InitialLocation,
		gate:     flight.NewGate(),
		delay:    delay,
		log:      log,
	}
}

// Locate simulates location detection and returns the new location.
func (d *Desk) Locate(ctx context.Context) (string, error) {
	err := d.gate.Do(func() error {
		if err := flight.Wait(ctx, d.delay); err != nil {
			d.log.Debug("Location detection abandoned", zap.Error(err))
			return err
		}
		d.mu.Lock()
		d.location = DetectedLocation
		d.mu.Unlock()
		return nil
	})
	if err != nil {
		return "", err
	}
	return DetectedLocation, nil
}

func (d *Desk) State() DeskState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DeskState{Location: d.location, Locating: d.gate.Busy()}
}
