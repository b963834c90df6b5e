package generator

import (
	"fmt"
	"time"

	"github.com/volatiletech/null/v8"
	"streaming-service.backend/internal/domain/entities"
)

// Devices generates devices for every user with provisional IDs sequential across the run.
// perUser fixes the count per user; 0 draws 1..4 with weights 0.1/0.4/0.4/0.1.
func (g *Generator) Devices(users []entities.User, perUser int) []entities.Device {
	var devices []entities.Device
	nextID := int64(1)
	for _, u := range users {
		count := perUser
		if count <= 0 {
			count = 1 + g.weighted(0.1, 0.4, 0.4, 0.1)
		}

		used := make(map[entities.DeviceType]bool, len(entities.DeviceTypes))
		for i := 0; i < count; i++ {
			deviceType := g.deviceType(used)
			used[deviceType] = true

			d := entities.Device{
				ID:         nextID,
				UserID:     u.ID,
				DeviceType: deviceType,
				DeviceName: pick(g, deviceNames[deviceType]),
				AppVersion: fmt.Sprintf("%d.%d.%d", g.between(1, 10), g.between(1, 10), g.between(1, 10)),
				IsActive:   g.chance(0.85),
			}
			d.LastLoginDate = g.lastLogin(u.RegistrationDate, d.IsActive)
			devices = append(devices, d)
			nextID++
		}
	}
	return devices
}

// deviceType draws a type not used yet by this user, or any type once all are used
func (g *Generator) deviceType(used map[entities.DeviceType]bool) entities.DeviceType {
	var available []entities.DeviceType
	for _, t := range entities.DeviceTypes {
		if !used[t] {
			available = append(available, t)
		}
	}
	if len(available) == 0 {
		available = entities.DeviceTypes
	}
	return pick(g, available)
}

func (g *Generator) lastLogin(registered time.Time, active bool) null.Time {
	days := daysBetween(registered, g.now)
	if days < 0 {
		days = 0
	}
	today := g.today()

	if active {
		return null.TimeFrom(today.AddDate(0, 0, -g.between(0, min(30, days))))
	}
	if g.chance(0.3) {
		return null.Time{}
	}
	lo, hi := min(31, days), min(365, days)
	if lo <= hi {
		return null.TimeFrom(today.AddDate(0, 0, -g.between(lo, hi)))
	}
	return null.TimeFrom(today.AddDate(0, 0, -g.between(0, days)))
}
