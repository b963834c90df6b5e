package generator

import (
	"sort"
	"time"

	"streaming-service.backend/internal/domain/entities"
)

var viewingWindowStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type userDevices struct {
	active []entities.Device
	all    []entities.Device
}

// ViewingHistory generates viewing sessions for users that own at least one device
// and registered before today. Records reference the user's own devices and are
// sorted by start time.
func (g *Generator) ViewingHistory(users []entities.User, movies []entities.Movie, devices []entities.Device) []entities.ViewingRecord {
	if len(movies) == 0 {
		return nil
	}

	byUser := make(map[int64]*userDevices)
	for _, d := range devices {
		ud, ok := byUser[d.UserID]
		if !ok {
			ud = &userDevices{}
			byUser[d.UserID] = ud
		}
		ud.all = append(ud.all, d)
		if d.IsActive {
			ud.active = append(ud.active, d)
		}
	}

	var history []entities.ViewingRecord
	for _, u := range users {
		ud, ok := byUser[u.ID]
		if !ok || len(ud.all) == 0 {
			continue
		}
		days := daysBetween(u.RegistrationDate, g.now)
		if days <= 0 {
			continue
		}

		views := g.viewCount()
		if views > 2*days {
			views = 2 * days
		}
		for i := 0; i < views; i++ {
			history = append(history, g.view(u, ud, pick(g, movies)))
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].StartTime.Before(history[j].StartTime)
	})
	return history
}

// viewCount draws the activity tier (low/medium/high) and its view count
func (g *Generator) viewCount() int {
	switch g.weighted(0.3, 0.5, 0.2) {
	case 0:
		return g.between(5, 15)
	case 1:
		return g.between(15, 40)
	default:
		return g.between(40, 80)
	}
}

func (g *Generator) view(u entities.User, ud *userDevices, movie entities.Movie) entities.ViewingRecord {
	var device entities.Device
	if g.chance(0.8) && len(ud.active) > 0 {
		device = pick(g, ud.active)
	} else {
		device = pick(g, ud.all)
	}

	start := viewingWindowStart.
		AddDate(0, 0, g.between(0, 364)).
		Add(time.Duration(g.between(0, 23)) * time.Hour).
		Add(time.Duration(g.between(0, 59)) * time.Minute)

	pct := g.viewedPercentage()
	duration := movie.Duration()

	var end time.Time
	switch pct {
	case 100:
		end = start.Add(time.Duration(duration) * time.Minute)
	case 0:
		end = start.Add(time.Duration(g.between(1, 5)) * time.Minute)
	default:
		end = start.Add(time.Duration(pct*duration/100) * time.Minute)
	}
	if end.After(g.now) {
		end = g.now.Add(-time.Hour)
	}
	if !end.After(start) {
		end = start.Add(time.Minute)
	}

	return entities.ViewingRecord{
		UserID:           u.ID,
		MovieID:          movie.ID,
		DeviceID:         device.ID,
		StartTime:        start,
		EndTime:          end,
		ViewedPercentage: pct,
	}
}

// viewedPercentage draws complete (0.4), almost complete (0.2), partial (0.15) or abandoned (0.25)
func (g *Generator) viewedPercentage() int {
	switch g.weighted(0.4, 0.2, 0.15, 0.25) {
	case 0:
		return 100
	case 1:
		return g.between(80, 99)
	case 2:
		return g.between(40, 79)
	default:
		return g.between(0, 39)
	}
}
