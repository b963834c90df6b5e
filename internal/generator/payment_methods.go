package generator

import (
	"strconv"
	"time"

	"github.com/volatiletech/null/v8"
	"streaming-service.backend/internal/domain/entities"
)

// PaymentMethods generates payment methods for every user.
// perUser fixes the count per user; 0 draws 1, 2 or 3 with weights 0.3/0.5/0.2.
// Exactly one method per user is the default.
func (g *Generator) PaymentMethods(users []entities.User, perUser int) []entities.PaymentMethod {
	var methods []entities.PaymentMethod
	for _, u := range users {
		count := perUser
		if count <= 0 {
			count = 1 + g.weighted(0.3, 0.5, 0.2)
		}

		defaultSet := false
		for i := 0; i < count; i++ {
			m := entities.PaymentMethod{
				UserID:     u.ID,
				MethodType: pick(g, entities.PaymentMethodTypes),
			}
			if m.MethodType.IsCard() {
				m.CardLastDigits = null.StringFrom(strconv.Itoa(g.between(1000, 9999)))
				m.ExpiryDate = null.TimeFrom(g.today().AddDate(0, 0, 365*g.between(1, 5)))
			}

			if !defaultSet && (i == 0 || g.chance(0.3)) {
				m.IsDefault = true
				defaultSet = true
			}
			m.AddedDate = g.addedDate(u.RegistrationDate)
			methods = append(methods, m)
		}
	}
	return methods
}

func (g *Generator) addedDate(registered time.Time) time.Time {
	days := daysBetween(registered, g.now)
	if days <= 0 {
		return dateOf(registered)
	}
	return dateOf(registered).AddDate(0, 0, g.between(0, days))
}
