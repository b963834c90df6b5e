package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/unidecode"
	"streaming-service.backend/internal/domain/entities"
	"streaming-service.backend/pkg/crypto"
)

const (
	passwordLength   = 12
	maxEmailAttempts = 1000
)

var registrationStart = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

type personName struct {
	first, last, patronymic string
}

func (n personName) full() string {
	return n.last + " " + n.first + " " + n.patronymic
}

// Users generates n users with provisional IDs 1..n.
// Every generated email is added to usedEmails, and no email already in it is reused.
func (g *Generator) Users(n int, usedEmails map[string]struct{}) []entities.User {
	if usedEmails == nil {
		usedEmails = make(map[string]struct{})
	}
	users := make([]entities.User, 0, n)
	for i := 0; i < n; i++ {
		name := g.personName()
		users = append(users, entities.User{
			ID:               int64(i + 1),
			Email:            g.uniqueEmail(name, usedEmails),
			PasswordHash:     crypto.HashPassword(crypto.RandomString(g.rnd, crypto.Alphanumeric, passwordLength)),
			FullName:         name.full(),
			RegistrationDate: g.registrationDate(),
			SubscriptionType: pick(g, entities.SubscriptionTypes),
		})
	}
	return users
}

func (g *Generator) personName() personName {
	if g.chance(0.5) {
		return personName{
			first:      pick(g, maleFirstNames),
			last:       pick(g, surnames),
			patronymic: pick(g, malePatronymics),
		}
	}
	return personName{
		first:      pick(g, femaleFirstNames),
		last:       feminineSurname(pick(g, surnames)),
		patronymic: pick(g, femalePatronymics),
	}
}

func feminineSurname(s string) string {
	if strings.HasSuffix(s, "ий") {
		return strings.TrimSuffix(s, "ий") + "ая"
	}
	return s + "а"
}

func (g *Generator) uniqueEmail(name personName, used map[string]struct{}) string {
	for attempt := 0; attempt < maxEmailAttempts; attempt++ {
		email := g.email(name)
		if _, ok := used[email]; !ok {
			used[email] = struct{}{}
			return email
		}
	}
	// pool exhausted for this name: fall back to a counter suffix
	first, last := latin(name.first, "user"), latin(name.last, "name")
	domain := pick(g, emailDomains)
	for i := 1; ; i++ {
		email := fmt.Sprintf("%s.%s%d@%s", first, last, i, domain)
		if _, ok := used[email]; !ok {
			used[email] = struct{}{}
			return email
		}
	}
}

func (g *Generator) email(name personName) string {
	first, last := latin(name.first, "user"), latin(name.last, "name")

	var local string
	switch g.rnd.Intn(5) {
	case 0:
		local = first + "." + last
	case 1:
		local = first[:1] + "." + last
	case 2:
		local = first + "_" + last
	case 3:
		local = fmt.Sprintf("%s%d", first, g.between(10, 99))
	default:
		local = fmt.Sprintf("%s%d", last, g.between(1970, 2005))
	}
	return local + "@" + pick(g, emailDomains)
}

// latin transliterates s and keeps ASCII lowercase letters only
func latin(s, fallback string) string {
	ascii := strings.ToLower(unidecode.Unidecode(s))
	var b strings.Builder
	for _, r := range ascii {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}

func (g *Generator) registrationDate() time.Time {
	span := daysBetween(registrationStart, g.now)
	if span < 0 {
		span = 0
	}
	return registrationStart.AddDate(0, 0, g.between(0, span))
}
