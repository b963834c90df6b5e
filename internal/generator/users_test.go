package generator

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"streaming-service.backend/internal/domain/entities"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._]+@(gmail\.com|mail\.ru|yandex\.ru|yahoo\.com|icloud\.com)$`)
	hexPattern   = regexp.MustCompile(`^[0-9a-f]{64}$`)
)

func TestUsers_Properties(t *testing.T) {
	g := newTestGenerator(t)
	used := make(map[string]struct{})
	users := g.Users(500, used)
	require.Len(t, users, 500)
	assert.Len(t, used, 500)

	emails := make(map[string]bool)
	today := dateOf(testNow)
	for i, u := range users {
		assert.Equal(t, int64(i+1), u.ID)
		assert.False(t, emails[u.Email], "duplicate email %s", u.Email)
		emails[u.Email] = true

		assert.Regexp(t, emailPattern, u.Email)
		assert.Regexp(t, hexPattern, u.PasswordHash)
		assert.Len(t, strings.Fields(u.FullName), 3)
		assert.True(t, u.SubscriptionType.Valid())
		assert.False(t, u.RegistrationDate.Before(registrationStart))
		assert.False(t, u.RegistrationDate.After(today))
	}
}

func TestUsers_SkipsUsedEmails(t *testing.T) {
	first := New(1, testNow).Users(50, nil)

	used := make(map[string]struct{})
	for _, u := range first {
		used[u.Email] = struct{}{}
	}
	second := New(1, testNow).Users(50, used)

	assert.Len(t, used, 100)
	for i := range second {
		assert.NotEqual(t, first[i].Email, second[i].Email)
	}
}

func TestUsers_Deterministic(t *testing.T) {
	a := New(99, testNow).Users(20, nil)
	b := New(99, testNow).Users(20, nil)
	assert.Equal(t, a, b)
}

func TestUniqueEmail_FallsBackToCounter(t *testing.T) {
	g := newTestGenerator(t)
	name := personName{first: "Иван", last: "Иванов", patronymic: "Иванович"}

	used := make(map[string]struct{})
	for i := 0; i < 300; i++ {
		g.uniqueEmail(name, used)
	}
	assert.Len(t, used, 300)
}

func TestLatin(t *testing.T) {
	assert.Equal(t, "ivanov", latin("Иванов", "name"))
	assert.Equal(t, "anna", latin("Анна", "user"))
	assert.Equal(t, "user", latin("", "user"))
	assert.Equal(t, "name", latin("123 !", "name"))
}

func TestFeminineSurname(t *testing.T) {
	assert.Equal(t, "Иванова", feminineSurname("Иванов"))
	assert.Equal(t, "Ильина", feminineSurname("Ильин"))
	assert.Equal(t, "Островская", feminineSurname("Островский"))
}

func TestPersonName_GenderConsistent(t *testing.T) {
	g := newTestGenerator(t)
	for i := 0; i < 200; i++ {
		n := g.personName()
		female := strings.HasSuffix(n.patronymic, "вна") || strings.HasSuffix(n.patronymic, "чна")
		if female {
			assert.Contains(t, femaleFirstNames, n.first)
			assert.True(t, strings.HasSuffix(n.last, "а") || strings.HasSuffix(n.last, "ая"), n.last)
		} else {
			assert.Contains(t, maleFirstNames, n.first)
			assert.Contains(t, surnames, n.last)
		}
	}
}

func TestUsers_SubscriptionsCoverAllTiers(t *testing.T) {
	users := newTestGenerator(t).Users(300, nil)
	seen := make(map[entities.SubscriptionType]bool)
	for _, u := range users {
		seen[u.SubscriptionType] = true
	}
	assert.Len(t, seen, 3)
}
