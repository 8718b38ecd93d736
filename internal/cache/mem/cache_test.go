package mem

import (
	"testing"

	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/internal/domain"
)

func TestCacheLookup(t *testing.T) {
	c := New()
	if _, ok := c.GetPlayerByName("Вася"); ok {
		t.Error("empty cache must miss")
	}

	vasya := domain.Player{ID: uuid.New(), Name: "Вася Пупкин", EloRating: 1540}
	petya := domain.Player{ID: uuid.New(), Name: "Петя Иванов", EloRating: 1490}
	c.Update([]domain.Player{vasya, petya})

	got, ok := c.GetPlayerByName("вася  пупкин")
	if !ok {
		t.Fatal("lookup must survive case and spacing")
	}
	if got.ID != vasya.ID {
		t.Errorf("got %s, want %s", got.Name, vasya.Name)
	}

	ratings := c.GetRatings()
	if len(ratings) != 2 || ratings[0].ID != vasya.ID {
		t.Errorf("ratings order = %v, want higher rating first", ratings)
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := New()
	c.Update([]domain.Player{{ID: uuid.New(), Name: "Вася"}})
	if !c.Valid() {
		t.Fatal("cache must be valid after update")
	}

	c.Invalidate()
	if c.Valid() {
		t.Error("cache must be stale after invalidate")
	}
	if _, ok := c.GetPlayerByName("Вася"); ok {
		t.Error("stale cache must miss")
	}
}
