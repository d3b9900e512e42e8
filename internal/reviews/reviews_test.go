package reviews

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-catalog/internal/models"
)

var fixedNow = time.Date(2024, 10, 21, 9, 30, 0, 0, time.UTC)

func TestSeedFromString(t *testing.T) {
	assert.Equal(t, uint32(2746154766), SeedFromString("offer_1"))
	assert.Equal(t, uint32(1), SeedFromString(""))
	assert.NotEqual(t, SeedFromString("offer_1"), SeedFromString("offer_2"))
	assert.NotZero(t, SeedFromString("Займер"))
}

func TestGenerate_KnownSequence(t *testing.T) {
	got := Generate("offer_1", 3, fixedNow)

	require.Len(t, got, 3)
	assert.Equal(t, models.Review{
		ID:      "offer_1_0",
		Author:  "Мария",
		Rating:  4,
		Comment: comments[1],
		Date:    "2024-09-22T09:30:00.000Z",
	}, got[0])
	assert.Equal(t, "Дмитрий", got[1].Author)
	assert.Equal(t, 5, got[1].Rating)
	assert.Equal(t, comments[6], got[1].Comment)
	assert.Equal(t, "2024-10-19T09:30:00.000Z", got[1].Date)
	assert.Equal(t, "Елена", got[2].Author)
	assert.Equal(t, "offer_1_2", got[2].ID)
}

func TestGenerate_CountBounds(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{-1, 2}, {0, 2}, {1, 2}, {2, 2}, {3, 3}, {5, 5}, {10, 5},
	}

	for _, tt := range tests {
		assert.Len(t, Generate("seed", tt.count, fixedNow), tt.want, "count %d", tt.count)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate("org-zaimgarant", 5, fixedNow)
	b := Generate("org-zaimgarant", 5, fixedNow)
	assert.Equal(t, a, b)

	prefix := Generate("org-zaimgarant", 2, fixedNow)
	assert.Equal(t, a[:2], prefix)
}

func TestGenerate_FieldRanges(t *testing.T) {
	for _, seed := range []string{"offer_1", "offer_77", "org-migkredit", "Екапуста"} {
		for _, r := range Generate(seed, 5, fixedNow) {
			assert.Contains(t, authors, r.Author)
			assert.Contains(t, comments, r.Comment)
			assert.GreaterOrEqual(t, r.Rating, 3)
			assert.LessOrEqual(t, r.Rating, 5)

			date, err := time.Parse(DateLayout, r.Date)
			require.NoError(t, err)
			assert.False(t, date.After(fixedNow))
			assert.True(t, date.After(fixedNow.AddDate(0, 0, -maxAgeDays)))
		}
	}
}

func TestForOffer(t *testing.T) {
	offer := models.LoanOffer{ID: "offer_1"}
	assert.Equal(t, Generate("offer_1", DefaultCount, fixedNow), ForOffer(offer, fixedNow))
}

func TestForOrganization(t *testing.T) {
	got := ForOrganization("zaimgarant", 5, fixedNow)

	require.Len(t, got, 5)
	assert.Equal(t, "org-zaimgarant_0", got[0].ID)
	assert.Equal(t, "Анна", got[4].Author)
}

func TestAverageRating(t *testing.T) {
	assert.Zero(t, AverageRating(nil))
	assert.Equal(t, 4.3, AverageRating([]models.Review{{Rating: 4}, {Rating: 5}, {Rating: 4}}))
}
