package reviews

import (
	"fmt"
	"math"
	"time"
	"unicode/utf16"

	"loan-catalog/internal/loans"
	"loan-catalog/internal/models"
)

const (
	DefaultCount = 3
	MinCount     = 2
	MaxCount     = 5

	// maxAgeDays bounds how far back a review is dated.
	maxAgeDays = 90
)

// DateLayout is the ISO-8601 form of Review.Date, always in UTC.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

var authors = []string{"Алексей", "Мария", "Иван", "Ольга", "Дмитрий", "Елена", "Сергей", "Анна"}

var comments = []string{
	"Быстро одобрили, условия прозрачные.",
	"Удобно, но ставку хотелось бы ниже.",
	"Оформление заняло 10 минут, всё ок.",
	"Поддержка отвечает быстро, впечатления положительные.",
	"Хороший сервис, деньги пришли на карту.",
	"Нужные документы подготовили заранее, процесс прошёл гладко.",
	"Рекомендую друзьям, хорошая альтернатива банкам.",
}

// SeedFromString folds the UTF-16 code units of s into a generator seed.
// It never returns zero.
func SeedFromString(s string) uint32 {
	var h uint32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + uint32(c)
	}
	if h == 0 {
		return 1
	}
	return h
}

// Generate returns clamp(count, MinCount, MaxCount) reviews for seed,
// dated back from now.
func Generate(seed string, count int, now time.Time) []models.Review {
	total := max(MinCount, min(count, MaxCount))
	rng := loans.NewRNG(SeedFromString(seed))

	out := make([]models.Review, 0, total)
	for i := 0; i < total; i++ {
		author := authors[rng.Intn(len(authors))]
		rating := max(1, min(5, 3+int(math.Round(rng.Next()*2))))
		comment := comments[rng.Intn(len(comments))]
		age := rng.Intn(maxAgeDays)

		out = append(out, models.Review{
			ID:      fmt.Sprintf("%s_%d", seed, i),
			Author:  author,
			Rating:  rating,
			Comment: comment,
			Date:    now.Add(-time.Duration(age) * 24 * time.Hour).UTC().Format(DateLayout),
		})
	}
	return out
}

// ForOffer returns the reviews shown on an offer page.
func ForOffer(offer models.LoanOffer, now time.Time) []models.Review {
	return Generate(offer.ID, DefaultCount, now)
}

// ForOrganization seeds with the organization slug and scales the count
// with its catalog size.
func ForOrganization(slug string, count int, now time.Time) []models.Review {
	return Generate("org-"+slug, count, now)
}

// AverageRating is the mean review rating rounded to one decimal, or zero
// for no reviews.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}
