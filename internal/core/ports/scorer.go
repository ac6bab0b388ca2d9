package ports

// Scorer rates how similar a candidate name is to a query, from 0 to 100.
//
//go:generate mockgen -source=scorer.go -destination=mocks/mock_scorer.go -package=mocks
type Scorer interface {
	Score(query, candidate string) int
}
