package points

// Rank is a competitive class. 1 is the strongest class, 12 the weakest.
type Rank int

const (
	MinRank Rank = 1
	MaxRank Rank = 12
)

// table holds the points awarded per class. Strictly decreasing by rank.
var table = [...]int{
	1:  2831,
	2:  1961,
	3:  1359,
	4:  942,
	5:  652,
	6:  452,
	7:  313,
	8:  217,
	9:  150,
	10: 104,
	11: 72,
	12: 50,
}

// Valid reports whether r is inside [MinRank, MaxRank].
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// For returns the points value for a rank, and false for a rank outside the table.
func For(r Rank) (int, bool) {
	if !r.Valid() {
		return 0, false
	}
	return table[r], true
}

// Ranks returns every valid rank, strongest first.
func Ranks() []Rank {
	ranks := make([]Rank, 0, MaxRank)
	for r := MinRank; r <= MaxRank; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}
