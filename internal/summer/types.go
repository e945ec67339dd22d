package summer

// DefaultTopN is the number of largest group totals added up in a Summary.
const DefaultTopN = 3

// Summary holds the group totals of one input together with the two reductions
// reported for it.
type Summary struct {
	Totals []int64
	Max    int64
	TopN   int
	TopSum int64
}
