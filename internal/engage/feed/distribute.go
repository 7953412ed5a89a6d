// Package feed lays out the cursor-paginated project stream: a deterministic
// weight per item and a greedy distribution into balanced visual columns.
package feed

// Bucket classifies an item's rendered aspect ratio.
type Bucket string

const (
	BucketPortrait  Bucket = "portrait"
	BucketSquare    Bucket = "square"
	BucketLandscape Bucket = "landscape"
)

// Item is one project summary in the feed stream.
type Item struct {
	ID           string
	Title        string
	MediaURL     string
	Status       string
	LikeCount    uint
	DislikeCount uint
	CommentCount uint
}

// BucketForID derives an item's layout bucket from its id alone. The same id
// always lands in the same bucket, so column membership never shifts while
// further pages stream in. It deliberately ignores real media dimensions,
// measuring them would break that stability.
func BucketForID(id string) Bucket {
	var sum int
	for _, r := range id {
		sum += int(r)
	}
	switch sum % 3 {
	case 0:
		return BucketPortrait
	case 1:
		return BucketSquare
	default:
		return BucketLandscape
	}
}

// Weight returns the relative column height an item occupies.
func Weight(id string) float64 {
	switch BucketForID(id) {
	case BucketPortrait:
		return 1.25
	case BucketSquare:
		return 1.0
	default:
		return 0.625
	}
}

// Distribute packs items into columnCount columns with greedy
// shortest-column placement: each item, in input order, goes to the column
// with the lowest accumulated weight, leftmost on ties. Every input item
// appears in exactly one column.
func Distribute(items []Item, columnCount int) [][]Item {
	if columnCount < 1 {
		columnCount = 1
	}

	columns := make([][]Item, columnCount)
	heights := make([]float64, columnCount)
	for _, item := range items {
		shortest := 0
		for i := 1; i < columnCount; i++ {
			if heights[i] < heights[shortest] {
				shortest = i
			}
		}
		columns[shortest] = append(columns[shortest], item)
		heights[shortest] += Weight(item.ID)
	}
	return columns
}
