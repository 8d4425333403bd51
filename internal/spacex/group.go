package spacex

import (
	"slices"
	"sort"
)

// DateBucket holds the launches that share a calendar day, in input order.
type DateBucket struct {
	Date     string
	Launches []Launch
}

// Grouped is a date-ordered sequence of buckets. Dates are unique and
// strictly ascending.
type Grouped []DateBucket

// GroupByDate buckets launches by the YYYY-MM-DD prefix of their launch date
// and orders the buckets ascending. Order within a bucket is the input order.
func GroupByDate(launches []Launch) Grouped {
	if len(launches) == 0 {
		return nil
	}

	buckets := make(map[string][]Launch)
	for _, l := range launches {
		key := l.Date()
		buckets[key] = append(buckets[key], l)
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	slices.Sort(dates)

	grouped := make(Grouped, 0, len(dates))
	for _, date := range dates {
		grouped = append(grouped, DateBucket{Date: date, Launches: buckets[date]})
	}
	return grouped
}

// Dates returns the bucket keys in order.
func (g Grouped) Dates() []string {
	dates := make([]string, len(g))
	for i, b := range g {
		dates[i] = b.Date
	}
	return dates
}

// Bucket returns the launches for date.
func (g Grouped) Bucket(date string) ([]Launch, bool) {
	i := sort.Search(len(g), func(i int) bool { return g[i].Date >= date })
	if i < len(g) && g[i].Date == date {
		return g[i].Launches, true
	}
	return nil, false
}

// Len returns the total number of launches across all buckets.
func (g Grouped) Len() int {
	n := 0
	for _, b := range g {
		n += len(b.Launches)
	}
	return n
}

// Launches flattens the grouping in bucket order.
func (g Grouped) Launches() []Launch {
	out := make([]Launch, 0, g.Len())
	for _, b := range g {
		out = append(out, b.Launches...)
	}
	return out
}

// dateKey truncates an ISO-8601 timestamp to its day. Shorter values are
// malformed; they are used whole rather than panicking.
func dateKey(ts string) string {
	if len(ts) < dateKeyLen {
		return ts
	}
	return ts[:dateKeyLen]
}
