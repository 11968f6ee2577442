package planner

import "trip-planner/models/venue"

// venueQueue hands out venues in a shuffled order, each at most once.
type venueQueue struct {
	venues []venue.Venue
	next   int
}

func newShuffledQueue(venues []venue.Venue, rnd RandomSource) *venueQueue {
	q := make([]venue.Venue, len(venues))
	copy(q, venues)
	rnd.Shuffle(len(q), func(i, j int) {
		q[i], q[j] = q[j], q[i]
	})
	return &venueQueue{venues: q}
}

func (q *venueQueue) pop() (venue.Venue, bool) {
	if q.next >= len(q.venues) {
		return venue.Venue{}, false
	}
	v := q.venues[q.next]
	q.next++
	return v, true
}

// popFirst pops from the first non-empty queue, in order.
func popFirst(queues ...*venueQueue) (venue.Venue, bool) {
	for _, q := range queues {
		if v, ok := q.pop(); ok {
			return v, true
		}
	}
	return venue.Venue{}, false
}
