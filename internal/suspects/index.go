// Package suspects relates suspects to the clues that point to them.
//
// The index is a hash table with a fixed number of buckets. Collisions are chained: suspects sharing a bucket form a
// singly linked list with the most recently added suspect at the head.
package suspects

import "github.com/myrjola/detectivequest/internal/models"

// Buckets is the number of hash table buckets. A small prime spreads the handful of suspects of the mansion.
const Buckets = 13

// association is one clue in a suspect's list, newest first.
type association struct {
	clue string
	next *association
}

type entry struct {
	name  string
	clues *association
	count int
	next  *entry
}

// Index maps suspect names to their clues. The zero value is an empty index.
type Index struct {
	buckets [Buckets]*entry
	size    int
}

// New returns an empty index.
func New() *Index {
	return &Index{}
}

// Hash returns the bucket of name: the sum of its bytes modulo [Buckets]. Anagrams share a bucket.
func Hash(name string) int {
	sum := 0
	for i := 0; i < len(name); i++ {
		sum += int(name[i])
	}
	return sum % Buckets
}

func (idx *Index) find(name string) *entry {
	for e := idx.buckets[Hash(name)]; e != nil; e = e.next {
		if e.name == name {
			return e
		}
	}
	return nil
}

// Find looks up a suspect by exact name.
func (idx *Index) Find(name string) (models.Suspect, bool) {
	e := idx.find(models.TruncateName(name))
	if e == nil {
		return models.Suspect{}, false
	}
	return e.snapshot(), true
}

// Associate records that clue points to the suspect called name. Unknown suspects are added to the head of their
// bucket. The clue is put in front of the suspect's list; the same clue may be recorded more than once.
func (idx *Index) Associate(name, clue string) {
	name = models.TruncateName(name)
	e := idx.find(name)
	if e == nil {
		bucket := Hash(name)
		e = &entry{name: name, next: idx.buckets[bucket]}
		idx.buckets[bucket] = e
		idx.size++
	}
	e.clues = &association{clue: models.TruncateText(clue), next: e.clues}
	e.count++
}

// Len returns the number of suspects.
func (idx *Index) Len() int {
	return idx.size
}

// All returns every suspect, bucket by bucket and from the head of each chain.
func (idx *Index) All() []models.Suspect {
	all := make([]models.Suspect, 0, idx.size)
	idx.each(func(e *entry) {
		all = append(all, e.snapshot())
	})
	return all
}

// MostAssociated returns the suspect with the most clues. On a tie the suspect met first by [Index.All] wins.
// An empty index yields [models.UnknownSuspect] with a count of 0.
func (idx *Index) MostAssociated() models.Lead {
	lead := models.Lead{Name: models.UnknownSuspect, Count: 0}
	idx.each(func(e *entry) {
		if e.count > lead.Count {
			lead = models.Lead{Name: e.name, Count: e.count}
		}
	})
	return lead
}

func (idx *Index) each(fn func(e *entry)) {
	for _, head := range idx.buckets {
		for e := head; e != nil; e = e.next {
			fn(e)
		}
	}
}

func (e *entry) snapshot() models.Suspect {
	clues := make([]string, 0, e.count)
	for a := e.clues; a != nil; a = a.next {
		clues = append(clues, a.clue)
	}
	return models.Suspect{Name: e.name, Clues: clues}
}
