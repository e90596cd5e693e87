// Package clues keeps the clues collected during an investigation in alphabetical order.
package clues

import "github.com/myrjola/detectivequest/internal/models"

// node is a binary search tree node ordered by byte-wise comparison of text.
type node struct {
	text  string
	left  *node
	right *node
}

// Ledger is an unbalanced binary search tree of clue texts. Each text is stored once.
// The zero value is an empty ledger.
type Ledger struct {
	root *node
	size int
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Insert adds text to the ledger and reports whether it was new. Texts longer than [models.MaxTextBytes] are
// truncated before they are compared.
func (l *Ledger) Insert(text string) bool {
	var added bool
	l.root = insert(l.root, models.TruncateText(text), &added)
	if added {
		l.size++
	}
	return added
}

// insert returns the root of the subtree after placing text in it. Equal texts leave the subtree untouched.
func insert(n *node, text string, added *bool) *node {
	if n == nil {
		*added = true
		return &node{text: text}
	}
	switch {
	case text < n.text:
		n.left = insert(n.left, text, added)
	case text > n.text:
		n.right = insert(n.right, text, added)
	}
	return n
}

// Walk calls fn for every clue in ascending order.
func (l *Ledger) Walk(fn func(text string)) {
	inOrder(l.root, fn)
}

func inOrder(n *node, fn func(text string)) {
	if n == nil {
		return
	}
	inOrder(n.left, fn)
	fn(n.text)
	inOrder(n.right, fn)
}

// InOrder returns the clues in ascending order.
func (l *Ledger) InOrder() []string {
	texts := make([]string, 0, l.size)
	l.Walk(func(text string) {
		texts = append(texts, text)
	})
	return texts
}

// Len returns the number of distinct clues.
func (l *Ledger) Len() int {
	return l.size
}

// Empty reports whether no clue has been filed yet.
func (l *Ledger) Empty() bool {
	return l.root == nil
}
