package bpe

// sentinelID marks a node that has been merged into its predecessor. Such a
// node is unlinked from the stream but may still be referenced by stale pair
// index entries, which detect it by this id. It never appears on a node
// reachable from a stream head.
const sentinelID = -1

// tokenNode is one element of the doubly-linked token stream.
//
// wordID is immutable for the node's lifetime; text and id change when the
// node absorbs its successor, and id is set to sentinelID when the node is
// itself absorbed.
type tokenNode struct {
	text   string
	id     int
	wordID int
	prev   *tokenNode
	next   *tokenNode
}

// appendNode links other directly after n.
func (n *tokenNode) appendNode(other *tokenNode) {
	n.next = other
	other.prev = n
}

// mergeWithNext folds n's successor into n: n takes on the concatenated text
// and the fresh id, and the successor is invalidated and unlinked. The
// successor node is orphaned rather than freed; pair index bags holding it
// rely on the sentinel id to skip it.
func (n *tokenNode) mergeWithNext(newID int) {
	absorbed := n.next
	n.text += absorbed.text
	n.id = newID
	absorbed.id = sentinelID
	n.next = absorbed.next
	if n.next != nil {
		n.next.prev = n
	}
}
