// Package mansion holds the fixed map of rooms the detective walks through.
//
// The map is a binary tree: every room leads to at most one room on the left and one on the right. Rooms are linked
// once while the map is built and never change afterwards.
package mansion

import "github.com/myrjola/detectivequest/internal/models"

// Room names of the mansion.
const (
	EntranceHall = "Hall de Entrada"
	LivingRoom   = "Sala de Estar"
	Kitchen      = "Cozinha"
	Library      = "Biblioteca"
	WinterGarden = "Jardim de Inverno"
	Attic        = "Sótão"
	GuestRoom    = "Quarto de Hóspedes"
)

// Room is a node of the mansion map. Its children are owned by it exclusively.
type Room struct {
	name  string
	left  *Room
	right *Room
}

// NewRoom creates a room without exits. Names longer than [models.MaxNameBytes] are truncated.
func NewRoom(name string) *Room {
	return &Room{name: models.TruncateName(name)}
}

// Connect sets the rooms reachable from parent. Previously connected rooms are replaced.
// A nil parent is ignored.
func Connect(parent, left, right *Room) {
	if parent == nil {
		return
	}
	parent.left = left
	parent.right = right
}

// Build returns the entrance hall of the mansion with all other rooms connected to it.
func Build() *Room {
	hall := NewRoom(EntranceHall)
	livingRoom := NewRoom(LivingRoom)
	kitchen := NewRoom(Kitchen)
	library := NewRoom(Library)
	garden := NewRoom(WinterGarden)
	attic := NewRoom(Attic)
	guestRoom := NewRoom(GuestRoom)

	Connect(hall, livingRoom, kitchen)
	Connect(livingRoom, library, garden)
	Connect(kitchen, attic, guestRoom)

	return hall
}

// Name returns the room name shown to the player.
func (r *Room) Name() string {
	return r.name
}

// Left returns the room to the left or nil if there is none.
func (r *Room) Left() *Room {
	return r.left
}

// Right returns the room to the right or nil if there is none.
func (r *Room) Right() *Room {
	return r.right
}

// IsLeaf reports whether the room is a dead end.
func (r *Room) IsLeaf() bool {
	return r.left == nil && r.right == nil
}

// Walk visits root and every room below it in pre-order, left before right. Depth of root is 0.
func Walk(root *Room, fn func(room *Room, depth int)) {
	walk(root, 0, fn)
}

func walk(room *Room, depth int, fn func(room *Room, depth int)) {
	if room == nil {
		return
	}
	fn(room, depth)
	walk(room.left, depth+1, fn)
	walk(room.right, depth+1, fn)
}
