package nutrition

//go:generate mockgen -source=$GOFILE -destination=reorder_mocks_test.go -package=nutrition_test

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// DropLocation is one end of a drag-and-drop gesture on the meal
// board; the droppable id carries the period label of the column.
type DropLocation struct {
	DroppableID string `json:"droppableId"`
	Index       int    `json:"index"`
}

// DropResult is the drag-and-drop payload as emitted by the board
// shell. Destination is nil when the item was dropped outside any
// column.
type DropResult struct {
	MealID      string        `json:"draggableId"`
	Source      *DropLocation `json:"source"`
	Destination *DropLocation `json:"destination"`
}

type periodReassigner interface {
	ReassignPeriod(ctx context.Context, mealID string, newPeriod Period, userID string) bool
}

// Coordinator turns drag-and-drop gestures into period reassignments.
// Stateless; every gesture is resolved against the store it wraps.
type Coordinator struct {
	store periodReassigner
}

func NewCoordinator(store periodReassigner) *Coordinator {
	return &Coordinator{store: store}
}

// HandleDragEnd resolves one completed gesture. Drops outside any
// column and drops within the starting column change nothing and make
// no store call.
func (c *Coordinator) HandleDragEnd(ctx context.Context, drop DropResult, userID string) bool {
	if drop.Destination == nil {
		log.Tracef("drag end: meal %s dropped outside any column", drop.MealID)
		return true
	}
	if drop.Source != nil && drop.Source.DroppableID == drop.Destination.DroppableID {
		log.Tracef("drag end: meal %s dropped within its own column", drop.MealID)
		return true
	}

	return c.store.ReassignPeriod(ctx, drop.MealID, ParsePeriod(drop.Destination.DroppableID), userID)
}
