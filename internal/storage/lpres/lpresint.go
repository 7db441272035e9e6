package lpres

import (
	"github.com/gostonefire/hashsimulator/crt"
	"github.com/gostonefire/hashsimulator/internal/model"
)

// linearProbingForSet - Finds the slot where key belongs, starting at slotNo.
// A collision is noted if the initial slot holds another key, and then every step to the next slot counts as
// one probe until an empty slot or the slot already holding key is found.
func (T *Table) linearProbingForSet(slotNo int64, key string) (placement model.Placement, err error) {
	placement.Collision = T.holdsOtherKey(slotNo, key)

	for T.holdsOtherKey(slotNo, key) {
		slotNo++
		if slotNo == T.tableSize {
			slotNo = 0
		}
		placement.Probes++

		// When we have traversed through the entire table we just have to face that it is full
		if placement.Probes == T.tableSize {
			err = crt.TableFull{}
			return
		}
	}

	placement.Slot = slotNo

	return
}

// holdsOtherKey - Returns true if the slot is occupied by a key other than key
func (T *Table) holdsOtherKey(slotNo int64, key string) bool {
	slot := T.slots[slotNo]
	return slot.State == model.SlotOccupied && slot.Key != key
}
