package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots(t *testing.T) {
	slots := Slots()

	require.NotEmpty(t, slots)
	assert.Equal(t, "08:00", slots[0], "el primer slot es la apertura")
	assert.Equal(t, "19:40", slots[len(slots)-1], "20:30 ya supera el cierre")
	assert.Len(t, slots, 15)

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i], "orden estrictamente ascendente, sin duplicados")
	}
}

func TestSlotsDeterministic(t *testing.T) {
	assert.Equal(t, Slots(), Slots())
}

func TestSlotsCatalog(t *testing.T) {
	expected := []string{
		"08:00", "08:50", "09:40", "10:30", "11:20", "12:10",
		"13:00", "13:50", "14:40", "15:30", "16:20", "17:10",
		"18:00", "18:50", "19:40",
	}
	assert.Equal(t, expected, Slots())
}
