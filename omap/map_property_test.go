package omap

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestInsertEraseAgainstModel drives Insert/Erase/Count through rapid
// against a plain Go map model, asserting that ordered iteration always
// matches the sorted model keys and that size tracks the model exactly:
// insert N keys, erase them in a different order, and check consistency
// at every step.
func TestInsertEraseAgainstModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := New[int, int](lessInt)
		model := make(map[int]int)

		t.Repeat(map[string]func(*rapid.T){
			"insert": func(t *rapid.T) {
				k := rapid.IntRange(0, 200).Draw(t, "key")
				v := rapid.Int().Draw(t, "value")
				_, present := model[k]
				model[k] = pickOrKeep(!present, model[k], v)

				_, inserted := m.Insert(k, v)
				require.Equal(t, !present, inserted)
			},
			"erase": func(t *rapid.T) {
				if len(model) == 0 {
					t.Skip("model is empty, nothing to erase")
				}
				keys := sortedKeys(model)
				k := keys[rapid.IntRange(0, len(keys)-1).Draw(t, "eraseIndex")]
				delete(model, k)

				it := m.Find(k)
				require.True(t, it.Valid())
				require.NoError(t, m.Erase(it))
			},
			"count": func(t *rapid.T) {
				k := rapid.IntRange(0, 200).Draw(t, "key")
				_, inModel := model[k]
				want := 0
				if inModel {
					want = 1
				}
				require.Equal(t, want, m.Count(k))
			},
			"": func(t *rapid.T) {
				require.Equal(t, len(model), m.Len())
				require.Equal(t, sortedKeys(model), m.Keys())
			},
		})
	})
}

func pickOrKeep(wasNew bool, existing, incoming int) int {
	if wasNew {
		return incoming
	}
	return existing
}

func sortedKeys(model map[int]int) []int {
	keys := make([]int, 0, len(model))
	for k := range model {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
