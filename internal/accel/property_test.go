package accel

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// op encodes one registry call: identity in [0,4), key in {enter, esc},
// and kind 0 = start, 1 = stop that key, 2 = stop all.
type op struct {
	id   int
	key  string
	kind int
}

func decodeOps(raw []int) []op {
	names := []string{"enter", "esc"}
	ops := make([]op, len(raw))
	for i, n := range raw {
		ops[i] = op{id: n % 4, key: names[(n/4)%2], kind: (n / 8) % 3}
	}
	return ops
}

func TestRegistryProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("attached exactly while subscribers exist", prop.ForAll(
		func(raw []int) bool {
			src := &fakeSource{}
			r := New(src)
			// model: identity -> bound key names
			model := make(map[int]map[string]bool)
			noop := func(Event) bool { return false }

			for _, o := range decodeOps(raw) {
				id := ID(fmt.Sprintf("c%d", o.id))
				switch o.kind {
				case 0:
					r.StartListening(id, Bindings{o.key: noop})
					if model[o.id] == nil {
						model[o.id] = make(map[string]bool)
					}
					model[o.id][o.key] = true
				case 1:
					r.StopListening(id, Bindings{o.key: nil})
					delete(model[o.id], o.key)
					if len(model[o.id]) == 0 {
						delete(model, o.id)
					}
				case 2:
					r.StopListening(id, nil)
					delete(model, o.id)
				}
				if r.Len() != len(model) {
					return false
				}
				if src.attached() != (len(model) > 0) || r.Listening() != src.attached() {
					return false
				}
			}
			live := 0
			if r.Len() > 0 {
				live = 1
			}
			return !src.doubleAttach && !src.doubleDetach &&
				src.subscribes-src.unsubscribes == live
		},
		gen.SliceOf(gen.IntRange(0, 23)),
	))

	properties.Property("stop twice equals stop once", prop.ForAll(
		func(raw []int, target int) bool {
			r := New(nil)
			noop := func(Event) bool { return false }
			for _, o := range decodeOps(raw) {
				r.StartListening(ID(fmt.Sprintf("c%d", o.id)), Bindings{o.key: noop})
			}
			id := ID(fmt.Sprintf("c%d", target))
			r.StopListening(id, nil)
			subs := fmt.Sprint(r.Subscribers())
			r.StopListening(id, nil)
			return subs == fmt.Sprint(r.Subscribers())
		},
		gen.SliceOf(gen.IntRange(0, 23)),
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}
