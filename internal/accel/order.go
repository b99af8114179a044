package accel

// subscriberOrder is the insertion-ordered set of listening identities.
// The last element has the highest dispatch priority.
type subscriberOrder struct {
	ids []ID
}

func (o *subscriberOrder) contains(id ID) bool {
	return o.index(id) >= 0
}

func (o *subscriberOrder) index(id ID) int {
	for i, v := range o.ids {
		if v == id {
			return i
		}
	}
	return -1
}

// add appends id unless it is already present. Reports whether it was added.
func (o *subscriberOrder) add(id ID) bool {
	if o.contains(id) {
		return false
	}
	o.ids = append(o.ids, id)
	return true
}

// remove deletes id, shifting later entries down. Reports whether id was present.
func (o *subscriberOrder) remove(id ID) bool {
	i := o.index(id)
	if i < 0 {
		return false
	}
	copy(o.ids[i:], o.ids[i+1:])
	o.ids[len(o.ids)-1] = ""
	o.ids = o.ids[:len(o.ids)-1]
	return true
}

func (o *subscriberOrder) len() int {
	return len(o.ids)
}

// reversed returns a copy of the order, highest priority first.
func (o *subscriberOrder) reversed() []ID {
	out := make([]ID, len(o.ids))
	for i, id := range o.ids {
		out[len(o.ids)-1-i] = id
	}
	return out
}

func (o *subscriberOrder) clear() {
	o.ids = nil
}
