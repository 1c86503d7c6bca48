package evreg

// The zero register is empty and ready for use.
type Register struct {
	m map[int][]*Callback
}

func NewRegister() *Register {
	return &Register{}
}

//----------

// Remove is done via *Regist.Unregister().
func (reg *Register) Add(evId int, fn func(any)) *Regist {
	return reg.AddCallback(evId, &Callback{fn})
}

//----------

func (reg *Register) AddCallback(evId int, cb *Callback) *Regist {
	if reg.m == nil {
		reg.m = map[int][]*Callback{}
	}
	reg.m[evId] = append(reg.m[evId], cb)
	return &Regist{reg, evId, cb}
}

// Removes all occurrences of the callback in the event id.
func (reg *Register) RemoveCallback(evId int, cb *Callback) {
	u, ok := reg.m[evId]
	if !ok {
		return
	}
	w := make([]*Callback, 0, len(u))
	for _, cb2 := range u {
		if cb2 != cb {
			w = append(w, cb2)
		}
	}
	if len(w) == 0 {
		delete(reg.m, evId)
		return
	}
	reg.m[evId] = w
}

//----------

// Returns number of callbacks done. Callbacks added or removed while running only take effect on the next run.
func (reg *Register) RunCallbacks(evId int, ev any) int {
	if reg == nil {
		return 0
	}
	u := reg.m[evId]
	for _, cb := range u {
		cb.F(ev)
	}
	return len(u)
}

// Number of registered callbacks for an event id.
func (reg *Register) NCallbacks(evId int) int {
	if reg == nil {
		return 0
	}
	return len(reg.m[evId])
}

//----------

type Callback struct {
	F func(ev any)
}

//----------

type Regist struct {
	evReg *Register
	id    int
	cb    *Callback
}

func (reg *Regist) Unregister() {
	reg.evReg.RemoveCallback(reg.id, reg.cb)
}
