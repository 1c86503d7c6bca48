package evreg

import "testing"

func TestRegister1(t *testing.T) {
	reg := NewRegister()
	got := []any{}
	r1 := reg.Add(1, func(ev any) { got = append(got, ev) })
	reg.Add(2, func(ev any) { t.Fatal("wrong event id") })

	if n := reg.RunCallbacks(1, "a"); n != 1 {
		t.Fatal(n)
	}
	r1.Unregister()
	if n := reg.RunCallbacks(1, "b"); n != 0 {
		t.Fatal(n)
	}
	if len(got) != 1 || got[0] != "a" {
		t.Fatal(got)
	}
	if reg.NCallbacks(1) != 0 || reg.NCallbacks(2) != 1 {
		t.Fatal(reg.NCallbacks(1), reg.NCallbacks(2))
	}
}

func TestRegisterUnregisterWhileRunning(t *testing.T) {
	reg := &Register{} // zero value
	c := 0
	var r1 *Regist
	r1 = reg.Add(1, func(ev any) {
		c++
		r1.Unregister()
	})
	reg.Add(1, func(ev any) { c++ })

	if n := reg.RunCallbacks(1, nil); n != 2 || c != 2 {
		t.Fatal(n, c)
	}
	if n := reg.RunCallbacks(1, nil); n != 1 || c != 3 {
		t.Fatal(n, c)
	}
}

func TestNilRegister(t *testing.T) {
	var reg *Register
	if n := reg.RunCallbacks(1, nil); n != 0 {
		t.Fatal(n)
	}
	if n := reg.NCallbacks(1); n != 0 {
		t.Fatal(n)
	}
}
