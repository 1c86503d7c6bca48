package widget

import (
	"fmt"
	"math"

	"github.com/jmigpin/splitter/util/evreg"
	"github.com/jmigpin/splitter/util/mathutil"
)

// Splitter arranges exactly two children side by side (horizontal) or on top of each other (vertical), and divides the space between them according to a size mode.
//
// The children are opaque comparable handles owned by the host. The splitter only keeps a reference in one of its two slots.
type Splitter struct {
	EvReg *evreg.Register

	orientation Orientation
	sizeMode    SizeMode
	proportion  float64
	handleSize  int // space reserved between two visible children

	sizes  [2]int // last computed child sizes along the split axis
	handle int    // handle thickness used in the last allocation
	childs [2]splitterChild
}

type splitterChild struct {
	h       any // nil if the slot is empty
	visible bool
}

func NewSplitter(o Orientation) *Splitter {
	sp := &Splitter{
		EvReg:      evreg.NewRegister(),
		handleSize: DefaultSplitterHandleSize,
		proportion: DefaultSplitterProportion,
	}
	if o.Valid() {
		sp.orientation = o
	}
	return sp
}

//----------

func (sp *Splitter) Orientation() Orientation {
	return sp.orientation
}

func (sp *Splitter) SetOrientation(o Orientation) {
	if !o.Valid() || sp.orientation == o {
		return
	}
	sp.orientation = o
	sp.needsLayout()
	sp.propertyChanged(SplitterPropOrientation)
}

//----------

func (sp *Splitter) SizeMode() SizeMode {
	return sp.sizeMode
}

func (sp *Splitter) SetSizeMode(m SizeMode) {
	if !m.Valid() || sp.sizeMode == m {
		return
	}
	sp.sizeMode = m
	sp.needsLayout()
	sp.propertyChanged(SplitterPropSizeMode)
}

//----------

// Fraction of the split axis given to the first child. A negative value means unset, and the default proportion is used when allocating.
func (sp *Splitter) Proportion() float64 {
	return sp.proportion
}

// Only has effect in the proportional size mode. In the lock modes the proportion is derived from the locked child size on each allocation.
func (sp *Splitter) SetProportion(p float64) {
	if sp.sizeMode != SizeModeProportional {
		return
	}
	if !mathutil.IsFinite(p) {
		return
	}
	if p > 1 {
		p = 1
	}
	if sp.proportion == p {
		return
	}
	sp.proportion = p
	sp.needsLayout()
	sp.propertyChanged(SplitterPropProportion)
}

func (sp *Splitter) effectiveProportion() float64 {
	p := sp.proportion
	if p < 0 || math.IsNaN(p) {
		return DefaultSplitterProportion
	}
	if p > 1 {
		return 1
	}
	return p
}

//----------

// Cached size along the split axis. Authoritative for the locked child in the lock size modes.
func (sp *Splitter) ChildSize(slot Slot) int {
	if !slot.isChild() {
		return 0
	}
	return sp.sizes[slot]
}

// Resets the cached size of a child. Negative sizes are ignored.
func (sp *Splitter) SetChildSize(slot Slot, size int) {
	if !slot.isChild() || size < 0 {
		return
	}
	if sp.sizes[slot] == size {
		return
	}
	sp.sizes[slot] = size
	sp.needsLayout()
	sp.propertyChanged(slot.sizeProp())
}

// Handle thickness used in the last allocation. Zero if less then two children were visible.
func (sp *Splitter) HandleThickness() int {
	return sp.handle
}

func (sp *Splitter) HandleSize() int {
	return sp.handleSize
}

// Negative sizes are ignored.
func (sp *Splitter) SetHandleSize(size int) {
	if size < 0 || sp.handleSize == size {
		return
	}
	sp.handleSize = size
	sp.needsLayout()
	sp.propertyChanged(SplitterPropHandleSize)
}

//----------

// Fills the first empty slot. Returns SlotRejected if both slots are occupied, or if the handle is nil or already a child.
func (sp *Splitter) Attach(h any) Slot {
	if h == nil || sp.indexOf(h) != SlotRejected {
		return SlotRejected
	}
	for i := range sp.childs {
		if sp.childs[i].h == nil {
			sp.childs[i] = splitterChild{h: h, visible: true}
			sp.needsLayout()
			return Slot(i)
		}
	}
	return SlotRejected
}

// Clears the slot holding the handle. Returns false if the handle is not a child.
func (sp *Splitter) Detach(h any) bool {
	slot := sp.indexOf(h)
	if slot == SlotRejected {
		return false
	}
	sp.clear(slot)
	return true
}

func (sp *Splitter) RemoveFirst() bool {
	return sp.clear(SlotFirst)
}
func (sp *Splitter) RemoveSecond() bool {
	return sp.clear(SlotSecond)
}

func (sp *Splitter) clear(slot Slot) bool {
	if sp.childs[slot].h == nil {
		return false
	}
	sp.childs[slot] = splitterChild{}
	sp.needsLayout()
	return true
}

func (sp *Splitter) indexOf(h any) Slot {
	if h == nil {
		return SlotRejected
	}
	for i, c := range sp.childs {
		if c.h != nil && c.h == h {
			return Slot(i)
		}
	}
	return SlotRejected
}

//----------

func (sp *Splitter) Child(slot Slot) (any, bool) {
	if !slot.isChild() || sp.childs[slot].h == nil {
		return nil, false
	}
	return sp.childs[slot].h, true
}

func (sp *Splitter) ChildsLen() int {
	n := 0
	for _, c := range sp.childs {
		if c.h != nil {
			n++
		}
	}
	return n
}

// Iterates occupied slots in slot order.
func (sp *Splitter) IterChilds(fn func(Slot, any)) {
	for i, c := range sp.childs {
		if c.h != nil {
			fn(Slot(i), c.h)
		}
	}
}

// Visibility the last allocation used for the child. The fallback allocation forces occupied slots to visible.
func (sp *Splitter) ChildVisible(slot Slot) bool {
	if !slot.isChild() {
		return false
	}
	c := sp.childs[slot]
	return c.h != nil && c.visible
}

//----------

func (sp *Splitter) needsLayout() {
	sp.EvReg.RunCallbacks(SplitterNeedsLayoutEventId, &SplitterNeedsLayoutEvent{sp})
}
func (sp *Splitter) propertyChanged(name string) {
	sp.EvReg.RunCallbacks(SplitterPropertyEventId, &SplitterPropertyEvent{sp, name})
}

//----------

const (
	DefaultSplitterHandleSize = 5
	DefaultSplitterProportion = 0.5
)

const (
	SplitterPropOrientation = "orientation"
	SplitterPropSizeMode    = "size-mode"
	SplitterPropProportion  = "proportion"
	SplitterPropChild1Size  = "child1-size"
	SplitterPropChild2Size  = "child2-size"
	SplitterPropHandleSize  = "handle-size"
)

const (
	SplitterNeedsLayoutEventId = iota
	SplitterPropertyEventId
)

type SplitterNeedsLayoutEvent struct {
	Splitter *Splitter
}

type SplitterPropertyEvent struct {
	Splitter *Splitter
	Name     string
}

//----------

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("bad orientation: %q", s)
}

//----------

type SizeMode int

const (
	SizeModeProportional SizeMode = iota
	SizeModeLockFirst
	SizeModeLockSecond
)

func (m SizeMode) Valid() bool {
	return m >= SizeModeProportional && m <= SizeModeLockSecond
}

func (m SizeMode) String() string {
	switch m {
	case SizeModeProportional:
		return "proportional"
	case SizeModeLockFirst:
		return "lock-first"
	case SizeModeLockSecond:
		return "lock-second"
	default:
		return fmt.Sprintf("sizemode(%d)", int(m))
	}
}

func ParseSizeMode(s string) (SizeMode, error) {
	for m := SizeModeProportional; m <= SizeModeLockSecond; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("bad size mode: %q", s)
}

//----------

type Slot int

const (
	SlotFirst Slot = iota
	SlotSecond
	SlotRejected
)

func (s Slot) isChild() bool {
	return s == SlotFirst || s == SlotSecond
}

func (s Slot) sizeProp() string {
	if s == SlotFirst {
		return SplitterPropChild1Size
	}
	return SplitterPropChild2Size
}

func (s Slot) String() string {
	switch s {
	case SlotFirst:
		return "first"
	case SlotSecond:
		return "second"
	default:
		return "rejected"
	}
}
