package widget

import (
	"image"

	"github.com/jmigpin/splitter/util/mathutil"
)

// Reserved, not applied.
const splitterBorderWidth = 0

type SplitterAllocation struct {
	First, Second       image.Rectangle
	HasFirst, HasSecond bool
}

func (a *SplitterAllocation) Rect(slot Slot) (image.Rectangle, bool) {
	switch slot {
	case SlotFirst:
		return a.First, a.HasFirst
	case SlotSecond:
		return a.Second, a.HasSecond
	}
	return image.Rectangle{}, false
}

//----------

// Computes the children bounds inside r. The visibility flags are the host view of each child; an empty slot is never visible.
//
// With two visible children the cached child sizes are updated, and in the lock size modes the proportion is derived from them. Single child and fallback allocations leave the cached sizes untouched so the split survives visibility toggles.
func (sp *Splitter) Allocate(r image.Rectangle, visible1, visible2 bool) SplitterAllocation {
	r = r.Canon().Inset(splitterBorderWidth)

	vis := [2]bool{
		visible1 && sp.childs[SlotFirst].h != nil,
		visible2 && sp.childs[SlotSecond].h != nil,
	}

	var a SplitterAllocation
	switch {
	case vis[0] && vis[1]:
		sp.setVisible(vis)
		sp.allocateBoth(r, &a)
	case vis[0] || vis[1]:
		sp.setVisible(vis)
		sp.handle = 0
		sp.allocateWhole(r, &a, vis)
	default:
		sp.handle = 0
		sp.allocateFallback(r, &a)
	}
	return a
}

func (sp *Splitter) setVisible(vis [2]bool) {
	for i := range sp.childs {
		sp.childs[i].visible = vis[i]
	}
}

//----------

func (sp *Splitter) allocateBoth(r image.Rectangle, a *SplitterAllocation) {
	// translate axis
	xya := OrientationAxis(sp.orientation)
	ar := xya.Rectangle(r)

	sp.handle = sp.handleSize
	avail := xya.Main(r.Size()) - sp.handle
	s1, s2 := sp.splitSizes(avail)

	cross := mathutil.Max(xya.Cross(r.Size()), 1)
	r1 := image.Rectangle{ar.Min, ar.Min.Add(image.Point{s1, cross})}
	min2 := image.Point{ar.Min.X + s1 + sp.handle, ar.Min.Y}
	r2 := image.Rectangle{min2, min2.Add(image.Point{s2, cross})}

	// translate axis
	a.First, a.HasFirst = xya.Rectangle(r1), true
	a.Second, a.HasSecond = xya.Rectangle(r2), true

	sp.cacheSizes(s1, s2, avail)
}

// Sizes along the split axis, each at least 1.
func (sp *Splitter) splitSizes(avail int) (int, int) {
	// a locked size is kept unless it doesn't fit
	maxLocked := mathutil.Max(avail-1, 1)
	switch sp.sizeMode {
	case SizeModeLockFirst:
		if s := sp.sizes[SlotFirst]; s > 0 {
			s1 := mathutil.Limit(s, 1, maxLocked)
			return s1, mathutil.Max(avail-s1, 1)
		}
	case SizeModeLockSecond:
		if s := sp.sizes[SlotSecond]; s > 0 {
			s2 := mathutil.Limit(s, 1, maxLocked)
			return mathutil.Max(avail-s2, 1), s2
		}
	}
	// proportional, also used by a lock mode without a cached size
	s1 := mathutil.Max(mathutil.RoundInt(float64(avail)*sp.effectiveProportion()), 1)
	return s1, mathutil.Max(avail-s1, 1)
}

func (sp *Splitter) cacheSizes(s1, s2, avail int) {
	switch sp.sizeMode {
	case SizeModeLockFirst:
		// the locked size survives a temporary squash
		if sp.sizes[SlotFirst] <= 0 {
			sp.sizes[SlotFirst] = s1
		}
		sp.sizes[SlotSecond] = s2
	case SizeModeLockSecond:
		sp.sizes[SlotFirst] = s1
		if sp.sizes[SlotSecond] <= 0 {
			sp.sizes[SlotSecond] = s2
		}
	default:
		sp.sizes = [2]int{s1, s2}
		return
	}

	// derive proportion for a later switch to the proportional mode
	if avail <= 0 {
		return
	}
	p := float64(s1) / float64(avail)
	if !mathutil.IsFinite(p) || p == sp.proportion {
		return
	}
	sp.proportion = mathutil.Limit(p, 0.0, 1.0)
	sp.propertyChanged(SplitterPropProportion)
}

//----------

func (sp *Splitter) allocateWhole(r image.Rectangle, a *SplitterAllocation, vis [2]bool) {
	size := image.Point{mathutil.Max(r.Dx(), 1), mathutil.Max(r.Dy(), 1)}
	whole := image.Rectangle{r.Min, r.Min.Add(size)}
	if vis[SlotFirst] {
		a.First, a.HasFirst = whole, true
	} else if vis[SlotSecond] {
		a.Second, a.HasSecond = whole, true
	}
}

// No visible children: the visibility flags might be stale, so occupied slots are forced visible and the first of them gets the whole space.
func (sp *Splitter) allocateFallback(r image.Rectangle, a *SplitterAllocation) {
	vis := [2]bool{}
	for i, c := range sp.childs {
		vis[i] = c.h != nil
	}
	sp.setVisible(vis)
	sp.allocateWhole(r, a, vis)
}
