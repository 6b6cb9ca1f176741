package omap

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/niceyeti/stl/internal/errs"
)

func lessInt(a, b int) bool { return a < b }

func keysOf(m *Map[int, string]) []int {
	return m.Keys()
}

func TestInsertFindAtIndexErase(t *testing.T) {
	Convey("Given a map with (3,c),(1,a),(2,b)", t, func() {
		m := New[int, string](lessInt)
		_, inserted := m.Insert(3, "c")
		So(inserted, ShouldBeTrue)
		_, inserted = m.Insert(1, "a")
		So(inserted, ShouldBeTrue)
		_, inserted = m.Insert(2, "b")
		So(inserted, ShouldBeTrue)

		Convey("Iterating yields keys 1,2,3", func() {
			So(keysOf(m), ShouldResemble, []int{1, 2, 3})
		})

		Convey("At(2) == \"b\"", func() {
			v, err := m.At(2)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "b")
		})

		Convey("Index(4) creates a default entry and Count(4) becomes 1", func() {
			So(m.Count(4), ShouldEqual, 0)
			v := m.Index(4)
			So(*v, ShouldEqual, "")
			So(m.Count(4), ShouldEqual, 1)
		})

		Convey("Erasing find(2) leaves keys 1,3,4 once 4 was created", func() {
			m.Index(4)
			it := m.Find(2)
			So(it.Valid(), ShouldBeTrue)
			So(m.Erase(it), ShouldBeNil)
			So(keysOf(m), ShouldResemble, []int{1, 3, 4})
		})

		Convey("Re-inserting an existing key does not overwrite the value", func() {
			it, inserted := m.Insert(2, "zzz")
			So(inserted, ShouldBeFalse)
			v, _ := it.Value()
			So(v, ShouldEqual, "b")
		})
	})
}

func TestBoundaryBehaviors(t *testing.T) {
	Convey("Given an empty map", t, func() {
		m := New[int, string](lessInt)

		Convey("At a missing key fails with index-out-of-bound", func() {
			_, err := m.At(42)
			So(err, ShouldEqual, errs.ErrIndexOutOfBound)
		})

		Convey("Find a missing key returns End()", func() {
			it := m.Find(42)
			So(it.Equal(m.End()), ShouldBeTrue)
		})

		Convey("Dereferencing End() fails with index-out-of-bound", func() {
			_, err := m.End().Value()
			So(err, ShouldEqual, errs.ErrIndexOutOfBound)
		})

		Convey("Next() on End() fails with invalid-iterator", func() {
			_, err := m.End().Next()
			So(err, ShouldEqual, errs.ErrInvalidIterator)
		})

		Convey("Prev() on Begin() fails with invalid-iterator", func() {
			_, err := m.Begin().Prev()
			So(err, ShouldEqual, errs.ErrInvalidIterator)
		})

		Convey("Erase(End()) fails with invalid-iterator", func() {
			So(m.Erase(m.End()), ShouldEqual, errs.ErrInvalidIterator)
		})
	})

	Convey("An iterator from a different map is invalid here", t, func() {
		a := New[int, string](lessInt)
		a.Insert(1, "a")
		b := New[int, string](lessInt)
		b.Insert(1, "a")

		it := a.Find(1)
		So(b.Erase(it), ShouldEqual, errs.ErrInvalidIterator)
	})
}

func TestCloneIsIndependent(t *testing.T) {
	Convey("Given a map with entries", t, func() {
		m := New[int, string](lessInt)
		m.Insert(1, "a")
		m.Insert(2, "b")

		Convey("Clone shares no node storage", func() {
			clone := m.Clone()
			So(keysOf(clone), ShouldResemble, keysOf(m))

			it := clone.Find(1)
			So(clone.Erase(it), ShouldBeNil)
			So(m.Count(1), ShouldEqual, 1)
			So(clone.Count(1), ShouldEqual, 0)
		})
	})
}

func TestClear(t *testing.T) {
	Convey("Given a non-empty map", t, func() {
		m := New[int, string](lessInt)
		m.Insert(1, "a")
		m.Insert(2, "b")

		Convey("Clear empties it and iteration is stable afterward", func() {
			m.Clear()
			So(m.Empty(), ShouldBeTrue)
			So(keysOf(m), ShouldResemble, []int{})

			_, inserted := m.Insert(5, "e")
			So(inserted, ShouldBeTrue)
			So(keysOf(m), ShouldResemble, []int{5})
		})
	})
}
