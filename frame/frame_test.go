package frame

import (
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

func testFrame(t *testing.T) *Frame {
	f, err := New(
		NewIntColumn("id", []int32{3, 1, 2}),
		NewDoubleColumn("score", []float64{0.5, 1.5, 2.5}),
		NewStringColumn("name", []string{"c", "a", "b"}),
		NewBooleanColumnOf("ok", true, false, true),
	)
	require.NoError(t, err)
	return f
}

func TestNew(t *testing.T) {
	f := testFrame(t)
	expect.EQ(t, f.RowsNumber(), 3)
	expect.EQ(t, f.ColumnsNumber(), 4)
	expect.EQ(t, f.Labels(), []string{"id", "score", "name", "ok"})
	expect.EQ(t, f.String(), "Frame(3 rows; id:Int, score:Double, name:String, ok:Boolean)")

	_, err := New(NewIntColumn("a", []int32{1}), NewIntColumn("b", nil))
	expect.True(t, errors.Is(errors.Precondition, err))
	_, err = New(NewIntColumn("a", []int32{1}), NewLongColumn("a", []int64{1}))
	expect.True(t, errors.Is(errors.Precondition, err))

	empty, err := New()
	assert.NoError(t, err)
	expect.EQ(t, empty.RowsNumber(), 0)
}

func TestGet(t *testing.T) {
	f := testFrame(t)
	// A label built at run time is found by content.
	label := string([]byte{'s', 'c', 'o', 'r', 'e'})
	c, err := f.Get(label)
	assert.NoError(t, err)
	expect.EQ(t, c.Label(), "score")

	_, err = f.Get("missing")
	require.Error(t, err)
	expect.True(t, errors.Is(errors.NotExist, err))
	expect.True(t, strings.Contains(err.Error(), "id, score, name, ok"), err.Error())

	ids, err := f.SliceAsInt("id")
	assert.NoError(t, err)
	expect.EQ(t, ids, []int32{3, 1, 2})
	ok, err := f.SliceAsBool("ok")
	assert.NoError(t, err)
	expect.EQ(t, ok, []bool{true, false, true})
	_, err = f.SliceAsDouble("id")
	expect.True(t, errors.Is(errors.Precondition, err))
}

func TestWith(t *testing.T) {
	f := testFrame(t)
	g, err := f.With(NewLongColumn("n", []int64{7, 8, 9}))
	assert.NoError(t, err)
	expect.EQ(t, g.Labels(), []string{"id", "score", "name", "ok", "n"})
	expect.EQ(t, f.ColumnsNumber(), 4)

	g, err = f.With(NewStringColumn("name", []string{"x", "y", "z"}))
	assert.NoError(t, err)
	names, err := g.SliceAsString("name")
	assert.NoError(t, err)
	expect.EQ(t, names, []string{"x", "y", "z"})

	_, err = f.With(NewLongColumn("n", []int64{7}))
	expect.True(t, errors.Is(errors.Precondition, err))

	empty, err := New()
	assert.NoError(t, err)
	g, err = empty.With(NewLongColumn("n", []int64{7}))
	assert.NoError(t, err)
	expect.EQ(t, g.RowsNumber(), 1)
}

func TestFilter(t *testing.T) {
	f := testFrame(t)
	m, err := f.Test(Where("score", func(v float64) bool { return v > 1 }), 0, 3)
	assert.NoError(t, err)
	expect.EQ(t, m.Rows(), []int{1, 2})
	m, err = f.Test(Where("score", func(v float64) bool { return v > 1 }), 0, 2)
	assert.NoError(t, err)
	expect.EQ(t, m.Rows(), []int{1})

	g, err := f.FilterMask(m)
	assert.NoError(t, err)
	expect.EQ(t, g.RowsNumber(), m.Cardinality())
	names, err := g.SliceAsString("name")
	assert.NoError(t, err)
	expect.EQ(t, names, []string{"a"})
	// f is unchanged.
	expect.EQ(t, f.RowsNumber(), 3)
	names, err = f.SliceAsString("name")
	assert.NoError(t, err)
	expect.EQ(t, names, []string{"c", "a", "b"})

	g, err = f.Filter(WhereBool("ok", true))
	assert.NoError(t, err)
	ids, err := g.SliceAsInt("id")
	assert.NoError(t, err)
	expect.EQ(t, ids, []int32{3, 2})

	_, err = f.Filter(Where("name", func(float64) bool { return true }))
	expect.True(t, errors.Is(errors.NotSupported, err))
	_, err = f.Test(WhereBool("ok", true), 2, 4)
	expect.True(t, errors.Is(errors.Precondition, err))
	_, err = f.FilterMask(NewMask(2))
	expect.True(t, errors.Is(errors.Precondition, err))
}

func TestReorderResize(t *testing.T) {
	f := testFrame(t)
	g, err := f.Reorder("id", false)
	assert.NoError(t, err)
	names, err := g.SliceAsString("name")
	assert.NoError(t, err)
	expect.EQ(t, names, []string{"a", "b", "c"})
	ok, err := g.SliceAsBool("ok")
	assert.NoError(t, err)
	expect.EQ(t, ok, []bool{false, true, true})

	g, err = f.Reorder("name", true)
	assert.NoError(t, err)
	ids, err := g.SliceAsInt("id")
	assert.NoError(t, err)
	expect.EQ(t, ids, []int32{3, 2, 1})

	g, err = f.Resize(5)
	assert.NoError(t, err)
	expect.EQ(t, g.RowsNumber(), 5)
	scores, err := g.SliceAsDouble("score")
	assert.NoError(t, err)
	expect.EQ(t, scores, []float64{0.5, 1.5, 2.5, 0, 0})
	_, err = f.Resize(-1)
	expect.True(t, errors.Is(errors.Precondition, err))
}

func TestOnlyOmit(t *testing.T) {
	f := testFrame(t)
	g, err := f.Only("name", "id")
	assert.NoError(t, err)
	expect.EQ(t, g.Labels(), []string{"name", "id"})
	g, err = f.Omit("score", "ok")
	assert.NoError(t, err)
	expect.EQ(t, g.Labels(), []string{"id", "name"})
	_, err = f.Only("nope")
	expect.True(t, errors.Is(errors.NotExist, err))
	_, err = f.Omit("nope")
	expect.True(t, errors.Is(errors.NotExist, err))
}

func TestColumnBind(t *testing.T) {
	a, err := New(NewIntColumn("on", []int32{1, 2}), NewIntColumn("x", []int32{1, 2}))
	require.NoError(t, err)
	b, err := New(NewIntColumn("on", []int32{1, 2}), NewIntColumn("x", []int32{3, 4}), NewIntColumn("x1", []int32{5, 6}))
	require.NoError(t, err)
	c, err := New(NewIntColumn("x", []int32{7, 8}))
	require.NoError(t, err)

	g, err := ColumnBind([]string{"on"}, a, b, c)
	assert.NoError(t, err)
	expect.EQ(t, g.Labels(), []string{"on", "x", "x2", "x1", "x3"})
	for label, want := range map[string][]int32{"x": {1, 2}, "x2": {3, 4}, "x1": {5, 6}, "x3": {7, 8}} {
		got, err := g.SliceAsInt(label)
		assert.NoError(t, err)
		expect.EQ(t, got, want, label)
	}

	xy, err := New(NewIntColumn("x", []int32{1, 2}), NewIntColumn("y", []int32{3, 4}))
	require.NoError(t, err)
	xx1, err := New(NewIntColumn("x", []int32{5, 6}), NewIntColumn("x1", []int32{7, 8}))
	require.NoError(t, err)
	g, err = ColumnBind(nil, xy, xx1, c)
	assert.NoError(t, err)
	expect.EQ(t, g.Labels(), []string{"x", "y", "x2", "x1", "x3"})
	x1, err := g.SliceAsInt("x1")
	assert.NoError(t, err)
	expect.EQ(t, x1, []int32{7, 8})

	g, err = ColumnBind(nil, a, a)
	assert.NoError(t, err)
	expect.EQ(t, g.Labels(), []string{"on", "x", "on1", "x1"})

	short, err := New(NewIntColumn("y", []int32{1}))
	require.NoError(t, err)
	_, err = ColumnBind(nil, a, short)
	expect.True(t, errors.Is(errors.Precondition, err))
}

func TestRowBind(t *testing.T) {
	f := testFrame(t)
	g, err := RowBind(f, f)
	assert.NoError(t, err)
	expect.EQ(t, g.RowsNumber(), 6)
	ok, err := g.SliceAsBool("ok")
	assert.NoError(t, err)
	expect.EQ(t, ok, []bool{true, false, true, true, false, true})

	empty, err := New()
	require.NoError(t, err)
	g, err = RowBind(empty, f)
	assert.NoError(t, err)
	expect.EQ(t, g, f)

	swapped, err := f.Only("score", "id", "name", "ok")
	require.NoError(t, err)
	_, err = RowBind(f, swapped)
	expect.True(t, errors.Is(errors.Precondition, err))
}

func TestMergeInner(t *testing.T) {
	f1, err := New(NewIntColumn("on", []int32{3, 1, 2}), NewStringColumn("a", []string{"three", "one", "two"}))
	require.NoError(t, err)
	f2, err := New(NewIntColumn("on", []int32{4, 2, 3}), NewDoubleColumn("b", []float64{4, 2, 3}))
	require.NoError(t, err)

	g, err := MergeInner("on", f1, f2)
	assert.NoError(t, err)
	expect.EQ(t, g.Labels(), []string{"on", "a", "b"})
	on, err := g.SliceAsInt("on")
	assert.NoError(t, err)
	expect.EQ(t, on, []int32{2, 3})
	a, err := g.SliceAsString("a")
	assert.NoError(t, err)
	expect.EQ(t, a, []string{"two", "three"})
	b, err := g.SliceAsDouble("b")
	assert.NoError(t, err)
	expect.EQ(t, b, []float64{2, 3})

	_, err = MergeInner("on", f1)
	expect.True(t, errors.Is(errors.Precondition, err))
	_, err = MergeInner("missing", f1, f2)
	expect.True(t, errors.Is(errors.NotExist, err))
	l1, err := New(NewLongColumn("on", []int64{1}))
	require.NoError(t, err)
	_, err = MergeInner("on", l1, l1)
	expect.True(t, errors.Is(errors.NotSupported, err))
}

func TestMergeOuter(t *testing.T) {
	f1, err := New(NewIntColumn("on", []int32{3, 1, 2}), NewStringColumn("a", []string{"three", "one", "two"}))
	require.NoError(t, err)
	f2, err := New(NewIntColumn("on", []int32{4, 2, 3}), NewDoubleColumn("b", []float64{4, 2, 3}))
	require.NoError(t, err)

	g, err := MergeOuter("on", f1, f2)
	assert.NoError(t, err)
	expect.EQ(t, g.Labels(), []string{"on", "a", "b"})
	on, err := g.SliceAsInt("on")
	assert.NoError(t, err)
	expect.EQ(t, on, []int32{1, 2, 3, 4})
	a, err := g.SliceAsString("a")
	assert.NoError(t, err)
	expect.EQ(t, a, []string{"one", "two", "three", ""})
	b, err := g.SliceAsDouble("b")
	assert.NoError(t, err)
	expect.EQ(t, b, []float64{0, 2, 3, 4})

	dup, err := New(NewIntColumn("on", []int32{1, 1}))
	require.NoError(t, err)
	_, err = MergeOuter("on", dup, f1)
	expect.True(t, errors.Is(errors.Precondition, err))
}

func TestBuilder(t *testing.T) {
	b, err := NewBuilder(ColumnSpec{Label: "n", Type: Int}, ColumnSpec{Label: "s", Type: String})
	assert.NoError(t, err)
	assert.NoError(t, b.AddRow("1", "x"))
	err = b.AddRow("two", "y")
	expect.True(t, errors.Is(errors.Invalid, err))
	assert.NoError(t, b.AddRow("3", "z"))
	expect.True(t, errors.Is(errors.Precondition, b.AddRow("4")))
	f, err := b.Build()
	assert.NoError(t, err)
	n, err := f.SliceAsInt("n")
	assert.NoError(t, err)
	expect.EQ(t, n, []int32{1, 3})
	s, err := f.SliceAsString("s")
	assert.NoError(t, err)
	expect.EQ(t, s, []string{"x", "z"})

	_, err = NewBuilder(ColumnSpec{Label: "n", Type: Int}, ColumnSpec{Label: "n", Type: Long})
	expect.True(t, errors.Is(errors.Precondition, err))
}
