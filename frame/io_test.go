package frame

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

func enumFrame(t *testing.T) (*Frame, EnumRegistry) {
	e, err := NewEnum("Feature", "exon", "intron")
	require.NoError(t, err)
	feature, err := NewEnumColumnOf("feature", e, "intron", "exon")
	require.NoError(t, err)
	f, err := New(
		NewByteColumn("b", []int8{-3, 4}),
		NewShortColumn("s", []int16{300, -1}),
		NewIntColumn("i", []int32{1, 2}),
		NewLongColumn("l", []int64{1 << 40, 0}),
		NewFloatColumn("f", []float32{0.25, 1}),
		NewDoubleColumn("d", []float64{1e-300, -2.5}),
		NewStringColumn("str", []string{"x y", ""}),
		NewBooleanColumnOf("ok", false, true),
		feature,
	)
	require.NoError(t, err)
	return f, NewEnumRegistry(e)
}

const wantTSV = "# Byte; Short; Int; Long; Float; Double; String; Boolean; Feature\n" +
	"b\ts\ti\tl\tf\td\tstr\tok\tfeature\n" +
	"-3\t300\t1\t1099511627776\t0.25\t1e-300\tx y\tfalse\tintron\n" +
	"4\t-1\t2\t0\t1\t-2.5\t\ttrue\texon\n"

func checkSameFrame(t *testing.T, got, want *Frame) {
	expect.EQ(t, got.Labels(), want.Labels())
	expect.EQ(t, got.RowsNumber(), want.RowsNumber())
	for i, c := range want.Columns() {
		expect.EQ(t, got.Column(i).TypeName(), c.TypeName())
		for row := 0; row < c.Len(); row++ {
			expect.EQ(t, got.Column(i).Dump(row), c.Dump(row))
		}
	}
}

func TestWriteRead(t *testing.T) {
	f, enums := enumFrame(t)
	var buf bytes.Buffer
	assert.NoError(t, f.Write(&buf, DefaultWriteOpts))
	expect.EQ(t, buf.String(), wantTSV)

	got, err := Read(strings.NewReader(wantTSV), enums)
	assert.NoError(t, err)
	checkSameFrame(t, got, f)

	_, err = Read(strings.NewReader(wantTSV), nil)
	expect.True(t, errors.Is(errors.NotExist, err))
}

func TestWriteReadSingleColumn(t *testing.T) {
	e, err := NewEnum("Feature", "exon", "intron")
	require.NoError(t, err)
	feature, err := NewEnumColumnOf("feature", e, "exon")
	require.NoError(t, err)
	enums := NewEnumRegistry(e)

	for _, c := range []Column{
		NewStringColumn("s", []string{"a", "", "b"}),
		NewStringColumn("s", []string{""}),
		NewStringColumn("q", []string{`"x"`, `"a""b`, `y"`}),
		feature.Resize(3),
	} {
		f, err := New(c)
		require.NoError(t, err)
		var buf bytes.Buffer
		assert.NoError(t, f.Write(&buf, DefaultWriteOpts))
		got, err := Read(&buf, enums)
		assert.NoError(t, err)
		checkSameFrame(t, got, f)
	}

	empty, err := New()
	require.NoError(t, err)
	var buf bytes.Buffer
	assert.NoError(t, empty.Write(&buf, DefaultWriteOpts))
	expect.EQ(t, buf.String(), "# \n")
	got, err := Read(&buf, nil)
	assert.NoError(t, err)
	expect.EQ(t, len(got.Columns()), 0)

	got, err = Read(strings.NewReader("# Feature\nfeature\n\nintron\n\n"), enums)
	assert.NoError(t, err)
	expect.EQ(t, got.RowsNumber(), 3)
	expect.EQ(t, got.Column(0).Dump(0), "")
	expect.EQ(t, got.Column(0).Dump(1), "intron")

	got, err = Read(strings.NewReader("# String; Int\ns\tn\n\"x\"\t1\r\n"), nil)
	assert.NoError(t, err)
	expect.EQ(t, got.Column(0).Dump(0), `"x"`)
	expect.EQ(t, got.Column(1).Dump(0), "1")
}

func TestWriteRejectsSeparators(t *testing.T) {
	for _, cell := range []string{"a\tb", "a\nb", "a\r"} {
		f, err := New(NewIntColumn("n", []int32{1}), NewStringColumn("s", []string{cell}))
		require.NoError(t, err)
		err = f.Write(&bytes.Buffer{}, DefaultWriteOpts)
		require.Error(t, err)
		expect.True(t, errors.Is(errors.Invalid, err))
		expect.True(t, strings.Contains(err.Error(), `"s"`), err.Error())
	}
	f, err := New(NewStringColumn("a\tb", []string{"x"}))
	require.NoError(t, err)
	expect.True(t, errors.Is(errors.Invalid, f.Write(&bytes.Buffer{}, DefaultWriteOpts)))
}

func TestWriteFloatFormat(t *testing.T) {
	f, err := New(NewIntColumn("n", []int32{1}), NewDoubleColumn("p", []float64{0.123456}))
	require.NoError(t, err)
	var buf bytes.Buffer
	opts := WriteOpts{FloatFormat: func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }}
	assert.NoError(t, f.Write(&buf, opts))
	expect.EQ(t, buf.String(), "# Int; Double\nn\tp\n1\t0.12\n")
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("n\n1\n"), nil)
	expect.True(t, errors.Is(errors.Invalid, err))

	_, err = Read(strings.NewReader("# Int\nn\n1\nx\n"), nil)
	require.Error(t, err)
	expect.True(t, errors.Is(errors.Invalid, err))
	for _, want := range []string{"row 1", `"n"`, `"x"`, "Int"} {
		expect.True(t, strings.Contains(err.Error(), want), err.Error())
	}

	_, err = Read(strings.NewReader("# Int; Int\nn\tm\n1\n"), nil)
	expect.True(t, errors.Is(errors.Invalid, err))

	_, err = Read(strings.NewReader("# Int; Int\nn\tm\n1\t2\t3\n"), nil)
	require.Error(t, err)
	expect.True(t, errors.Is(errors.Invalid, err))
	expect.True(t, strings.Contains(err.Error(), "row 0 has 3 cells"), err.Error())

	_, err = Read(strings.NewReader("# Int; Int\nn\n"), nil)
	expect.True(t, errors.Is(errors.Invalid, err))

	_, err = Read(strings.NewReader("# Int\n"), nil)
	expect.True(t, errors.Is(errors.Invalid, err))

	f, err := Read(strings.NewReader("# Int; Double\nn\tp\n"), nil)
	assert.NoError(t, err)
	expect.EQ(t, f.RowsNumber(), 0)
	expect.EQ(t, f.Labels(), []string{"n", "p"})
}

func TestSaveLoad(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "frame")
	defer cleanup()
	ctx := vcontext.Background()
	f, enums := enumFrame(t)
	for _, name := range []string{"f.tsv", "f.tsv.gz"} {
		path := filepath.Join(dir, name)
		assert.NoError(t, f.Save(ctx, path, DefaultWriteOpts))
		got, err := Load(ctx, path, enums)
		assert.NoError(t, err)
		checkSameFrame(t, got, f)
	}
	_, err := Load(ctx, filepath.Join(dir, "missing.tsv"), enums)
	expect.NotNil(t, err)
}
