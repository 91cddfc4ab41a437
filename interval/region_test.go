package interval

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestParseRegionString(t *testing.T) {
	tests := []struct {
		region string
		want   Region
	}{
		{"chr1:1-1000", Region{"chr1", Range{0, 1000}}},
		{"chr1:1000", Region{"chr1", Range{999, 1000}}},
		{"chr1", Region{"chr1", Range{0, PosTypeMax - 1}}},
	}
	for _, tt := range tests {
		result, err := ParseRegionString(tt.region)
		expect.NoError(t, err)
		expect.EQ(t, result, tt.want)
	}
	expect.EQ(t, Region{"chr2", Range{9, 20}}.String(), "chr2:10-20")
}

func TestParseRegionStringErrors(t *testing.T) {
	for _, region := range []string{"", ":1-5", "chr1:0", "chr1:10-5", "chr1:a-5", "chr1:0-5"} {
		_, err := ParseRegionString(region)
		expect.NotNil(t, err, region)
	}
}
