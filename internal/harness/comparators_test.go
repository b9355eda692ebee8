package harness

import "testing"

func TestComparisonAlgorithmNames(t *testing.T) {
	cases := []struct {
		algo Algorithm
		want string
	}{
		{NewZlibAlgorithm(), "zlib"},
		{NewLZMAAlgorithm(), "lzma"},
		{NewBzip2Algorithm(), "bzip2"},
	}
	for _, tc := range cases {
		if got := tc.algo.Name(); got != tc.want {
			t.Fatalf("expected name %q, got %q", tc.want, got)
		}
	}
}

func TestComparisonAlgorithmsCompressWithoutError(t *testing.T) {
	page := make([]byte, PageSize)
	for i := range page {
		page[i] = byte(i % 251)
	}

	for _, algo := range []Algorithm{NewZlibAlgorithm(), NewLZMAAlgorithm(), NewBzip2Algorithm()} {
		out, err := algo.Compress(page)
		if err != nil {
			t.Fatalf("%s: Compress: %v", algo.Name(), err)
		}
		if len(out) == 0 {
			t.Fatalf("%s: expected non-empty output", algo.Name())
		}
	}
}
