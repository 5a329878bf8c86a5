package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "git.home.luguber.info/inful/mdpages/internal/errors"
)

func names(seq []Document) []string {
	out := make([]string, len(seq))
	for i, d := range seq {
		out[i] = d.FileName
	}
	return out
}

func TestBuildSequenceNumericPrefixOrdering(t *testing.T) {
	seq, err := BuildSequence([]string{"10_x.md", "2_y.md", "1_z.md"}, ".md")
	require.NoError(t, err)
	assert.Equal(t, []string{"1_z.md", "2_y.md", "10_x.md"}, names(seq))
}

func TestBuildSequenceIndexFirst(t *testing.T) {
	seq, err := BuildSequence([]string{"2_setup.md", "index.md", "1_intro.md"}, ".md")
	require.NoError(t, err)
	require.Len(t, seq, 3)
	assert.Equal(t, []string{"index.md", "1_intro.md", "2_setup.md"}, names(seq))
	assert.True(t, seq[0].IsIndex)
}

func TestBuildSequenceExcludesUnrecognized(t *testing.T) {
	seq, err := BuildSequence([]string{"notes.txt", "1_intro.md", "", ".md", "style.css"}, ".md")
	require.NoError(t, err)
	assert.Equal(t, []string{"1_intro.md"}, names(seq))
}

func TestBuildSequenceDuplicateFails(t *testing.T) {
	_, err := BuildSequence([]string{"1_intro.md", "1_intro.md"}, ".md")
	require.Error(t, err)
	assert.True(t, apperrors.IsCategory(err, apperrors.CategoryValidation))
}

func TestBuildSequenceDuplicatePageNameFails(t *testing.T) {
	// Extension case variants resolve to the same base name and would
	// write the same output page.
	_, err := BuildSequence([]string{"intro.md", "intro.MD"}, ".md")
	require.Error(t, err)
	assert.True(t, apperrors.IsCategory(err, apperrors.CategoryValidation))
	assert.Contains(t, err.Error(), "intro")
}

func TestBuildSequenceEmptyInput(t *testing.T) {
	seq, err := BuildSequence(nil, ".md")
	require.NoError(t, err)
	assert.Empty(t, seq)
}

func TestBuildSequenceNoNumericPrefixLexicographic(t *testing.T) {
	seq, err := BuildSequence([]string{"zebra.md", "alpha.md", "3_mid.md"}, ".md")
	require.NoError(t, err)
	// Mixed prefix/non-prefix names compare as plain strings.
	assert.Equal(t, []string{"3_mid.md", "alpha.md", "zebra.md"}, names(seq))
}

func TestBuildSequenceSignedPrefixIsNotNumeric(t *testing.T) {
	// A sign before the digits disqualifies the prefix; such names sort
	// as plain strings ('+' and '-' precede digits in ASCII).
	seq, err := BuildSequence([]string{"10_b.md", "+3_x.md", "-2_y.md", "2_a.md"}, ".md")
	require.NoError(t, err)
	assert.Equal(t, []string{"+3_x.md", "-2_y.md", "2_a.md", "10_b.md"}, names(seq))
}

func TestBuildSequenceIdempotent(t *testing.T) {
	input := []string{"index.md", "10_a.md", "2_b.md", "readme_extra.md", "1_c.md"}
	first, err := BuildSequence(input, ".md")
	require.NoError(t, err)
	second, err := BuildSequence(input, ".md")
	require.NoError(t, err)
	assert.Equal(t, names(first), names(second))
	assert.Len(t, first, len(input))
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		fileName string
		isIndex  bool
		want     string
	}{
		{"03_building_blocks.md", false, "Building Blocks"},
		{"index.md", true, IndexTitle},
		{"1_intro.md", false, "Intro"},
		{"getting_started.md", false, "Getting Started"},
		{"overview.md", false, "Overview"},
		{"10_advanced_topics.md", false, "Advanced Topics"},
	}
	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.fileName, tt.isIndex))
		})
	}
}

func TestComputeNavigationNeighborSymmetry(t *testing.T) {
	seq, err := BuildSequence([]string{"index.md", "1_intro.md", "2_setup.md", "3_usage.md"}, ".md")
	require.NoError(t, err)

	for p := 0; p < len(seq)-1; p++ {
		nav := ComputeNavigation(seq, p)
		next := ComputeNavigation(seq, p+1)
		require.NotNil(t, nav.Next, "position %d", p)
		require.NotNil(t, next.Prev, "position %d", p+1)
		assert.Equal(t, seq[p+1].FileName, nav.Next.FileName)
		assert.Equal(t, seq[p].FileName, next.Prev.FileName)
	}

	assert.Nil(t, ComputeNavigation(seq, 0).Prev)
	assert.Nil(t, ComputeNavigation(seq, len(seq)-1).Next)
}

func TestComputeNavigationIndexLinks(t *testing.T) {
	seq, err := BuildSequence([]string{"index.md", "1_intro.md", "2_setup.md"}, ".md")
	require.NoError(t, err)

	// The index document never links to itself.
	assert.Nil(t, ComputeNavigation(seq, 0).Index)

	nav := ComputeNavigation(seq, 1)
	require.NotNil(t, nav.Prev)
	require.NotNil(t, nav.Index)
	require.NotNil(t, nav.Next)
	assert.Equal(t, "index.md", nav.Prev.FileName)
	assert.Equal(t, "index.md", nav.Index.FileName)
	assert.Equal(t, "2_setup.md", nav.Next.FileName)
}

func TestComputeNavigationNoIndexDocument(t *testing.T) {
	seq, err := BuildSequence([]string{"1_intro.md", "2_setup.md"}, ".md")
	require.NoError(t, err)
	nav := ComputeNavigation(seq, 0)
	assert.Nil(t, nav.Index)
	assert.Nil(t, nav.Prev)
	require.NotNil(t, nav.Next)
}
