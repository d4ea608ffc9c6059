package search_test

import (
	"testing"

	"github.com/fwojciec/regscout/search"
	"github.com/stretchr/testify/assert"
)

func TestTracker_MarkIdentifier_rejects_duplicates(t *testing.T) {
	t.Parallel()

	tr := search.NewTracker()

	assert.True(t, tr.MarkIdentifier("4783"))
	assert.False(t, tr.MarkIdentifier("4783"))
	assert.True(t, tr.MarkIdentifier("4784"))
	assert.Equal(t, 2, tr.Identifiers())
}

func TestTracker_MarkURL_rejects_duplicates(t *testing.T) {
	t.Parallel()

	tr := search.NewTracker()

	assert.True(t, tr.MarkURL("https://irdai.gov.in/circulars"))
	assert.False(t, tr.MarkURL("https://irdai.gov.in/circulars"))
	assert.True(t, tr.MarkURL("https://irdai.gov.in/notifications"))
}

func TestTracker_state_is_not_shared_between_trackers(t *testing.T) {
	t.Parallel()

	a := search.NewTracker()
	b := search.NewTracker()

	a.MarkIdentifier("4783")
	assert.True(t, b.MarkIdentifier("4783"))
}
