package portal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestClient(opts ...SimulatedOption) *Simulated {
	return NewSimulated(append([]SimulatedOption{WithLatency(0)}, opts...)...)
}

func TestSimulated_LoginEchoesUsername(t *testing.T) {
	t.Parallel()
	c := newTestClient()

	sess, err := c.Login(context.Background(), Credentials{Username: "eng1", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, Session{Username: "eng1"}, sess)
}

func TestSimulated_LoginAcceptsAnything(t *testing.T) {
	t.Parallel()
	c := newTestClient()

	// No validation is current product behavior, not a defect.
	sess, err := c.Login(context.Background(), Credentials{})
	require.NoError(t, err)
	assert.Equal(t, "", sess.Username)
}

func TestSimulated_UploadOneRecordPerFile(t *testing.T) {
	t.Parallel()
	fixed := time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)
	c := newTestClient(WithClock(func() time.Time { return fixed }))

	files := []FileInfo{
		{Name: "report.pdf", Size: 2048, ContentType: AcceptedContentType},
		{Name: "audit.pdf", Size: 4096, ContentType: AcceptedContentType},
	}
	docs, err := c.Upload(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "report.pdf", docs[0].Name)
	assert.Equal(t, int64(2048), docs[0].Size)
	assert.Equal(t, "PDF", docs[0].Type)
	assert.Equal(t, fixed, docs[0].UploadDate)
	assert.Equal(t, "Auto-generated summary for report.pdf", docs[0].Summary)
	assert.NotEqual(t, docs[0].ID, docs[1].ID, "ids must be unique within a batch")
}

func TestSimulated_UploadIDsUniqueAcrossSameInstantBatches(t *testing.T) {
	t.Parallel()
	fixed := time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)
	c := newTestClient(WithClock(func() time.Time { return fixed }))

	seen := make(map[string]bool)
	for range 10 {
		docs, err := c.Upload(context.Background(), []FileInfo{
			{Name: "report.pdf", Size: 1, ContentType: AcceptedContentType},
		})
		require.NoError(t, err)
		require.False(t, seen[docs[0].ID], "id %s repeated across batches", docs[0].ID)
		seen[docs[0].ID] = true
	}
}

func TestSimulated_ChatCannedReplies(t *testing.T) {
	t.Parallel()
	c := newTestClient()

	reply, err := c.Chat(context.Background(), "which trains are ready?")
	require.NoError(t, err)
	assert.Contains(t, reply, "18 out of 24 trains")

	reply, err = c.Chat(context.Background(), "anything new?")
	require.NoError(t, err)
	assert.Contains(t, reply, "I understand your query")
}

func TestSimulated_FleetSnapshotIsCopy(t *testing.T) {
	t.Parallel()
	c := newTestClient()

	first, err := c.FleetStatus(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, first)
	first[0].Status = StatusSafety

	second, err := c.FleetStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusReady, second[0].Status, "mutating one snapshot must not leak into the next")
}

func TestSimulated_FleetSummaryMatchesRoster(t *testing.T) {
	t.Parallel()
	c := newTestClient()

	roster, err := c.FleetStatus(context.Background())
	require.NoError(t, err)

	sum := SummarizeFleet(roster)
	assert.Equal(t, len(roster), sum.Total())
	assert.Equal(t, FleetSummary{Ready: 2, Maintenance: 1, Safety: 1}, sum)
}

func TestSimulated_SearchResultSets(t *testing.T) {
	t.Parallel()
	c := newTestClient()

	results, err := c.Search(context.Background(), "safety protocols")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Safety Protocol Update", results[0].Title)
	assert.Equal(t, 0.95, results[0].RelevanceScore)

	results, err = c.Search(context.Background(), "maintenance windows")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Scheduled Maintenance Guidelines", results[0].Title)

	results, err = c.Search(context.Background(), "door torque specs")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "General Operations Manual", results[0].Title)
}

func TestSimulated_FailureInjection(t *testing.T) {
	t.Parallel()
	boom := errors.New("backend unavailable")
	c := newTestClient(WithFailure(OpChat, boom))

	_, err := c.Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, boom)

	// Other operations are unaffected.
	_, err = c.FleetStatus(context.Background())
	assert.NoError(t, err)
}

func TestSimulated_LatencyHonorsContext(t *testing.T) {
	t.Parallel()
	c := NewSimulated(WithLatency(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Chat(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilterAccepted(t *testing.T) {
	t.Parallel()

	files := []FileInfo{
		{Name: "report.pdf", ContentType: AcceptedContentType},
		{Name: "notes.txt", ContentType: "text/plain"},
		{Name: "scan.pdf", ContentType: AcceptedContentType},
	}
	accepted, rejected := FilterAccepted(files)
	require.Len(t, accepted, 2)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, "report.pdf", accepted[0].Name)
	assert.Equal(t, "scan.pdf", accepted[1].Name)

	accepted, rejected = FilterAccepted(nil)
	assert.Empty(t, accepted)
	assert.Zero(t, rejected)
}

func TestSummarizeFleet_Empty(t *testing.T) {
	t.Parallel()
	sum := SummarizeFleet(nil)
	if sum.Total() != 0 {
		t.Errorf("empty roster total = %d, want 0", sum.Total())
	}
}
