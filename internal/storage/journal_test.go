package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := OpenJournal(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func sampleRecord(status string, code uint32) BatchRecord {
	return BatchRecord{
		SubmittedAt: time.Now().UTC().Truncate(time.Second),
		Trader:      "7H4ShpibmzrKS8yPJX9wi1ZyrRYzw5tLym7RjWvAxcHA",
		Legs:        4,
		Calls:       8,
		Status:      status,
		ErrCode:     code,
	}
}

func TestRecordAndReadBack(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	ok := sampleRecord("ok", 0)
	ok.Signature = "5VERYfakeSignature"
	id1, err := j.Record(ctx, ok)
	require.NoError(t, err)
	require.Positive(t, id1)

	failed := sampleRecord("failed", 5)
	failed.ErrMsg = "leg 2: required account not found in pool: fee recipient"
	id2, err := j.Record(ctx, failed)
	require.NoError(t, err)
	require.Greater(t, id2, id1)

	recent, err := j.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// newest first
	require.Equal(t, id2, recent[0].ID)
	require.Equal(t, "failed", recent[0].Status)
	require.Equal(t, uint32(5), recent[0].ErrCode)
	require.Equal(t, failed.ErrMsg, recent[0].ErrMsg)
	require.Equal(t, ok.SubmittedAt, recent[1].SubmittedAt)
	require.Equal(t, ok.Signature, recent[1].Signature)

	stats, err := j.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats["total_batches"])
	require.Equal(t, int64(1), stats["ok_batches"])
}

func TestExportParquet(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := j.Record(ctx, sampleRecord("ok", 0))
		require.NoError(t, err)
	}

	out := filepath.Join(t.TempDir(), "batches.parquet")
	n, err := ExportParquet(ctx, j, out, 100)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	fr, err := local.NewLocalFileReader(out)
	require.NoError(t, err)
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(ExportRow), 2)
	require.NoError(t, err)
	defer pr.ReadStop()

	require.Equal(t, int64(5), pr.GetNumRows())
}

func TestExportHonorsLimit(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := j.Record(ctx, sampleRecord("ok", 0))
		require.NoError(t, err)
	}

	out := filepath.Join(t.TempDir(), "batches.parquet")
	n, err := ExportParquet(ctx, j, out, 3)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}
