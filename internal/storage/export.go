package storage

import (
	"context"
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"
)

// ExportRow mirrors BatchRecord in the column layout the planner's
// analysis tooling consumes.
type ExportRow struct {
	Id          int64  `parquet:"name=id, type=INT64"`
	SubmittedAt int64  `parquet:"name=submitted_at, type=INT64"`
	Trader      string `parquet:"name=trader, type=BYTE_ARRAY, convertedtype=UTF8"`
	Legs        int32  `parquet:"name=legs, type=INT32"`
	Calls       int32  `parquet:"name=calls, type=INT32"`
	Status      string `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	ErrCode     int32  `parquet:"name=err_code, type=INT32"`
	ErrMsg      string `parquet:"name=err_msg, type=BYTE_ARRAY, convertedtype=UTF8"`
	Signature   string `parquet:"name=signature, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// ExportParquet dumps up to limit of the newest journal records to a
// parquet file and returns how many rows were written.
func ExportParquet(ctx context.Context, j *Journal, path string, limit int) (int, error) {
	records, err := j.Recent(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("read journal: %w", err)
	}

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return 0, fmt.Errorf("create parquet file: %w", err)
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(ExportRow), 2)
	if err != nil {
		return 0, fmt.Errorf("create parquet writer: %w", err)
	}

	for _, rec := range records {
		row := ExportRow{
			Id:          rec.ID,
			SubmittedAt: rec.SubmittedAt.Unix(),
			Trader:      rec.Trader,
			Legs:        int32(rec.Legs),
			Calls:       int32(rec.Calls),
			Status:      rec.Status,
			ErrCode:     int32(rec.ErrCode),
			ErrMsg:      rec.ErrMsg,
			Signature:   rec.Signature,
		}
		if err := pw.Write(row); err != nil {
			return 0, fmt.Errorf("write parquet row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return 0, fmt.Errorf("finalize parquet: %w", err)
	}

	return len(records), nil
}
