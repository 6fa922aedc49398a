package generationlogs

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts one audit row. input_data and output_data are jsonb.
func (r *PGRepo) Create(ctx context.Context, record Record) error {
	input, err := json.Marshal(record.InputData)
	if err != nil {
		return fmt.Errorf("marshal input: %w", err)
	}
	var output any
	if record.OutputData != nil {
		b, err := json.Marshal(record.OutputData)
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		output = b
	}
	var tokens any
	if record.TokensUsed != nil {
		tokens = int64(*record.TokensUsed)
	}
	var errorCode any
	if record.ErrorCode != "" {
		errorCode = record.ErrorCode
	}

	const query = `
INSERT INTO generation_logs (
    id, user_id, prompt_type, input_data, output_data, region, industry,
    model_used, tokens_used, latency_ms, error_code, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.DB.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.PromptType,
		input,
		output,
		record.Region,
		record.Industry,
		record.ModelUsed,
		tokens,
		record.LatencyMs,
		errorCode,
		record.CreatedAt,
	)
	return err
}

var _ Repo = (*PGRepo)(nil)
