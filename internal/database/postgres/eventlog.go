package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

func (t *stateTx) AppendEvent(ctx context.Context, record *domain.EventRecord) error {
	seq, err := t.nextID(ctx, counterEvent)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO event_log (seq, type, actor, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
		seq, record.Type, record.Actor, []byte(record.Payload), record.CreatedAt)
	if err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, "event", err)
	}
	record.Seq = seq
	return nil
}

func (t *stateTx) ListEvents(ctx context.Context, afterSeq int64, limit int) ([]domain.EventRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := t.tx.Query(ctx, `
		SELECT seq, type, actor, payload, created_at FROM event_log
		WHERE seq > $1 ORDER BY seq
		LIMIT NULLIF($2, -1)`, afterSeq, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, "events", err)
	}
	defer rows.Close()

	records := []domain.EventRecord{}
	for rows.Next() {
		var (
			r       domain.EventRecord
			payload []byte
		)
		if err := rows.Scan(&r.Seq, &r.Type, &r.Actor, &payload, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, "event", err)
		}
		r.Payload = payload
		r.CreatedAt = utc(r.CreatedAt)
		records = append(records, r)
	}
	return records, rows.Err()
}
