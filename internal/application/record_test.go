package application

import (
	"context"
	"testing"

	"orgnet/internal/domain"
	"orgnet/internal/streaming"
)

type mockJournal struct {
	records []domain.OutcomeRecord
	err     error
}

func (m *mockJournal) StoreOutcome(ctx context.Context, record domain.OutcomeRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, record)
	return nil
}

func TestApplyMessageStoresOutcome(t *testing.T) {
	journal := &mockJournal{}

	err := ApplyMessage(context.Background(), journal, streaming.Message{
		Type:        streaming.MessageTypeOutcome,
		ChainID:     10143,
		Domain:      domain.DomainTask,
		Action:      "create_task",
		EntityID:    42,
		TxHash:      "0xabc",
		BlockNumber: 100,
		Sender:      "0x00000000000000000000000000000000000000aa",
		Status:      1,
		GasUsed:     21000,
	})
	if err != nil {
		t.Fatalf("ApplyMessage: %v", err)
	}
	if len(journal.records) != 1 {
		t.Fatalf("records = %d, want 1", len(journal.records))
	}
	record := journal.records[0]
	if record.ChainID != 10143 || record.EntityID != 42 || record.TxHash != "0xabc" {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.Domain != domain.DomainTask || record.Action != "create_task" {
		t.Fatalf("unexpected record tags: %+v", record)
	}
}

func TestApplyMessageUnknownType(t *testing.T) {
	journal := &mockJournal{}
	err := ApplyMessage(context.Background(), journal, streaming.Message{Type: "block", ChainID: 1})
	if err == nil {
		t.Fatal("expected error for unknown message type")
	}
	if len(journal.records) != 0 {
		t.Fatalf("records = %d, want 0", len(journal.records))
	}
}

func TestApplyMessageNilRepository(t *testing.T) {
	err := ApplyMessage(context.Background(), nil, streaming.Message{Type: streaming.MessageTypeOutcome, ChainID: 1})
	if err == nil {
		t.Fatal("expected error for nil repository")
	}
}
