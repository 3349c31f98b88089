package snapshotExporter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/exception"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/logger"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
)

type fakeScanner struct {
	cards []model.BusinessCardSnapshot
	err   error
}

func (s *fakeScanner) ScanPublicProjection(ctx context.Context) ([]model.BusinessCardSnapshot, error) {
	return s.cards, s.err
}

type fakePublisher struct {
	key  string
	body []byte
	err  error
}

func (p *fakePublisher) PutPublicJSON(ctx context.Context, key string, body []byte) error {
	if p.err != nil {
		return p.err
	}
	p.key = key
	p.body = body
	return nil
}

func snapshotCardsFixture() []model.BusinessCardSnapshot {
	return []model.BusinessCardSnapshot{
		{Slug: "rk-plumbing", BusinessName: "RK Plumbing", Category: "Plumber", City: "Bengaluru", Country: "IN", Currency: "INR", Tier: "STARTER"},
		{Slug: "maya-bakes", BusinessName: "Maya Bakes", Category: "Bakery", City: "Bengaluru", Country: "IN", Currency: "INR", Tier: "PROFESSIONAL"},
		{Slug: "dev-motors", BusinessName: "Dev Motors", Category: "Car Repair", City: "Mysuru", Country: "IN", Currency: "INR", Tier: "STARTER"},
	}
}

func TestRun_PublishesSnapshot(t *testing.T) {
	scanner := &fakeScanner{cards: snapshotCardsFixture()}
	publisher := &fakePublisher{}
	exporter := NewExporter(scanner, publisher, logger.NewLogger())

	summary, err := exporter.Run(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}

	if summary.Count != 3 {
		t.Errorf("Expected count 3, but got %d", summary.Count)
	}
	if summary.ObjectKey != "public/businesses.json" {
		t.Errorf("Expected object key public/businesses.json, but got %s", summary.ObjectKey)
	}
	if publisher.key != model.SnapshotObjectKey {
		t.Errorf("Expected publish to %s, but got %s", model.SnapshotObjectKey, publisher.key)
	}

	var document model.SnapshotDocument
	err = json.Unmarshal(publisher.body, &document)
	if err != nil {
		t.Fatalf("Expected valid JSON body, but got %v", err)
	}
	if document.Meta.Count != len(document.Data) {
		t.Errorf("Expected meta count %d to match data length %d", document.Meta.Count, len(document.Data))
	}
	if document.Meta.Version != "1.0" {
		t.Errorf("Expected version 1.0, but got %s", document.Meta.Version)
	}
	if document.Meta.GeneratedAt == "" {
		t.Errorf("Expected generatedAt to be set")
	}
	if document.Data[0].Slug != "rk-plumbing" {
		t.Errorf("Expected first slug rk-plumbing, but got %s", document.Data[0].Slug)
	}
}

func TestRun_EmptyDirectory(t *testing.T) {
	publisher := &fakePublisher{}
	exporter := NewExporter(&fakeScanner{cards: nil}, publisher, logger.NewLogger())

	summary, err := exporter.Run(context.Background())
	if err != nil {
		t.Fatalf("Expected empty directory to publish successfully, but got %v", err)
	}
	if summary.Count != 0 {
		t.Errorf("Expected count 0, but got %d", summary.Count)
	}

	var document model.SnapshotDocument
	err = json.Unmarshal(publisher.body, &document)
	if err != nil {
		t.Fatalf("Expected valid JSON body, but got %v", err)
	}
	if document.Data == nil {
		t.Errorf("Expected data to serialize as an empty array, not null")
	}
}

func TestRun_ScanFailure(t *testing.T) {
	scanner := &fakeScanner{err: errors.New("throughput exceeded")}
	publisher := &fakePublisher{}
	exporter := NewExporter(scanner, publisher, logger.NewLogger())

	_, err := exporter.Run(context.Background())
	if err == nil {
		t.Fatalf("Expected error, but got nil")
	}
	if _, ok := err.(*exception.StoreTraversalException); !ok {
		t.Errorf("Expected StoreTraversalException, but got %T", err)
	}
	if publisher.body != nil {
		t.Errorf("Expected nothing published after scan failure")
	}
}

func TestRun_PublishFailure(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("access denied")}
	exporter := NewExporter(&fakeScanner{cards: snapshotCardsFixture()}, publisher, logger.NewLogger())

	_, err := exporter.Run(context.Background())
	if err == nil {
		t.Fatalf("Expected error, but got nil")
	}
	if _, ok := err.(*exception.PublishException); !ok {
		t.Errorf("Expected PublishException, but got %T", err)
	}
}
