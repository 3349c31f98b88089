package ddbDao

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/exception"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/logger"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
)

func snapshotItem(t *testing.T, slug string, businessName string) map[string]*dynamodb.AttributeValue {
	t.Helper()
	item, err := dynamodbattribute.MarshalMap(model.BusinessCardSnapshot{
		Slug:         slug,
		BusinessName: businessName,
		Category:     "Plumber",
		City:         "Bengaluru",
	})
	if err != nil {
		t.Fatalf("Unable to marshal snapshot item: %v", err)
	}
	return item
}

func TestScanPublicProjection_FencesToCardSortKeys(t *testing.T) {
	var captured *dynamodb.ScanInput
	client := &fakeDynamo{
		scanPagesWithContext: func(ctx aws.Context, input *dynamodb.ScanInput, fn func(*dynamodb.ScanOutput, bool) bool, _ ...request.Option) error {
			captured = input
			fn(&dynamodb.ScanOutput{Items: []map[string]*dynamodb.AttributeValue{
				snapshotItem(t, "rk-plumbing", "RK Plumbing"),
			}}, false)
			fn(&dynamodb.ScanOutput{Items: []map[string]*dynamodb.AttributeValue{
				snapshotItem(t, "anand-dental", "Anand Dental"),
			}}, true)
			return nil
		},
	}
	dao := NewBusinessCardDao(client, logger.NewLogger())

	cards, err := dao.ScanPublicProjection(context.Background())
	if err != nil {
		t.Fatalf("Expected scan to succeed, but got %v", err)
	}

	// Bookings and offers share the table, so the scan must carry a sort-key
	// filter or their items surface as zero-valued snapshot entries.
	if captured.FilterExpression == nil {
		t.Fatal("Expected the scan to carry a filter expression, but got none")
	}
	if !expressionHasValue(captured.ExpressionAttributeValues, model.BusinessCardSkPrefix) {
		t.Errorf("Expected the filter to fence on %s, but values were %v", model.BusinessCardSkPrefix, captured.ExpressionAttributeValues)
	}
	if captured.ProjectionExpression == nil {
		t.Fatal("Expected the scan to carry a projection expression, but got none")
	}

	if len(cards) != 2 {
		t.Fatalf("Expected 2 cards across pages, but got %d", len(cards))
	}
	if cards[0].Slug != "rk-plumbing" || cards[1].Slug != "anand-dental" {
		t.Errorf("Expected cards in page order, but got %s and %s", cards[0].Slug, cards[1].Slug)
	}
}

func TestGetBusinessCardBySlug(t *testing.T) {
	stored := model.BusinessCard{
		Pk:           "IN#KA#BLR",
		Sk:           "BIZ#rk-plumbing",
		Slug:         "rk-plumbing",
		BusinessName: "RK Plumbing",
		Phone:        "+91 98765 43210",
		Category:     "Plumber",
	}
	item, err := dynamodbattribute.MarshalMap(stored)
	if err != nil {
		t.Fatalf("Unable to marshal card: %v", err)
	}

	var captured *dynamodb.QueryInput
	client := &fakeDynamo{
		query: func(input *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			captured = input
			return &dynamodb.QueryOutput{Items: []map[string]*dynamodb.AttributeValue{item}}, nil
		},
	}
	dao := NewBusinessCardDao(client, logger.NewLogger())

	card, err := dao.GetBusinessCardBySlug("rk-plumbing")
	if err != nil {
		t.Fatalf("Expected lookup to succeed, but got %v", err)
	}
	if card == nil || card.BusinessName != "RK Plumbing" {
		t.Errorf("Expected RK Plumbing, but got %+v", card)
	}
	if captured.IndexName == nil || *captured.IndexName != BusinessCardIndexSlugGsi.String() {
		t.Errorf("Expected the lookup to use %s, but got %v", BusinessCardIndexSlugGsi.String(), captured.IndexName)
	}
}

func TestGetBusinessCardBySlug_NotFound(t *testing.T) {
	client := &fakeDynamo{
		query: func(input *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{}, nil
		},
	}
	dao := NewBusinessCardDao(client, logger.NewLogger())

	card, err := dao.GetBusinessCardBySlug("no-such-slug")
	if err != nil {
		t.Fatalf("Expected no error for an unknown slug, but got %v", err)
	}
	if card != nil {
		t.Errorf("Expected nil for an unknown slug, but got %+v", card)
	}
}

func TestScanPublicProjection_ScanFailure(t *testing.T) {
	client := &fakeDynamo{
		scanPagesWithContext: func(ctx aws.Context, input *dynamodb.ScanInput, fn func(*dynamodb.ScanOutput, bool) bool, _ ...request.Option) error {
			return errors.New("throughput exceeded")
		},
	}
	dao := NewBusinessCardDao(client, logger.NewLogger())

	_, err := dao.ScanPublicProjection(context.Background())
	if err == nil {
		t.Fatal("Expected an error when the scan fails, but got nil")
	}
	if _, ok := err.(*exception.StoreTraversalException); !ok {
		t.Errorf("Expected StoreTraversalException, but got %T: %v", err, err)
	}
}
